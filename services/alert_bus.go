// services/alert_bus.go
package services

import (
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"

	"gorm.io/gorm"
)

// AlertBus fans a goal-met alert out to every delivery channel: a persisted
// alert row, the websocket hub, and mobile push. The ledger's dedup flags
// guarantee at most one emission per category per day, so the bus itself
// does no throttling.
type AlertBus struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

func NewAlertBus(db *gorm.DB, rt *RealtimeHub, ps *PushService) *AlertBus {
	return &AlertBus{db: db, rt: rt, ps: ps}
}

var alertMessages = map[GoalCategory]struct{ title, body string }{
	CategoryAllGoals: {
		"You're Unbelievable!",
		"You met ALL of your nutritional goals on your most recent logged day. You are a Macros&More master! Check out the 'My Info' tab in Settings to see your other achievements.",
	},
	CategoryCalMac: {
		"You're killing it!",
		"You met all of your calorie and macros goals on your most recent logged day. Check out the 'My Info' tab in Settings to see your other achievements.",
	},
	CategoryCalorie: {
		"Goal Achieved!",
		"You met your calorie goal on your most recent logged day. Check out the 'My Info' tab in Settings to see your other achievements.",
	},
	CategoryFiber: {
		"Goal Achieved!",
		"You met your fiber goal on your most recent logged day. Check out the 'My Info' tab in Settings to see your other achievements.",
	},
	CategoryWater: {
		"Goal Achieved!",
		"You met your water goal on your most recent logged day. Check out the 'My Info' tab in Settings to see your other achievements.",
	},
}

func (b *AlertBus) NotifyGoalMet(userID uint, category GoalCategory, metDate time.Time) {
	msg, ok := alertMessages[category]
	if !ok {
		return
	}

	a := &models.Alert{
		UserID:    userID,
		Type:      string(category),
		Message:   msg.body,
		MetDate:   metDate,
		CreatedAt: time.Now(),
	}
	_ = b.db.Create(a).Error

	if b.rt != nil {
		b.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "goal.met",
			"alert": a,
		})
	}
	if b.ps != nil {
		b.ps.PushToUser(userID, msg.title, msg.body, map[string]string{
			"category": string(category),
			"metDate":  metDate.Format("2006-01-02"),
		})
	}
}
