// services/ledger_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"

	"golang.org/x/sync/singleflight"
)

// The daily ledger tracks login streaks and goal achievements. It runs when
// today's totals are fetched (app foreground / home screen), never on a
// timer. Crossing a day boundary evaluates the achievement predicates
// against the totals of the day that just ended and fires each category's
// notification at most once per calendar day.

type GoalCategory string

const (
	CategoryAllGoals GoalCategory = "allGoals"
	CategoryCalMac   GoalCategory = "calMac"
	CategoryCalorie  GoalCategory = "calorie"
	CategoryFiber    GoalCategory = "fiber"
	CategoryWater    GoalCategory = "water"
)

// AllCategories lists every alert category, in notification precedence order.
var AllCategories = []GoalCategory{
	CategoryAllGoals, CategoryCalMac, CategoryCalorie, CategoryFiber, CategoryWater,
}

// MlPerFluidOunce converts logged water (fl oz) to the goal's ml basis.
const MlPerFluidOunce = 29.5735

// LedgerStore is the slice of the account record the ledger reads and
// writes. Each write covers a disjoint field group so partial failures
// leave the rest of the record intact.
type LedgerStore interface {
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	// AdvanceDay conditionally moves last_checked_date from prev to next and
	// snapshots totalsJSON, returning false when another evaluation already
	// advanced it (the compare-and-swap guard).
	AdvanceDay(ctx context.Context, userID uint, prev *time.Time, next time.Time, totalsJSON string) (bool, error)
	// SaveTotals refreshes the last_totals snapshot without touching the date.
	SaveTotals(ctx context.Context, userID uint, totalsJSON string) error
	UpdateStreak(ctx context.Context, userID uint, streak int) error
	// RecordAchievement sets the category's met date and increments its
	// counter atomically in SQL.
	RecordAchievement(ctx context.Context, userID uint, category GoalCategory, metDate time.Time) error
}

// Notifier delivers a goal-met alert to the user.
type Notifier interface {
	NotifyGoalMet(userID uint, category GoalCategory, metDate time.Time)
}

type LedgerService struct {
	store LedgerStore
	flags FlagStore
	bus   Notifier
	group singleflight.Group
	now   func() time.Time
}

func NewLedgerService(store LedgerStore, flags FlagStore, bus Notifier) *LedgerService {
	return &LedgerService{store: store, flags: flags, bus: bus, now: time.Now}
}

// DailyCheck is the outcome of one ledger evaluation.
type DailyCheck struct {
	LoginStreak   int            `json:"loginStreak"`
	NewDay        bool           `json:"newDay"`
	EvaluatedDate string         `json:"evaluatedDate,omitempty"`
	AlertsFired   []GoalCategory `json:"alertsFired"`
}

// EvaluateDaily runs the ledger state machine for one account with today's
// aggregated totals. Concurrent triggers for the same account coalesce into
// a single in-flight evaluation.
func (s *LedgerService) EvaluateDaily(ctx context.Context, userID uint, totals models.DailyTotals) (*DailyCheck, error) {
	v, err, _ := s.group.Do(strconv.FormatUint(uint64(userID), 10), func() (interface{}, error) {
		return s.evaluate(ctx, userID, totals)
	})
	if err != nil {
		return nil, err
	}
	return v.(*DailyCheck), nil
}

func (s *LedgerService) evaluate(ctx context.Context, userID uint, totals models.DailyTotals) (*DailyCheck, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.DateOnly(s.now())
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return nil, err
	}

	// First evaluation ever: seed the ledger, no achievement check.
	if user.LastCheckedDate == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := s.store.AdvanceDay(ctx, userID, nil, today, string(totalsJSON))
		if err != nil {
			return nil, err
		}
		streak := user.LoginStreak
		if streak < 1 {
			streak = 1
		}
		// A lost swap means a concurrent evaluation already seeded the
		// ledger; leave its writes alone.
		if ok && streak != user.LoginStreak {
			if err := s.store.UpdateStreak(ctx, userID, streak); err != nil {
				log.Printf("ledger: streak init failed for user %d: %v", userID, err)
			}
		}
		return &DailyCheck{LoginStreak: streak, NewDay: false}, nil
	}

	lastChecked := utils.DateOnly(*user.LastCheckedDate)

	// Re-entry on the same day only refreshes the snapshot.
	if lastChecked.Equal(today) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.store.SaveTotals(ctx, userID, string(totalsJSON)); err != nil {
			return nil, err
		}
		return &DailyCheck{LoginStreak: user.LoginStreak, NewDay: false}, nil
	}

	// Day boundary crossed. Advance the date first, conditioned on the value
	// we read; a stale concurrent evaluation loses the swap and applies
	// nothing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ok, err := s.store.AdvanceDay(ctx, userID, user.LastCheckedDate, today, string(totalsJSON))
	if err != nil {
		return nil, err
	}
	if !ok {
		return &DailyCheck{LoginStreak: user.LoginStreak, NewDay: false}, nil
	}

	streak := user.LoginStreak
	if utils.IsYesterday(lastChecked, today) {
		streak++
	} else if streak != 1 {
		streak = 1
	}
	if streak != user.LoginStreak {
		if err := s.store.UpdateStreak(ctx, userID, streak); err != nil {
			// Non-fatal: the next evaluation re-derives from stored state.
			log.Printf("ledger: streak update failed for user %d: %v", userID, err)
		}
	}

	check := &DailyCheck{
		LoginStreak:   streak,
		NewDay:        true,
		EvaluatedDate: utils.FormatDate(lastChecked),
	}

	// Flags guard once-per-day alerts; clear them for the new day before
	// evaluating so yesterday's markers cannot suppress today's alerts.
	if err := s.flags.ClearFlags(ctx, userID, AllCategories); err != nil {
		log.Printf("ledger: flag reset failed for user %d: %v", userID, err)
	}

	// Evaluate the day that just ended, using the totals snapshotted before
	// the advance.
	var lastTotals models.DailyTotals
	if user.LastTotals == "" {
		return check, nil
	}
	if err := json.Unmarshal([]byte(user.LastTotals), &lastTotals); err != nil {
		log.Printf("ledger: bad totals snapshot for user %d: %v", userID, err)
		return check, nil
	}

	met := evaluateGoals(lastTotals, user)
	for _, category := range AllCategories {
		if !met[category] {
			continue
		}
		if err := s.store.RecordAchievement(ctx, userID, category, lastChecked); err != nil {
			log.Printf("ledger: achievement write failed for user %d/%s: %v", userID, category, err)
		}
	}

	check.AlertsFired = s.fireAlerts(ctx, userID, met, lastChecked, today)
	return check, nil
}

// fireAlerts applies the notification precedence: a full sweep fires only
// the allGoals alert; otherwise the four narrower categories fire
// independently, each at most once per date.
func (s *LedgerService) fireAlerts(ctx context.Context, userID uint, met map[GoalCategory]bool, metDate, today time.Time) []GoalCategory {
	todayStr := utils.FormatDate(today)
	var fired []GoalCategory

	notify := func(category GoalCategory) {
		shown, err := s.flags.GetFlag(ctx, userID, category)
		if err != nil {
			log.Printf("ledger: flag read failed for user %d/%s: %v", userID, category, err)
			return
		}
		if shown == todayStr {
			return
		}
		s.bus.NotifyGoalMet(userID, category, metDate)
		if err := s.flags.SetFlag(ctx, userID, category, todayStr); err != nil {
			log.Printf("ledger: flag write failed for user %d/%s: %v", userID, category, err)
		}
		fired = append(fired, category)
	}

	if met[CategoryAllGoals] {
		notify(CategoryAllGoals)
		return fired
	}
	for _, category := range []GoalCategory{CategoryCalMac, CategoryCalorie, CategoryFiber, CategoryWater} {
		if met[category] {
			notify(category)
		}
	}
	return fired
}

// evaluateGoals applies the per-nutrient tolerance bands to one day's totals
// and derives the five alert categories.
func evaluateGoals(totals models.DailyTotals, user *models.User) map[GoalCategory]bool {
	within := func(v float64, goal float64, lo, hi float64) bool {
		return v >= goal*lo && v <= goal*hi
	}
	under := func(v float64, goal float64) bool {
		return v <= goal
	}

	calories := within(totals.Calories, float64(user.DailyCalorieGoal), 0.95, 1.05)
	protein := within(totals.Protein, float64(user.DailyProteinGoal), 0.95, 1.05)
	carbs := within(totals.Carbs, float64(user.DailyCarbsGoal), 0.95, 1.05)
	fat := within(totals.Fat, float64(user.DailyFatGoal), 0.95, 1.05)
	fiber := within(totals.Fiber, float64(user.Fiber), 0.95, 2)
	water := totals.Water*MlPerFluidOunce >= user.Water*0.95

	all := calories && protein && carbs && fat && fiber && water &&
		within(totals.TotalSugars, float64(user.TotalSugars), 0.5, 1.5) &&
		under(totals.AddedSugars, float64(user.AddedSugars)) &&
		under(totals.TransFat, float64(user.TransFat)) &&
		under(totals.SaturatedFat, float64(user.SaturatedFat)) &&
		under(totals.Cholesterol, float64(user.Cholesterol)) &&
		under(totals.Sodium, float64(user.Sodium)) &&
		within(totals.PolyunsaturatedFat, float64(user.PolyunsaturatedFat), 0.85, 1.2) &&
		within(totals.MonounsaturatedFat, float64(user.MonounsaturatedFat), 0.85, 1.2) &&
		within(totals.Potassium, float64(user.Potassium), 0.85, 1.2) &&
		within(totals.VitaminA, float64(user.VitaminA), 0.85, 1.2) &&
		within(totals.VitaminD, float64(user.VitaminD), 0.85, 1.2) &&
		within(totals.Calcium, float64(user.Calcium), 0.8, 1.2) &&
		within(totals.Iron, float64(user.Iron), 0.9, 1.25) &&
		within(totals.VitaminC, float64(user.VitaminC), 0.8, 2)

	return map[GoalCategory]bool{
		CategoryAllGoals: all,
		CategoryCalMac:   calories && protein && carbs && fat,
		CategoryCalorie:  calories,
		CategoryFiber:    fiber,
		CategoryWater:    water,
	}
}
