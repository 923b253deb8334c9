// services/ledger_store.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"

	"gorm.io/gorm"
)

// GormLedgerStore implements LedgerStore against the users table.
type GormLedgerStore struct {
	db *gorm.DB
}

func NewGormLedgerStore(db *gorm.DB) *GormLedgerStore {
	return &GormLedgerStore{db: db}
}

func (s *GormLedgerStore) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormLedgerStore) AdvanceDay(ctx context.Context, userID uint, prev *time.Time, next time.Time, totalsJSON string) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID)
	if prev == nil {
		q = q.Where("last_checked_date IS NULL")
	} else {
		q = q.Where("last_checked_date = ?", *prev)
	}
	res := q.Updates(map[string]interface{}{
		"last_checked_date": next,
		"last_totals":       totalsJSON,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormLedgerStore) SaveTotals(ctx context.Context, userID uint, totalsJSON string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_totals", totalsJSON).Error
}

func (s *GormLedgerStore) UpdateStreak(ctx context.Context, userID uint, streak int) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("login_streak", streak).Error
}

var achievementColumns = map[GoalCategory]struct{ dateCol, numCol string }{
	CategoryAllGoals: {"met_all_goals", "met_all_num"},
	CategoryCalMac:   {"met_cal_mac_goal", "met_cal_mac_num"},
	CategoryCalorie:  {"met_calorie_goal", "met_calorie_num"},
	CategoryFiber:    {"met_fiber_goal", "met_fiber_num"},
	CategoryWater:    {"met_water_goal", "met_water_num"},
}

// RecordAchievement bumps the category counter in SQL so concurrent
// evaluations cannot lose an increment, and stamps the met date.
func (s *GormLedgerStore) RecordAchievement(ctx context.Context, userID uint, category GoalCategory, metDate time.Time) error {
	cols, ok := achievementColumns[category]
	if !ok {
		return fmt.Errorf("unknown goal category %q", category)
	}
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			cols.dateCol: metDate,
			cols.numCol:  gorm.Expr(cols.numCol + " + 1"),
		}).Error
}
