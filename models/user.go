package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null"`
	FirstName        string
	LastName         string
	Verified         bool `gorm:"not null;default:false"`
	VerificationCode string
	ResetCode        string
	CodeExpiry       time.Time
	InitialLogin     bool `gorm:"not null;default:false"` // true once goals have been calculated
	AccountCreated   time.Time
	Disabled         bool `gorm:"not null;default:false"`

	// Daily nutrition goal profile, written by the goal calculator or by
	// manual edits on the adjust-goals screen.
	DailyCalorieGoal   int
	DailyProteinGoal   int
	DailyCarbsGoal     int
	DailyFatGoal       int
	Water              float64 // ml
	TotalSugars        int
	AddedSugars        int
	TransFat           int
	SaturatedFat       int
	PolyunsaturatedFat int
	MonounsaturatedFat int
	Cholesterol        int
	Fiber              int
	Calcium            int
	Iron               int
	Sodium             int
	Potassium          int
	VitaminA           int
	VitaminC           int
	VitaminD           int

	// Ledger state, mutated only by the ledger service. LastCheckedDate is
	// monotonically non-decreasing; LastTotals is the JSON snapshot of the
	// most recently fetched day's totals.
	LoginStreak     int        `gorm:"default:1"`
	LastCheckedDate *time.Time `gorm:"type:date"`
	LastTotals      string     `gorm:"type:text"`
	MetAllGoals     *time.Time `gorm:"type:date"`
	MetCalorieGoal  *time.Time `gorm:"type:date"`
	MetCalMacGoal   *time.Time `gorm:"type:date"`
	MetFiberGoal    *time.Time `gorm:"type:date"`
	MetWaterGoal    *time.Time `gorm:"type:date"`
	MetAllNum       int        `gorm:"default:0"`
	MetCalorieNum   int        `gorm:"default:0"`
	MetCalMacNum    int        `gorm:"default:0"`
	MetFiberNum     int        `gorm:"default:0"`
	MetWaterNum     int        `gorm:"default:0"`
}
