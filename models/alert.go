package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // goal category: "allGoals" | "calMac" | "calorie" | "fiber" | "water"
	Message   string    `gorm:"type:text"`
	MetDate   time.Time `gorm:"type:date"` // the day the goal was met
	CreatedAt time.Time
}
