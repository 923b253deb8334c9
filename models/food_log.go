package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged line in a user's food diary. Exactly one of FoodItemID or
// RecipeID is set. The nutrient fields are the scaled contribution snapshot
// taken at log time, so daily totals are a plain sum over lines.
type FoodLog struct {
	gorm.Model
	UserID     uint  `gorm:"index;not null" json:"userId"`
	FoodItemID *uint `gorm:"index" json:"foodItemId,omitempty"`
	RecipeID   *uint `gorm:"index" json:"recipeId,omitempty"`

	FoodLabel string  `json:"foodLabel"`
	Nutrients `gorm:"embedded"`
	Water     float64 `json:"water"` // fluid oz, for water-only entries

	// Quantity is canonical: grams for food items, servings for recipes.
	Quantity     float64   `json:"quantity"`
	SelectedUnit string    `gorm:"size:16" json:"selectedUnit"`
	UnitQuantity float64   `json:"unitQuantity"` // what the user typed
	SelectedMeal string    `gorm:"size:20" json:"selectedMeal"`
	LogDate      time.Time `gorm:"index;type:date" json:"logDate"`
	LogTime      time.Time `json:"logTime"`
}
