package models

import "gorm.io/gorm"

// A user-created catalog food. Nutrient fields are stored per gram so any
// logged quantity scales uniformly regardless of unit.
type FoodItem struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null" json:"userId"`
	Name            string `gorm:"not null" json:"name"`
	Nutrients       `gorm:"embedded"`
	ServingSize     float64 `json:"servingSize"` // grams per serving, 0 if unknown
	ServingSizeUnit string  `json:"servingSizeUnit"`
	ServingText     string  `json:"servingText"`
	State           string  `gorm:"size:20;default:'active'" json:"state"`
}

// A user-authored recipe. Nutrient fields are totals for the whole batch;
// ServingSize is the number of servings one batch yields.
type Recipe struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"userId"`
	RecipeName  string `gorm:"not null" json:"recipeName"`
	Direction   string `gorm:"type:text" json:"direction"`
	State       string `gorm:"size:20" json:"state"` // "draft" | "final"
	Nutrients   `gorm:"embedded"`
	TotalWeight float64      `json:"totalWeight"` // grams of all ingredients
	ServingSize float64      `json:"servingSize"` // servings per batch
	Items       []RecipeItem `json:"recipeItems"`
}

// One ingredient line inside a recipe. Quantity is canonical grams; the
// unit/unitQuantity pair preserves what the user typed for display.
type RecipeItem struct {
	gorm.Model
	RecipeID     uint    `gorm:"index;not null" json:"recipeId"`
	FoodItemID   uint    `gorm:"not null" json:"foodItemId"`
	FoodName     string  `json:"foodName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitQuantity float64 `json:"unitQuantity"`
}

// NutrientRecord is the tagged variant the scaler matches on: a per-gram
// food item or a batch-total recipe. The unexported method keeps the set
// closed so the switch in the scaler stays exhaustive.
type NutrientRecord interface {
	nutrientRecord()
}

func (*FoodItem) nutrientRecord() {}
func (*Recipe) nutrientRecord()   {}
