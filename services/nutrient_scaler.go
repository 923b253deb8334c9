// services/nutrient_scaler.go
package services

import (
	"errors"
	"fmt"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
)

// Converts a requested quantity of a food or recipe into its nutrient
// contribution. Every logging and recipe-authoring flow goes through Scale;
// there is deliberately no second copy of this arithmetic anywhere.

const GramsPerOunce = 28.3495

type Unit string

const (
	UnitGram    Unit = "g"
	UnitOunce   Unit = "oz"
	UnitServing Unit = "serving"
	UnitBatch   Unit = "batch"
)

var (
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrUnitNotRecipe   = errors.New("batch unit is only valid for recipes")
	ErrUnitNotFoodItem = errors.New("gram and ounce units are only valid for food items")
)

// ParseUnit normalizes a unit label. Plural and punctuated forms map to the
// same unit; the singular/plural distinction is display-only.
func ParseUnit(label string) (Unit, error) {
	switch label {
	case "g", "gram", "grams":
		return UnitGram, nil
	case "oz", "oz.", "ounce", "ounces":
		return UnitOunce, nil
	case "serving", "servings":
		return UnitServing, nil
	case "batch", "batches":
		return UnitBatch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, label)
	}
}

// UnitLabel returns the display form of a unit for the given quantity.
func UnitLabel(u Unit, quantity float64) string {
	if u == UnitServing && quantity != 1 {
		return "servings"
	}
	if u == UnitBatch && quantity != 1 {
		return "batches"
	}
	return string(u)
}

type LoggedQuantity struct {
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

// Contribution is the scaled nutrient vector plus the canonical quantity to
// persist on the log line: grams for food items, servings for recipes.
type Contribution struct {
	Nutrients models.Nutrients
	Quantity  float64
}

// Scale resolves the logged quantity against the record and returns the
// nutrient contribution.
func Scale(record models.NutrientRecord, q LoggedQuantity) (Contribution, error) {
	switch r := record.(type) {
	case *models.FoodItem:
		return scaleFoodItem(r, q)
	case *models.Recipe:
		return scaleRecipe(r, q)
	default:
		return Contribution{}, fmt.Errorf("unsupported nutrient record %T", record)
	}
}

func scaleFoodItem(food *models.FoodItem, q LoggedQuantity) (Contribution, error) {
	var grams float64
	switch q.Unit {
	case UnitGram:
		grams = q.Quantity
	case UnitOunce:
		grams = q.Quantity * GramsPerOunce
	case UnitServing:
		// A food with no recorded serving size resolves to 0 grams and a
		// zero contribution.
		grams = q.Quantity * food.ServingSize
	case UnitBatch:
		return Contribution{}, ErrUnitNotRecipe
	default:
		return Contribution{}, fmt.Errorf("%w: %q", ErrUnknownUnit, q.Unit)
	}

	return Contribution{
		Nutrients: food.Nutrients.Scaled(grams), // fields are per gram
		Quantity:  grams,
	}, nil
}

func scaleRecipe(recipe *models.Recipe, q LoggedQuantity) (Contribution, error) {
	var servings float64
	switch q.Unit {
	case UnitServing:
		servings = q.Quantity
	case UnitBatch:
		servings = q.Quantity * recipe.ServingSize
	case UnitGram, UnitOunce:
		return Contribution{}, ErrUnitNotFoodItem
	default:
		return Contribution{}, fmt.Errorf("%w: %q", ErrUnknownUnit, q.Unit)
	}

	// Recipe nutrients are whole-batch totals; a serving is 1/ServingSize of
	// the batch. A zero ServingSize yields a zero contribution rather than a
	// division error.
	var perServing models.Nutrients
	if recipe.ServingSize > 0 {
		perServing = recipe.Nutrients.Scaled(1 / recipe.ServingSize)
	}

	return Contribution{
		Nutrients: perServing.Scaled(servings),
		Quantity:  servings,
	}, nil
}
