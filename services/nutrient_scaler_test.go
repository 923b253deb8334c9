// services/nutrient_scaler_test.go
package services

import (
	"testing"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	for label, want := range map[string]Unit{
		"g": UnitGram, "gram": UnitGram, "grams": UnitGram,
		"oz": UnitOunce, "oz.": UnitOunce, "ounce": UnitOunce, "ounces": UnitOunce,
		"serving": UnitServing, "servings": UnitServing,
		"batch": UnitBatch, "batches": UnitBatch,
	} {
		got, err := ParseUnit(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}

	_, err := ParseUnit("cup")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestUnitLabel(t *testing.T) {
	assert.Equal(t, "serving", UnitLabel(UnitServing, 1))
	assert.Equal(t, "servings", UnitLabel(UnitServing, 2))
	assert.Equal(t, "batch", UnitLabel(UnitBatch, 1))
	assert.Equal(t, "batches", UnitLabel(UnitBatch, 0.5))
	assert.Equal(t, "g", UnitLabel(UnitGram, 250))
	assert.Equal(t, "oz", UnitLabel(UnitOunce, 3))
}

func TestScaleFoodItem(t *testing.T) {
	food := &models.FoodItem{
		Nutrients:   models.Nutrients{Calories: 2, Protein: 0.1},
		ServingSize: 50,
	}

	c, err := Scale(food, LoggedQuantity{Quantity: 100, Unit: UnitGram})
	require.NoError(t, err)
	assert.InDelta(t, 200, c.Nutrients.Calories, 1e-9)
	assert.InDelta(t, 10, c.Nutrients.Protein, 1e-9)
	assert.InDelta(t, 100, c.Quantity, 1e-9)

	c, err = Scale(food, LoggedQuantity{Quantity: 1, Unit: UnitOunce})
	require.NoError(t, err)
	assert.InDelta(t, 2*GramsPerOunce, c.Nutrients.Calories, 1e-9)
	assert.InDelta(t, GramsPerOunce, c.Quantity, 1e-9)

	c, err = Scale(food, LoggedQuantity{Quantity: 2, Unit: UnitServing})
	require.NoError(t, err)
	assert.InDelta(t, 200, c.Nutrients.Calories, 1e-9)
	assert.InDelta(t, 100, c.Quantity, 1e-9)

	_, err = Scale(food, LoggedQuantity{Quantity: 1, Unit: UnitBatch})
	assert.ErrorIs(t, err, ErrUnitNotRecipe)
}

// A food logged by serving with no recorded serving weight contributes zero.
func TestScaleFoodItemNoServingSize(t *testing.T) {
	food := &models.FoodItem{Nutrients: models.Nutrients{Calories: 2}}

	c, err := Scale(food, LoggedQuantity{Quantity: 3, Unit: UnitServing})
	require.NoError(t, err)
	assert.Zero(t, c.Nutrients.Calories)
	assert.Zero(t, c.Quantity)
}

func TestScaleRecipe(t *testing.T) {
	recipe := &models.Recipe{
		Nutrients:   models.Nutrients{Calories: 800, Carbs: 100},
		ServingSize: 4, // servings per batch
	}

	c, err := Scale(recipe, LoggedQuantity{Quantity: 1, Unit: UnitServing})
	require.NoError(t, err)
	assert.InDelta(t, 200, c.Nutrients.Calories, 1e-9)
	assert.InDelta(t, 25, c.Nutrients.Carbs, 1e-9)
	assert.InDelta(t, 1, c.Quantity, 1e-9)

	c, err = Scale(recipe, LoggedQuantity{Quantity: 1, Unit: UnitBatch})
	require.NoError(t, err)
	assert.InDelta(t, 800, c.Nutrients.Calories, 1e-9)
	assert.InDelta(t, 4, c.Quantity, 1e-9)

	_, err = Scale(recipe, LoggedQuantity{Quantity: 100, Unit: UnitGram})
	assert.ErrorIs(t, err, ErrUnitNotFoodItem)
	_, err = Scale(recipe, LoggedQuantity{Quantity: 1, Unit: UnitOunce})
	assert.ErrorIs(t, err, ErrUnitNotFoodItem)
}

func TestScaleRecipeZeroServings(t *testing.T) {
	recipe := &models.Recipe{Nutrients: models.Nutrients{Calories: 800}}

	c, err := Scale(recipe, LoggedQuantity{Quantity: 2, Unit: UnitServing})
	require.NoError(t, err)
	assert.Zero(t, c.Nutrients.Calories)
	assert.InDelta(t, 2, c.Quantity, 1e-9)
}
