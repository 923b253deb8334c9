// services/recipe_service.go
package services

import (
	"errors"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"

	"gorm.io/gorm"
)

// RecipeService handles recipe authoring. A recipe's nutrient fields are
// whole-batch totals maintained incrementally as ingredient lines are added
// and removed; every ingredient contribution goes through the scaler.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	RecipeName  string  `json:"recipeName" binding:"required"`
	Direction   string  `json:"direction"`
	ServingSize float64 `json:"servingSize"` // servings per batch
	State       string  `json:"state"`
}

func (s *RecipeService) CreateRecipe(userID uint, in RecipeInput) (*models.Recipe, error) {
	state := in.State
	if state == "" {
		state = "draft"
	}
	recipe := &models.Recipe{
		UserID:      userID,
		RecipeName:  in.RecipeName,
		Direction:   in.Direction,
		ServingSize: in.ServingSize,
		State:       state,
	}
	if err := s.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) GetRecipe(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) ListRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("recipe_name ASC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) UpdateRecipe(userID, recipeID uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	recipe.RecipeName = in.RecipeName
	recipe.Direction = in.Direction
	recipe.ServingSize = in.ServingSize
	if in.State != "" {
		recipe.State = in.State
	}
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) DeleteRecipe(userID, recipeID uint) error {
	recipe, err := s.GetRecipe(userID, recipeID)
	if err != nil {
		return err
	}
	if err := s.db.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(recipe).Error
}

type RecipeItemInput struct {
	FoodItemID uint    `json:"foodItemId" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	Unit       string  `json:"unit" binding:"required"`
}

// AddItem scales the ingredient to grams, appends the line and folds its
// contribution into the batch totals.
func (s *RecipeService) AddItem(userID, recipeID uint, in RecipeItemInput) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := s.db.Where("id = ? AND user_id = ?", in.FoodItemID, userID).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	unit, err := ParseUnit(in.Unit)
	if err != nil {
		return nil, err
	}
	contrib, err := Scale(&food, LoggedQuantity{Quantity: in.Quantity, Unit: unit})
	if err != nil {
		return nil, err
	}

	item := &models.RecipeItem{
		RecipeID:     recipe.ID,
		FoodItemID:   food.ID,
		FoodName:     food.Name,
		Quantity:     contrib.Quantity, // grams
		Unit:         UnitLabel(unit, in.Quantity),
		UnitQuantity: in.Quantity,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}

	recipe.Nutrients.Add(contrib.Nutrients)
	recipe.TotalWeight += contrib.Quantity
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	recipe.Items = append(recipe.Items, *item)
	return recipe, nil
}

// RemoveItem deletes the line and backs its contribution out of the totals.
func (s *RecipeService) RemoveItem(userID, recipeID, itemID uint) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}

	var item models.RecipeItem
	if err := s.db.Where("id = ? AND recipe_id = ?", itemID, recipe.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var food models.FoodItem
	if err := s.db.First(&food, item.FoodItemID).Error; err != nil {
		return nil, err
	}

	contrib, err := Scale(&food, LoggedQuantity{Quantity: item.Quantity, Unit: UnitGram})
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return nil, err
	}

	recipe.Nutrients.Subtract(contrib.Nutrients)
	recipe.TotalWeight -= item.Quantity
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(userID, recipeID)
}

// Recalculate rebuilds the batch totals from the ingredient lines. Used by
// the revert flow after an abandoned edit session.
func (s *RecipeService) Recalculate(userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.GetRecipe(userID, recipeID)
	if err != nil {
		return nil, err
	}

	var totals models.Nutrients
	var weight float64
	for _, item := range recipe.Items {
		var food models.FoodItem
		if err := s.db.First(&food, item.FoodItemID).Error; err != nil {
			return nil, err
		}
		contrib, err := Scale(&food, LoggedQuantity{Quantity: item.Quantity, Unit: UnitGram})
		if err != nil {
			return nil, err
		}
		totals.Add(contrib.Nutrients)
		weight += item.Quantity
	}

	recipe.Nutrients = totals
	recipe.TotalWeight = weight
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}
