// services/food_log_service.go
package services

import (
	"errors"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"

	"gorm.io/gorm"
)

// FoodLogService owns the food diary: it turns scaled contributions into
// log lines and sums lines into per-date totals for the ledger and the
// progress views.
type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

var ErrRecordNotFound = errors.New("record not found")

// LogFood scales a catalog food by the requested quantity and writes the
// contribution as one diary line.
func (s *FoodLogService) LogFood(userID, foodID uint, q LoggedQuantity, meal string, logDate, logTime time.Time) (*models.FoodLog, error) {
	var food models.FoodItem
	if err := s.db.Where("id = ? AND user_id = ?", foodID, userID).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	contrib, err := Scale(&food, q)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodLog{
		UserID:       userID,
		FoodItemID:   &food.ID,
		FoodLabel:    food.Name,
		Nutrients:    contrib.Nutrients,
		Quantity:     contrib.Quantity,
		SelectedUnit: UnitLabel(q.Unit, q.Quantity),
		UnitQuantity: q.Quantity,
		SelectedMeal: meal,
		LogDate:      utils.DateOnly(logDate),
		LogTime:      logTime,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// LogRecipe scales a recipe by servings or batches and writes the line.
func (s *FoodLogService) LogRecipe(userID, recipeID uint, q LoggedQuantity, meal string, logDate, logTime time.Time) (*models.FoodLog, error) {
	var recipe models.Recipe
	if err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	contrib, err := Scale(&recipe, q)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodLog{
		UserID:       userID,
		RecipeID:     &recipe.ID,
		FoodLabel:    recipe.RecipeName,
		Nutrients:    contrib.Nutrients,
		Quantity:     contrib.Quantity,
		SelectedUnit: UnitLabel(q.Unit, q.Quantity),
		UnitQuantity: q.Quantity,
		SelectedMeal: meal,
		LogDate:      utils.DateOnly(logDate),
		LogTime:      logTime,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// LogWater records a water-only line in fluid oz.
func (s *FoodLogService) LogWater(userID uint, fluidOz float64, logDate, logTime time.Time) (*models.FoodLog, error) {
	entry := &models.FoodLog{
		UserID:    userID,
		FoodLabel: "Water",
		Water:     fluidOz,
		LogDate:   utils.DateOnly(logDate),
		LogTime:   logTime,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FoodLogService) ListByDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND log_date = ?", userID, utils.DateOnly(date)).
		Order("log_time ASC").
		Find(&logs).Error
	return logs, err
}

func (s *FoodLogService) DeleteLog(userID, logID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.FoodLog{}).Error
}

// GetDailyTotals sums every line for (user, date) in SQL. This is the
// aggregation the ledger evaluates against; the ledger itself never sums
// individual entries.
func (s *FoodLogService) GetDailyTotals(userID uint, date time.Time) (models.DailyTotals, error) {
	var totals models.DailyTotals
	err := s.db.Model(&models.FoodLog{}).
		Select(`
			COALESCE(SUM(calories), 0)             AS calories,
			COALESCE(SUM(protein), 0)              AS protein,
			COALESCE(SUM(carbs), 0)                AS carbs,
			COALESCE(SUM(fat), 0)                  AS fat,
			COALESCE(SUM(total_sugars), 0)         AS total_sugars,
			COALESCE(SUM(added_sugars), 0)         AS added_sugars,
			COALESCE(SUM(trans_fat), 0)            AS trans_fat,
			COALESCE(SUM(saturated_fat), 0)        AS saturated_fat,
			COALESCE(SUM(polyunsaturated_fat), 0)  AS polyunsaturated_fat,
			COALESCE(SUM(monounsaturated_fat), 0)  AS monounsaturated_fat,
			COALESCE(SUM(cholesterol), 0)          AS cholesterol,
			COALESCE(SUM(fiber), 0)                AS fiber,
			COALESCE(SUM(calcium), 0)              AS calcium,
			COALESCE(SUM(iron), 0)                 AS iron,
			COALESCE(SUM(sodium), 0)               AS sodium,
			COALESCE(SUM(potassium), 0)            AS potassium,
			COALESCE(SUM(vitamin_a), 0)            AS vitamin_a,
			COALESCE(SUM(vitamin_c), 0)            AS vitamin_c,
			COALESCE(SUM(vitamin_d), 0)            AS vitamin_d,
			COALESCE(SUM(water), 0)                AS water`).
		Where("user_id = ? AND log_date = ?", userID, utils.DateOnly(date)).
		Scan(&totals).Error
	return totals, err
}
