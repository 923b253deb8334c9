// services/food_service.go
package services

import (
	"errors"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"

	"gorm.io/gorm"
)

// FoodService manages the user's local food catalog. Foods are stored with
// per-gram nutrient values; when a client submits label values for a whole
// serving, CreateFood normalizes them down by the serving weight.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodInput struct {
	Name            string           `json:"name" binding:"required"`
	Nutrients       models.Nutrients `json:"nutrients"`
	PerServing      bool             `json:"perServing"` // nutrients are for one serving, not one gram
	ServingSize     float64          `json:"servingSize"`
	ServingSizeUnit string           `json:"servingSizeUnit"`
	ServingText     string           `json:"servingText"`
}

var ErrServingSizeRequired = errors.New("serving size in grams is required for per-serving values")

func (s *FoodService) CreateFood(userID uint, in FoodInput) (*models.FoodItem, error) {
	nutrients := in.Nutrients
	if in.PerServing {
		if in.ServingSize <= 0 {
			return nil, ErrServingSizeRequired
		}
		nutrients = nutrients.Scaled(1 / in.ServingSize)
	}

	food := &models.FoodItem{
		UserID:          userID,
		Name:            in.Name,
		Nutrients:       nutrients,
		ServingSize:     in.ServingSize,
		ServingSizeUnit: in.ServingSizeUnit,
		ServingText:     in.ServingText,
		State:           "active",
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) GetFood(userID, foodID uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.Where("id = ? AND user_id = ?", foodID, userID).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &food, nil
}

// ListFoods returns the user's active catalog, optionally filtered by a
// name substring.
func (s *FoodService) ListFoods(userID uint, query string) ([]models.FoodItem, error) {
	q := s.db.Where("user_id = ? AND state = ?", userID, "active").Order("name ASC")
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	var foods []models.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}

func (s *FoodService) UpdateFood(userID, foodID uint, in FoodInput) (*models.FoodItem, error) {
	food, err := s.GetFood(userID, foodID)
	if err != nil {
		return nil, err
	}

	nutrients := in.Nutrients
	if in.PerServing {
		if in.ServingSize <= 0 {
			return nil, ErrServingSizeRequired
		}
		nutrients = nutrients.Scaled(1 / in.ServingSize)
	}

	food.Name = in.Name
	food.Nutrients = nutrients
	food.ServingSize = in.ServingSize
	food.ServingSizeUnit = in.ServingSizeUnit
	food.ServingText = in.ServingText
	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood retires the food without breaking old log lines that
// reference it.
func (s *FoodService) DeleteFood(userID, foodID uint) error {
	return s.db.Model(&models.FoodItem{}).
		Where("id = ? AND user_id = ?", foodID, userID).
		Update("state", "deleted").Error
}
