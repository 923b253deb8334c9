// controllers/food_log_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"

	"github.com/gin-gonic/gin"
)

// queryDate reads the ?date=YYYY-MM-DD parameter, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

type LogFoodInput struct {
	FoodItemID uint    `json:"foodItemId"`
	RecipeID   uint    `json:"recipeId"`
	Quantity   float64 `json:"quantity" binding:"required"`
	Unit       string  `json:"unit" binding:"required"`
	Meal       string  `json:"meal"`
	LogDate    string  `json:"logDate"` // YYYY-MM-DD, defaults to today
}

// POST /foodlog
// Logs either a catalog food or a recipe, depending on which id is set.
func LogFood(c *gin.Context) {
	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (input.FoodItemID == 0) == (input.RecipeID == 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of foodItemId or recipeId is required"})
		return
	}

	unit, err := services.ParseUnit(input.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logDate := time.Now()
	if input.LogDate != "" {
		logDate, err = utils.ParseDate(input.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logDate must be YYYY-MM-DD"})
			return
		}
	}

	userID := c.GetUint("userID")
	q := services.LoggedQuantity{Quantity: input.Quantity, Unit: unit}

	var entry interface{}
	if input.FoodItemID != 0 {
		entry, err = foodLogSvc.LogFood(userID, input.FoodItemID, q, input.Meal, logDate, time.Now())
	} else {
		entry, err = foodLogSvc.LogRecipe(userID, input.RecipeID, q, input.Meal, logDate, time.Now())
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "food or recipe not found"})
		case errors.Is(err, services.ErrUnknownUnit),
			errors.Is(err, services.ErrUnitNotFoodItem),
			errors.Is(err, services.ErrUnitNotRecipe):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type LogWaterInput struct {
	FluidOz float64 `json:"fluidOz" binding:"required"`
	LogDate string  `json:"logDate"`
}

// POST /foodlog/water
func LogWater(c *gin.Context) {
	var input LogWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logDate := time.Now()
	if input.LogDate != "" {
		var err error
		logDate, err = utils.ParseDate(input.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logDate must be YYYY-MM-DD"})
			return
		}
	}

	entry, err := foodLogSvc.LogWater(c.GetUint("userID"), input.FluidOz, logDate, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /foodlog?date=YYYY-MM-DD
func ListFoodLogs(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	logs, err := foodLogSvc.ListByDate(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /foodlog/totals?date=YYYY-MM-DD
func GetDailyTotals(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	totals, err := foodLogSvc.GetDailyTotals(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":   utils.FormatDate(date),
		"totals": totals,
	})
}

// DELETE /foodlog/:id
func DeleteFoodLog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := foodLogSvc.DeleteLog(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
