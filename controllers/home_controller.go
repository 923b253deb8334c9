// controllers/home_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"

	"github.com/gin-gonic/gin"
)

// GET /home/daily-check
// The home screen's entry point: aggregates today's totals, runs the ledger
// (day-boundary streak and achievement evaluation) and returns the totals
// with per-goal progress for the dashboard rings.
func DailyCheck(c *gin.Context) {
	userID := c.GetUint("userID")
	email := c.GetString("email")

	totals, err := foodLogSvc.GetDailyTotals(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	check, err := ledgerSvc.EvaluateDaily(c.Request.Context(), userID, totals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	goals := services.GoalProfileOf(user)

	progress := gin.H{
		"calories": utils.CalculatePercentage(totals.Calories, float64(goals.Calories)),
		"protein":  utils.CalculatePercentage(totals.Protein, float64(goals.Protein)),
		"carbs":    utils.CalculatePercentage(totals.Carbs, float64(goals.Carbs)),
		"fat":      utils.CalculatePercentage(totals.Fat, float64(goals.Fat)),
		"fiber":    utils.CalculatePercentage(totals.Fiber, float64(goals.Fiber)),
		"water":    utils.CalculatePercentage(totals.Water*services.MlPerFluidOunce, goals.Water),
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     utils.FormatDate(time.Now()),
		"totals":   totals,
		"goals":    goals,
		"progress": progress,
		"check":    check,
	})
}
