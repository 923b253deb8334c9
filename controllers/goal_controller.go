// controllers/goal_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"

	"github.com/gin-gonic/gin"
)

// POST /user/calculate-goals
// Runs the goal calculator on the submitted biometric form and stores the
// resulting profile on the account.
func CalculateGoals(c *gin.Context) {
	var input services.BiometricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.CalculateGoals(input)
	if err != nil {
		if errors.Is(err, services.ErrBelowMinimumAge) || errors.Is(err, services.ErrInvalidBiometricInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := services.ApplyGoalProfile(c.GetUint("userID"), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /user/preview-goals
// Same calculation without persisting, for the review step of onboarding.
func PreviewGoals(c *gin.Context) {
	var input services.BiometricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.CalculateGoals(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
