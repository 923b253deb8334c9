// controllers/device_controller.go
package controllers

import (
	"net/http"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/config"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"

	"github.com/gin-gonic/gin"
)

// POST /devices
func RegisterDevice(c *gin.Context) {
	var input services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "platform and token required"})
		return
	}

	dev, err := pushSvc.RegisterDevice(c.GetUint("userID"), input.Platform, input.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}

type ToggleNotificationsInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PUT /devices/notifications
// Flips push delivery for every endpoint the user has registered.
func ToggleNotifications(c *gin.Context) {
	var input ToggleNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", c.GetUint("userID")).
		Update("enabled", *input.Enabled).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *input.Enabled})
}

// GET /alerts
// Recent goal-met alerts, newest first.
func ListAlerts(c *gin.Context) {
	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", c.GetUint("userID")).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
