package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	Svc *services.AchievementService
}

func NewAchievementController(svc *services.AchievementService) *AchievementController {
	return &AchievementController{Svc: svc}
}

// Check evaluates and awards any newly qualified achievements.
// Response shape: {success, newlyEarned: [{name, points, icon}], message}.
func (ac *AchievementController) Check(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	newlyEarned, err := ac.Svc.CheckAchievements(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrStatsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user stats not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check achievements"})
		return
	}

	message := "No new achievements yet. Keep going!"
	if n := len(newlyEarned); n > 0 {
		plural := ""
		if n > 1 {
			plural = "s"
		}
		message = fmt.Sprintf("Congratulations! You earned %d new achievement%s!", n, plural)
	}
	if newlyEarned == nil {
		newlyEarned = []services.EarnedAchievement{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"newlyEarned": newlyEarned,
		"message":     message,
	})
}

// List returns the full catalog merged with the caller's earned state and
// progress toward the rest.
func (ac *AchievementController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	achievements, err := ac.Svc.ListWithProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, achievements)
}
