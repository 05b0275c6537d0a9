package controllers

import (
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	Svc *services.LeaderboardService
}

func NewLeaderboardController(svc *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Svc: svc}
}

// Get returns all four rankings in one payload; clients tab between them.
func (lc *LeaderboardController) Get(c *gin.Context) {
	set, err := lc.Svc.Leaderboards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, set)
}
