package controllers

import (
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

// GetEducationTopics serves the static learning catalog. Public; no auth.
func GetEducationTopics(c *gin.Context) {
	c.JSON(http.StatusOK, services.EducationTopics())
}
