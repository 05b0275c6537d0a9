package controllers

import (
	"errors"
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type WasteLogController struct {
	Svc *services.WasteLogService
}

func NewWasteLogController(svc *services.WasteLogService) *WasteLogController {
	return &WasteLogController{Svc: svc}
}

type createLogInput struct {
	CategoryID uint    `json:"category_id" binding:"required"`
	WeightKg   float64 `json:"weight_kg" binding:"required"`
	Notes      string  `json:"notes"`
}

func (wc *WasteLogController) CreateLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var body createLogInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := wc.Svc.CreateLog(c.Request.Context(), uid, body.CategoryID, body.WeightKg, body.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWeight):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (wc *WasteLogController) ListLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := wc.Svc.ListLogs(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (wc *WasteLogController) ListCategories(c *gin.Context) {
	categories, err := wc.Svc.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}
