package controllers

import (
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	Lookup *services.ProductLookupService
	Cls    *services.ClassificationService
	Photo  *services.PhotoClassificationService
}

func NewScanController(
	lookup *services.ProductLookupService,
	cls *services.ClassificationService,
	photo *services.PhotoClassificationService,
) *ScanController {
	return &ScanController{Lookup: lookup, Cls: cls, Photo: photo}
}

// LookupBarcode resolves a scanned barcode to product info plus a disposal
// bucket. Unknown barcodes still return 200 with the e-waste fallback.
func (sc *ScanController) LookupBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barcode required"})
		return
	}

	info, err := sc.Lookup.Lookup(c.Request.Context(), barcode)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product information"})
		return
	}
	c.JSON(http.StatusOK, info)
}

type classifyPhotoInput struct {
	Image string `json:"image" binding:"required"` // data URI
}

func (sc *ScanController) ClassifyPhoto(c *gin.Context) {
	var body classifyPhotoInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.Photo.ClassifyPhoto(c.Request.Context(), body.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type confirmClassificationInput struct {
	ItemName          string  `json:"item_name" binding:"required"`
	DetectedCategory  string  `json:"detected_category" binding:"required"`
	ConfirmedCategory string  `json:"confirmed_category" binding:"required"`
	Confidence        float64 `json:"confidence"`
	Barcode           string  `json:"barcode"`
}

// ConfirmClassification records what the user decided against what the
// classifier detected; the audit trail feeds the accuracy stats.
func (sc *ScanController) ConfirmClassification(c *gin.Context) {
	uid := c.GetUint("userID")

	var body confirmClassificationInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := sc.Cls.RecordConfirmation(
		c.Request.Context(), uid,
		body.ItemName, body.DetectedCategory, body.ConfirmedCategory,
		body.Confidence, body.Barcode,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (sc *ScanController) Accuracy(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := sc.Cls.AccuracyStats(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
