package controllers

import (
	"net/http"

	"github.com/Pragathi1123/eco-hive-smart/services"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	Svc *services.WasteImageService
}

func NewImageController(svc *services.WasteImageService) *ImageController {
	return &ImageController{Svc: svc}
}

type generateImageInput struct {
	Category    string `json:"category" binding:"required"`
	ProductName string `json:"productName"`
	Subcategory string `json:"subcategory"`
}

// Generate produces a disposal-guide image for a category.
// Success: {imageUrl}. Any upstream failure is a 500 with {error}.
func (ic *ImageController) Generate(c *gin.Context) {
	var body generateImageInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := ic.Svc.Generate(c.Request.Context(), body.Category, body.ProductName, body.Subcategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
