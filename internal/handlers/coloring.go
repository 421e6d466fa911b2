// coloring.go handles AI coloring page generation.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// CreateColoringImage generates a printable line-art coloring page from a
// short prompt.
// POST /api/v1/coloring-images
func (h *Handler) CreateColoringImage(c *gin.Context) {
	var req models.ColoringImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A prompt is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	imageURL, err := h.AI.GenerateColoringImage(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("❌ Coloring image generation failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "ai_error",
			Message: "Failed to generate coloring image",
			Code:    http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, models.ColoringImageResponse{ImageURL: imageURL})
}
