package handler

import (
	"net/http"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type MpaResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
}

func newMpaResponse(rating models.MpaRating) MpaResponse {
	return MpaResponse{ID: rating.ID, Code: rating.Code}
}

// GetMpaRatings godoc
// @Summary      Get all MPA ratings
// @Tags         mpa
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  MpaResponse
// @Router       /mpa [get]
func GetMpaRatings(c *gin.Context) {
	var ratings []models.MpaRating
	if err := database.DB.Order("id ASC").Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve MPA ratings"})
		return
	}

	responses := make([]MpaResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, newMpaResponse(rating))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMpaRatingByID godoc
// @Summary      Get an MPA rating by ID
// @Tags         mpa
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "MPA Rating ID"
// @Success      200 {object} MpaResponse
// @Failure      404 {object} ErrorResponse "MPA rating not found"
// @Router       /mpa/{id} [get]
func GetMpaRatingByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var rating models.MpaRating
	if err := database.DB.First(&rating, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "MPA rating not found"})
		return
	}

	c.JSON(http.StatusOK, newMpaResponse(rating))
}
