package handler

import (
	"net/http"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"
	"cinematch/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type DirectorInput struct {
	Name string `json:"name" binding:"required"`
}

type DirectorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newDirectorResponse(director models.Director) DirectorResponse {
	return DirectorResponse{ID: director.ID, Name: director.Name}
}

// CreateDirector godoc
// @Summary      Create a new director
// @Tags         admin-directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DirectorInput true "Director Info"
// @Success      201  {object}  DirectorResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/directors [post]
func CreateDirector(c *gin.Context) {
	var input DirectorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director := models.Director{Name: input.Name}
	if err := database.DB.Create(&director).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create director"})
		return
	}

	c.JSON(http.StatusCreated, newDirectorResponse(director))
}

// GetDirectors godoc
// @Summary      Get all directors
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  DirectorResponse
// @Router       /directors [get]
func GetDirectors(c *gin.Context) {
	var directors []models.Director
	if err := database.DB.Order("id ASC").Find(&directors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve directors"})
		return
	}

	responses := make([]DirectorResponse, 0, len(directors))
	for _, director := range directors {
		responses = append(responses, newDirectorResponse(director))
	}
	c.JSON(http.StatusOK, responses)
}

// GetDirectorByID godoc
// @Summary      Get a director by ID
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Director ID"
// @Success      200 {object} DirectorResponse
// @Failure      404 {object} ErrorResponse "Director not found"
// @Router       /directors/{id} [get]
func GetDirectorByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var director models.Director
	if err := database.DB.First(&director, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Director not found"})
		return
	}

	c.JSON(http.StatusOK, newDirectorResponse(director))
}

// GetDirectorFilms godoc
// @Summary      Get a director's films
// @Description  Returns the films credited to a director, ordered by release date or by like-count.
// @Tags         directors
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   int     true   "Director ID"
// @Param        sortBy query  string  false  "Sort order: year or likes" default(year)
// @Success      200 {array} FilmResponse
// @Failure      400 {object} ErrorResponse "Invalid sortBy"
// @Failure      404 {object} ErrorResponse "Director not found"
// @Router       /directors/{id}/films [get]
func GetDirectorFilms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sortBy := c.DefaultQuery("sortBy", service.SortByYear)
	if sortBy != service.SortByYear && sortBy != service.SortByLikes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sortBy must be year or likes"})
		return
	}

	films, err := service.NewFilmService(database.DB).ByDirector(id, sortBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFilmResponses(films))
}

// UpdateDirector godoc
// @Summary      Update a director
// @Tags         admin-directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Director ID"
// @Param        input body      DirectorInput true  "New Director Info"
// @Success      200   {object}  DirectorResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Director not found"
// @Router       /admin/directors/{id} [put]
func UpdateDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var director models.Director
	if err := database.DB.First(&director, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Director not found"})
		return
	}

	var input DirectorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	director.Name = input.Name
	if err := database.DB.Save(&director).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update director"})
		return
	}

	c.JSON(http.StatusOK, newDirectorResponse(director))
}

// DeleteDirector godoc
// @Summary      Delete a director
// @Tags         admin-directors
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Director ID"
// @Success      200 {object} map[string]string "{"message": "Director deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Director not found"
// @Router       /admin/directors/{id} [delete]
func DeleteDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Director{}, id)
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Director not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Director deleted"})
}
