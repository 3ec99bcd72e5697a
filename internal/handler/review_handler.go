package handler

import (
	"net/http"
	"strconv"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"
	"cinematch/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type ReviewInput struct {
	Content    string `json:"content" binding:"required"`
	IsPositive *bool  `json:"is_positive" binding:"required"`
	FilmID     uint   `json:"film_id" binding:"required"`
}

type ReviewUpdateInput struct {
	Content    string `json:"content" binding:"required"`
	IsPositive *bool  `json:"is_positive" binding:"required"`
}

type ReviewResponse struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	IsPositive bool   `json:"is_positive"`
	UserID     uint   `json:"user_id"`
	FilmID     uint   `json:"film_id"`
	Useful     int    `json:"useful"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		Content:    review.Content,
		IsPositive: review.IsPositive,
		UserID:     review.UserID,
		FilmID:     review.FilmID,
		Useful:     review.Useful,
	}
}

// endregion

// CreateReview godoc
// @Summary      Create a review
// @Description  Creates the viewer's review of a film.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReviewInput true "Review Info"
// @Success      201  {object}  ReviewResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User or film not found"
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		Content:    input.Content,
		IsPositive: *input.IsPositive,
		UserID:     viewerID.(uint),
		FilmID:     input.FilmID,
	}
	if err := service.NewReviewService(database.DB).Add(&review); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(review))
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Rewrites the viewer's review. Only the author may update it.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Review ID"
// @Param        input body      ReviewUpdateInput true  "New Review Info"
// @Success      200   {object}  ReviewResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the review author"
// @Failure      404   {object}  ErrorResponse "Review not found"
// @Router       /reviews/{id} [put]
func UpdateReview(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input ReviewUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := service.NewReviewService(database.DB).Update(id, viewerID.(uint), input.Content, *input.IsPositive)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(*review))
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Review deleted"}"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewReviewService(database.DB).Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// GetReviewByID godoc
// @Summary      Get a review by ID
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} ReviewResponse
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id} [get]
func GetReviewByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := service.NewReviewService(database.DB).GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(*review))
}

// GetReviews godoc
// @Summary      List reviews
// @Description  Lists reviews ordered by usefulness, optionally restricted to one film.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        film_id query int false "Film ID"
// @Param        count   query int false "Maximum reviews to return" default(10)
// @Success      200 {array} ReviewResponse
// @Failure      404 {object} ErrorResponse "Film not found"
// @Router       /reviews [get]
func GetReviews(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "10"))

	var filmID *uint
	if raw := c.Query("film_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film_id"})
			return
		}
		id := uint(parsed)
		filmID = &id
	}

	reviews, err := service.NewReviewService(database.DB).List(filmID, count)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, newReviewResponse(review))
	}
	c.JSON(http.StatusOK, responses)
}

// LikeReview godoc
// @Summary      Mark a review as useful
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Vote recorded"}"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id}/like [put]
func LikeReview(c *gin.Context) {
	reviewVote(c, true)
}

// DislikeReview godoc
// @Summary      Mark a review as not useful
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Vote recorded"}"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id}/dislike [put]
func DislikeReview(c *gin.Context) {
	reviewVote(c, false)
}

// UnlikeReview godoc
// @Summary      Withdraw a useful vote
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Vote removed"}"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id}/like [delete]
func UnlikeReview(c *gin.Context) {
	reviewUnvote(c, true)
}

// UndislikeReview godoc
// @Summary      Withdraw a not-useful vote
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Vote removed"}"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id}/dislike [delete]
func UndislikeReview(c *gin.Context) {
	reviewUnvote(c, false)
}

func reviewVote(c *gin.Context, isLike bool) {
	viewerID, _ := c.Get("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewReviewService(database.DB).Vote(id, viewerID.(uint), isLike); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

func reviewUnvote(c *gin.Context, isLike bool) {
	viewerID, _ := c.Get("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewReviewService(database.DB).Unvote(id, viewerID.(uint), isLike); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote removed"})
}
