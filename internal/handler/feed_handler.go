package handler

import (
	"net/http"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"
	"cinematch/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedEventResponse struct {
	ID        uint                  `json:"id"`
	UserID    uint                  `json:"user_id"`
	EntityID  uint                  `json:"entity_id"`
	EventType models.EventType      `json:"event_type"`
	Operation models.EventOperation `json:"operation"`
	Timestamp int64                 `json:"timestamp"`
}

func newFeedEventResponse(event models.FeedEvent) FeedEventResponse {
	return FeedEventResponse{
		ID:        event.ID,
		UserID:    event.UserID,
		EntityID:  event.EntityID,
		EventType: event.EventType,
		Operation: event.Operation,
		Timestamp: event.Timestamp,
	}
}

// GetFeed godoc
// @Summary      Get a user's activity feed
// @Description  Returns a user's feed events in ascending timestamp order.
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {array} FeedEventResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /users/{id}/feed [get]
func GetFeed(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	events, err := service.NewFeedService(database.DB).GetFeed(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]FeedEventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, newFeedEventResponse(event))
	}
	c.JSON(http.StatusOK, responses)
}
