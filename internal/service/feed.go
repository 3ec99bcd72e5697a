package service

import (
	"log"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
)

// FeedService appends and reads activity-feed events. Events are written
// after the mutation they describe; a failed write is logged and never
// propagated, so it cannot mask the success of the primary mutation.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// Emit records an event. Best effort: errors are logged, not returned.
func (s *FeedService) Emit(userID, entityID uint, eventType models.EventType, operation models.EventOperation) {
	event := models.FeedEvent{
		UserID:    userID,
		EntityID:  entityID,
		EventType: eventType,
		Operation: operation,
	}
	if err := s.db.Create(&event).Error; err != nil {
		log.Printf("feed: failed to record %s/%s event for user %d: %v", eventType, operation, userID, err)
	}
}

// GetFeed returns a user's events in ascending timestamp order.
func (s *FeedService) GetFeed(userID uint) ([]models.FeedEvent, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}

	var events []models.FeedEvent
	err := s.db.Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteForUser removes all of a user's events. Called when the user is
// deleted.
func (s *FeedService) DeleteForUser(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.FeedEvent{}).Error
}
