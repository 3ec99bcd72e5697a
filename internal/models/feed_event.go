package models

// EventType classifies what kind of entity a feed event is about.
type EventType string

const (
	EventTypeLike   EventType = "LIKE"
	EventTypeFriend EventType = "FRIEND"
	EventTypeReview EventType = "REVIEW"
)

// EventOperation classifies what happened to the entity.
type EventOperation string

const (
	OperationAdd    EventOperation = "ADD"
	OperationRemove EventOperation = "REMOVE"
	OperationUpdate EventOperation = "UPDATE"
)

// FeedEvent is an immutable activity-log entry. Events are never updated;
// they are only appended and bulk-deleted when their owning user is deleted.
type FeedEvent struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	UserID    uint           `gorm:"not null;index"`
	EntityID  uint           `gorm:"not null"`
	EventType EventType      `gorm:"size:20;not null"`
	Operation EventOperation `gorm:"size:20;not null"`
	Timestamp int64          `gorm:"autoCreateTime:milli"`
}
