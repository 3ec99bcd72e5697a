package models

import "time"

// FriendshipStatus defines the state of a directed friend link.
type FriendshipStatus string

const (
	// StatusUnconfirmed means a friend request has been sent but not yet
	// accepted. Only the requesting side holds a link in this state.
	StatusUnconfirmed FriendshipStatus = "unconfirmed"

	// StatusConfirmed means the request was accepted. Confirmed links are
	// symmetric: both users hold one.
	StatusConfirmed FriendshipStatus = "confirmed"
)

// FriendLink is a directed record from one user to another carrying a
// confirmation status. The primary key is a composite of (UserID, FriendID)
// so a user has at most one link to any other user.
type FriendLink struct {
	UserID    uint             `gorm:"primaryKey"`
	FriendID  uint             `gorm:"primaryKey"`
	Status    FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
