package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user in the system.
type User struct {
	gorm.Model
	Nickname     string    `gorm:"size:255;unique;not null"`
	Email        string    `gorm:"size:255;unique;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Name         string    `gorm:"size:255"`
	Birthday     time.Time
	Role         string  `gorm:"size:50;not null;default:'user';index"`
	LikedFilms   []*Film `gorm:"many2many:film_likes;"`
}
