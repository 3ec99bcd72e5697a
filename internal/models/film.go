package models

import (
	"time"

	"gorm.io/gorm"
)

// Film represents a film in the catalog.
type Film struct {
	gorm.Model
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:200"`
	ReleaseDate time.Time
	Duration    int // minutes

	MpaRatingID *uint
	MpaRating   *MpaRating `gorm:"foreignKey:MpaRatingID"`

	Genres    []*Genre    `gorm:"many2many:film_genres;"`
	Directors []*Director `gorm:"many2many:film_directors;"`

	// Users who liked this film. The like set drives popularity
	// ranking and recommendations.
	LikedBy []*User `gorm:"many2many:film_likes;"`
}
