package models

import "gorm.io/gorm"

// Genre represents a film genre (e.g., "Comedy", "Drama", "Thriller").
type Genre struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
