package models

import "gorm.io/gorm"

// MpaRating represents an MPA age rating (G, PG, PG-13, R, NC-17).
type MpaRating struct {
	gorm.Model
	Code string `gorm:"size:10;unique;not null"`
}
