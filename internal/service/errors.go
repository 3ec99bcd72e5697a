package service

import (
	"errors"
	"fmt"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced user, film or review does not
// exist. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ErrSelfFriend is returned on an attempt to befriend oneself.
var ErrSelfFriend = errors.New("cannot add yourself as a friend")

// ErrNotAuthor is returned when a user tries to edit a review they do not own.
var ErrNotAuthor = errors.New("only the author can edit a review")

func notFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

func findUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", id)
		}
		return nil, err
	}
	return &user, nil
}

func findDirector(db *gorm.DB, id uint) (*models.Director, error) {
	var director models.Director
	if err := db.First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("director", id)
		}
		return nil, err
	}
	return &director, nil
}

func findFilm(db *gorm.DB, id uint) (*models.Film, error) {
	var film models.Film
	if err := db.First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("film", id)
		}
		return nil, err
	}
	return &film, nil
}
