package models

import "gorm.io/gorm"

// Review is a user's review of a film. Useful is the running usefulness
// score: +1 per like vote, -1 per dislike vote.
type Review struct {
	gorm.Model
	Content    string `gorm:"not null"`
	IsPositive bool   `gorm:"not null"`
	UserID     uint   `gorm:"not null;index"`
	FilmID     uint   `gorm:"not null;index"`
	Useful     int    `gorm:"not null;default:0"`

	User User `gorm:"foreignKey:UserID"`
	Film Film `gorm:"foreignKey:FilmID"`
}

// ReviewVote records a single user's usefulness vote on a review. One vote
// per (review, user) pair.
type ReviewVote struct {
	ReviewID uint `gorm:"primaryKey"`
	UserID   uint `gorm:"primaryKey"`
	IsLike   bool `gorm:"not null"`

	Review Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
