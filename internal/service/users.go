package service

import (
	"cinematch/backend/internal/models"

	"gorm.io/gorm"
)

// UserService covers user lifecycle operations that touch the graph: deleting
// a user removes their friend links (both directions), their likes, their
// reviews and votes, and their entire activity feed.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Delete removes a user and everything attached to them.
func (s *UserService) Delete(userID uint) error {
	if _, err := findUser(s.db, userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.FeedEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", userID, userID).Delete(&models.FriendLink{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM film_likes WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.ReviewVote{}).Error; err != nil {
			return err
		}
		// Other users' votes on the deleted user's reviews go too.
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.ReviewVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
