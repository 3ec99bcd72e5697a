package service

import (
	"errors"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendService applies the request/accept/remove protocol to friend links.
//
// Links are directed records. An unconfirmed link exists only on the
// requesting side; once the other user sends a request back, both sides are
// rewritten to confirmed inside a single transaction, so a reader never
// observes a half-accepted pair.
type FriendService struct {
	db   *gorm.DB
	feed *FeedService
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db, feed: NewFeedService(db)}
}

// SendOrAccept sends a friend request from userID to friendID, or accepts a
// pending request from friendID if one exists. Re-sending an identical
// request is a no-op upsert.
func (s *FriendService) SendOrAccept(userID, friendID uint) error {
	if userID == friendID {
		return ErrSelfFriend
	}
	if _, err := findUser(s.db, userID); err != nil {
		return err
	}
	if _, err := findUser(s.db, friendID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reverse models.FriendLink
		err := tx.Where("user_id = ? AND friend_id = ?", friendID, userID).First(&reverse).Error
		switch {
		case err == nil && reverse.Status == models.StatusUnconfirmed:
			// friendID already requested userID: confirm both directions.
			if err := upsertLink(tx, friendID, userID, models.StatusConfirmed); err != nil {
				return err
			}
			return upsertLink(tx, userID, friendID, models.StatusConfirmed)
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		default:
			return upsertLink(tx, userID, friendID, models.StatusUnconfirmed)
		}
	})
	if err != nil {
		return err
	}

	s.feed.Emit(userID, friendID, models.EventTypeFriend, models.OperationAdd)
	return nil
}

// Remove deletes the link from userID to friendID, whatever its status.
// The reverse link is left untouched, so unfriending is one-sided. Removing
// an absent link is a no-op, not an error.
func (s *FriendService) Remove(userID, friendID uint) error {
	if _, err := findUser(s.db, userID); err != nil {
		return err
	}
	if _, err := findUser(s.db, friendID); err != nil {
		return err
	}

	err := s.db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.FriendLink{}).Error
	if err != nil {
		return err
	}

	s.feed.Emit(userID, friendID, models.EventTypeFriend, models.OperationRemove)
	return nil
}

// ListFriends returns every user linked from userID, regardless of status,
// in ascending id order. Unconfirmed targets count as contacts the user is
// following.
func (s *FriendService) ListFriends(userID uint) ([]models.User, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}

	var friends []models.User
	err := s.db.
		Joins("JOIN friend_links fl ON fl.friend_id = users.id").
		Where("fl.user_id = ?", userID).
		Order("users.id ASC").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// CommonFriends returns users linked from both userID and otherID, in
// ascending id order.
func (s *FriendService) CommonFriends(userID, otherID uint) ([]models.User, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	if _, err := findUser(s.db, otherID); err != nil {
		return nil, err
	}

	var friends []models.User
	err := s.db.
		Joins("JOIN friend_links fl1 ON fl1.friend_id = users.id").
		Joins("JOIN friend_links fl2 ON fl2.friend_id = users.id").
		Where("fl1.user_id = ? AND fl2.user_id = ?", userID, otherID).
		Order("users.id ASC").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// upsertLink writes a link, replacing the status of an existing one. The
// conflict clause makes concurrent duplicate requests resolve as updates
// instead of constraint errors.
func upsertLink(tx *gorm.DB, userID, friendID uint, status models.FriendshipStatus) error {
	link := models.FriendLink{UserID: userID, FriendID: friendID, Status: status}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&link).Error
}
