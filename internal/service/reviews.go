package service

import (
	"errors"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultReviewCount = 10

// ReviewService manages film reviews and their usefulness votes. Review
// creation, update and deletion emit REVIEW feed events attributed to the
// review's author.
type ReviewService struct {
	db   *gorm.DB
	feed *FeedService
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db, feed: NewFeedService(db)}
}

// Add creates a review. User and film must exist.
func (s *ReviewService) Add(review *models.Review) error {
	if _, err := findUser(s.db, review.UserID); err != nil {
		return err
	}
	if _, err := findFilm(s.db, review.FilmID); err != nil {
		return err
	}

	if err := s.db.Create(review).Error; err != nil {
		return err
	}

	s.feed.Emit(review.UserID, review.ID, models.EventTypeReview, models.OperationAdd)
	return nil
}

// Update rewrites the content and verdict of an existing review. Only the
// author may update their review.
func (s *ReviewService) Update(reviewID, userID uint, content string, isPositive bool) (*models.Review, error) {
	review, err := s.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotAuthor
	}

	review.Content = content
	review.IsPositive = isPositive
	err = s.db.Model(review).
		Updates(map[string]interface{}{"content": content, "is_positive": isPositive}).Error
	if err != nil {
		return nil, err
	}

	s.feed.Emit(review.UserID, review.ID, models.EventTypeReview, models.OperationUpdate)
	return review, nil
}

// Delete removes a review and its votes.
func (s *ReviewService) Delete(reviewID uint) error {
	review, err := s.GetByID(reviewID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.ReviewVote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, reviewID).Error
	})
	if err != nil {
		return err
	}

	s.feed.Emit(review.UserID, review.ID, models.EventTypeReview, models.OperationRemove)
	return nil
}

func (s *ReviewService) GetByID(reviewID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("review", reviewID)
		}
		return nil, err
	}
	return &review, nil
}

// List returns reviews ordered by descending usefulness then ascending id,
// optionally restricted to one film. A non-positive count falls back to the
// default of 10.
func (s *ReviewService) List(filmID *uint, count int) ([]models.Review, error) {
	if count <= 0 {
		count = defaultReviewCount
	}

	query := s.db.Order("useful DESC, id ASC").Limit(count)
	if filmID != nil {
		if _, err := findFilm(s.db, *filmID); err != nil {
			return nil, err
		}
		query = query.Where("film_id = ?", *filmID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Vote records userID's usefulness vote on a review, replacing any previous
// vote by the same user, and refreshes the review's useful score.
func (s *ReviewService) Vote(reviewID, userID uint, isLike bool) error {
	if _, err := s.GetByID(reviewID); err != nil {
		return err
	}
	if _, err := findUser(s.db, userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		vote := models.ReviewVote{ReviewID: reviewID, UserID: userID, IsLike: isLike}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_like"}),
		}).Create(&vote).Error
		if err != nil {
			return err
		}
		return recalcUseful(tx, reviewID)
	})
}

// Unvote removes userID's vote of the given kind, if present, and refreshes
// the useful score. Removing an absent vote is a no-op.
func (s *ReviewService) Unvote(reviewID, userID uint, isLike bool) error {
	if _, err := s.GetByID(reviewID); err != nil {
		return err
	}
	if _, err := findUser(s.db, userID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("review_id = ? AND user_id = ? AND is_like = ?", reviewID, userID, isLike).
			Delete(&models.ReviewVote{}).Error
		if err != nil {
			return err
		}
		return recalcUseful(tx, reviewID)
	})
}

// recalcUseful recomputes useful as likes minus dislikes from the vote rows.
func recalcUseful(tx *gorm.DB, reviewID uint) error {
	var likes, dislikes int64
	err := tx.Model(&models.ReviewVote{}).
		Where("review_id = ? AND is_like = ?", reviewID, true).
		Count(&likes).Error
	if err != nil {
		return err
	}
	err = tx.Model(&models.ReviewVote{}).
		Where("review_id = ? AND is_like = ?", reviewID, false).
		Count(&dislikes).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update("useful", likes-dislikes).Error
}
