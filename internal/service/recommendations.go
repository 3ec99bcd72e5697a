package service

import (
	"sort"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
)

// RecommendationService proposes films via single-nearest-neighbor
// collaborative filtering over the like graph: find the other user with the
// largest like-set overlap and return what they liked that the target has
// not.
//
// Every call recomputes from scratch over all like edges, O(users * likes).
// There is no incremental index, which is fine at catalog scale but will not
// hold up past a modest user count.
type RecommendationService struct {
	db *gorm.DB
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// Recommend returns films for userID in ascending id order. When no other
// user shares a liked film, the result is empty.
func (s *RecommendationService) Recommend(userID uint) ([]models.Film, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}

	var edges []struct {
		UserID uint
		FilmID uint
	}
	err := s.db.Table("film_likes").Select("user_id, film_id").Scan(&edges).Error
	if err != nil {
		return nil, err
	}

	likes := make(map[uint]map[uint]bool)
	for _, edge := range edges {
		set := likes[edge.UserID]
		if set == nil {
			set = make(map[uint]bool)
			likes[edge.UserID] = set
		}
		set[edge.FilmID] = true
	}

	mine := likes[userID]

	// Neighbor = max overlap, ties to the lowest user id.
	var neighborID uint
	bestOverlap := 0
	for otherID, theirs := range likes {
		if otherID == userID {
			continue
		}
		overlap := 0
		for filmID := range theirs {
			if mine[filmID] {
				overlap++
			}
		}
		if overlap > bestOverlap || (overlap == bestOverlap && overlap > 0 && otherID < neighborID) {
			neighborID = otherID
			bestOverlap = overlap
		}
	}
	if bestOverlap == 0 {
		return []models.Film{}, nil
	}

	var candidateIDs []uint
	for filmID := range likes[neighborID] {
		if !mine[filmID] {
			candidateIDs = append(candidateIDs, filmID)
		}
	}
	if len(candidateIDs) == 0 {
		return []models.Film{}, nil
	}
	sort.Slice(candidateIDs, func(i, j int) bool { return candidateIDs[i] < candidateIDs[j] })

	var films []models.Film
	err = s.db.Preload("Genres").Preload("Directors").Preload("MpaRating").
		Where("id IN ?", candidateIDs).
		Order("id ASC").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}
