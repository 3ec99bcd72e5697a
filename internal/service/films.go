package service

import (
	"sort"
	"strings"

	"cinematch/backend/internal/models"

	"gorm.io/gorm"
)

// Search field values accepted by FilmService.Search.
const (
	SearchByTitle         = "title"
	SearchByDirector      = "director"
	SearchByTitleDirector = "title,director"
)

// Sort orders accepted by FilmService.ByDirector.
const (
	SortByYear  = "year"
	SortByLikes = "likes"
)

// FilmService mutates the like graph and computes engagement-ranked film
// lists over it.
type FilmService struct {
	db   *gorm.DB
	feed *FeedService
}

func NewFilmService(db *gorm.DB) *FilmService {
	return &FilmService{db: db, feed: NewFeedService(db)}
}

// AddLike records that userID likes filmID. Liking an already-liked film is
// a no-op and emits no event.
func (s *FilmService) AddLike(filmID, userID uint) error {
	film, err := findFilm(s.db, filmID)
	if err != nil {
		return err
	}
	user, err := findUser(s.db, userID)
	if err != nil {
		return err
	}

	exists, err := s.likeExists(filmID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.db.Model(film).Association("LikedBy").Append(user); err != nil {
		return err
	}

	s.feed.Emit(userID, filmID, models.EventTypeLike, models.OperationAdd)
	return nil
}

// RemoveLike removes userID's like from filmID. Removing an absent like is
// a no-op and emits no event.
func (s *FilmService) RemoveLike(filmID, userID uint) error {
	film, err := findFilm(s.db, filmID)
	if err != nil {
		return err
	}
	user, err := findUser(s.db, userID)
	if err != nil {
		return err
	}

	exists, err := s.likeExists(filmID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if err := s.db.Model(film).Association("LikedBy").Delete(user); err != nil {
		return err
	}

	s.feed.Emit(userID, filmID, models.EventTypeLike, models.OperationRemove)
	return nil
}

// MostPopular returns up to count films. Both filters are optional and
// combine with AND semantics. Ordering is descending like-count with
// ascending id as tie-break, except when genre and year are both present:
// then the result is in ascending id order.
func (s *FilmService) MostPopular(count int, genreID *uint, year *int) ([]models.Film, error) {
	if count <= 0 {
		return []models.Film{}, nil
	}

	var films []models.Film
	err := s.db.Preload("Genres").Preload("Directors").Preload("MpaRating").
		Find(&films).Error
	if err != nil {
		return nil, err
	}

	counts, err := s.likeCounts()
	if err != nil {
		return nil, err
	}

	var filtered []models.Film
	for _, film := range films {
		if genreID != nil && !hasGenre(film, *genreID) {
			continue
		}
		if year != nil && film.ReleaseDate.Year() != *year {
			continue
		}
		filtered = append(filtered, film)
	}

	if genreID != nil && year != nil {
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].ID < filtered[j].ID
		})
	} else {
		sortByLikeCount(filtered, counts)
	}

	if len(filtered) > count {
		filtered = filtered[:count]
	}
	return filtered, nil
}

// CommonFilms returns the films liked by both users, ordered by descending
// like-count then ascending id.
func (s *FilmService) CommonFilms(userID, otherID uint) ([]models.Film, error) {
	if _, err := findUser(s.db, userID); err != nil {
		return nil, err
	}
	if _, err := findUser(s.db, otherID); err != nil {
		return nil, err
	}

	var filmIDs []uint
	err := s.db.Table("film_likes l1").
		Joins("JOIN film_likes l2 ON l2.film_id = l1.film_id").
		Where("l1.user_id = ? AND l2.user_id = ?", userID, otherID).
		Pluck("l1.film_id", &filmIDs).Error
	if err != nil {
		return nil, err
	}
	if len(filmIDs) == 0 {
		return []models.Film{}, nil
	}

	films, err := s.loadFilms(filmIDs)
	if err != nil {
		return nil, err
	}

	counts, err := s.likeCounts()
	if err != nil {
		return nil, err
	}
	sortByLikeCount(films, counts)
	return films, nil
}

// Search matches query as a case-insensitive substring of film names and/or
// director names, per the by field (title, director, or title,director).
// Results are deduplicated and ordered by descending like-count then
// ascending id. A blank query returns the whole catalog in id order.
func (s *FilmService) Search(query, by string) ([]models.Film, error) {
	var films []models.Film
	err := s.db.Preload("Genres").Preload("Directors").Preload("MpaRating").
		Order("id ASC").
		Find(&films).Error
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return films, nil
	}

	needle := strings.ToLower(query)
	matchTitle := by == SearchByTitle || by == SearchByTitleDirector
	matchDirector := by == SearchByDirector || by == SearchByTitleDirector

	var matched []models.Film
	for _, film := range films {
		if matchTitle && strings.Contains(strings.ToLower(film.Name), needle) {
			matched = append(matched, film)
			continue
		}
		if matchDirector && hasDirectorMatching(film, needle) {
			matched = append(matched, film)
		}
	}

	counts, err := s.likeCounts()
	if err != nil {
		return nil, err
	}
	sortByLikeCount(matched, counts)
	return matched, nil
}

// ByDirector returns a director's films, ordered by release date (SortByYear)
// or by descending like-count then ascending id (SortByLikes).
func (s *FilmService) ByDirector(directorID uint, sortBy string) ([]models.Film, error) {
	if _, err := findDirector(s.db, directorID); err != nil {
		return nil, err
	}

	var filmIDs []uint
	err := s.db.Table("film_directors").
		Where("director_id = ?", directorID).
		Pluck("film_id", &filmIDs).Error
	if err != nil {
		return nil, err
	}
	if len(filmIDs) == 0 {
		return []models.Film{}, nil
	}

	films, err := s.loadFilms(filmIDs)
	if err != nil {
		return nil, err
	}

	if sortBy == SortByLikes {
		counts, err := s.likeCounts()
		if err != nil {
			return nil, err
		}
		sortByLikeCount(films, counts)
	} else {
		sort.Slice(films, func(i, j int) bool {
			a, b := films[i], films[j]
			if !a.ReleaseDate.Equal(b.ReleaseDate) {
				return a.ReleaseDate.Before(b.ReleaseDate)
			}
			return a.ID < b.ID
		})
	}
	return films, nil
}

func (s *FilmService) likeExists(filmID, userID uint) (bool, error) {
	var n int64
	err := s.db.Table("film_likes").
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Count(&n).Error
	return n > 0, err
}

// likeCounts returns the like-count per film id. Films with no likes are
// absent from the map.
func (s *FilmService) likeCounts() (map[uint]int, error) {
	var rows []struct {
		FilmID uint
		N      int
	}
	err := s.db.Table("film_likes").
		Select("film_id, COUNT(user_id) AS n").
		Group("film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.FilmID] = row.N
	}
	return counts, nil
}

func (s *FilmService) loadFilms(ids []uint) ([]models.Film, error) {
	var films []models.Film
	err := s.db.Preload("Genres").Preload("Directors").Preload("MpaRating").
		Where("id IN ?", ids).
		Find(&films).Error
	return films, err
}

// sortByLikeCount orders films by descending like-count, ties broken by
// ascending id.
func sortByLikeCount(films []models.Film, counts map[uint]int) {
	sort.Slice(films, func(i, j int) bool {
		a, b := films[i], films[j]
		if counts[a.ID] != counts[b.ID] {
			return counts[a.ID] > counts[b.ID]
		}
		return a.ID < b.ID
	})
}

func hasGenre(film models.Film, genreID uint) bool {
	for _, genre := range film.Genres {
		if genre != nil && genre.ID == genreID {
			return true
		}
	}
	return false
}

func hasDirectorMatching(film models.Film, needle string) bool {
	for _, director := range film.Directors {
		if director != nil && strings.Contains(strings.ToLower(director.Name), needle) {
			return true
		}
	}
	return false
}
