package service

import (
	"testing"

	"cinematch/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewFilmService(db)

	require.NoError(t, svc.AddLike(film.ID, user.ID))
	require.NoError(t, svc.AddLike(film.ID, user.ID))

	assert.EqualValues(t, 1, countRows(t, db, "film_likes", "film_id = ?", film.ID))

	// Only the first like produces an event.
	events, err := NewFeedService(db).GetFeed(user.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeLike, events[0].EventType)
	assert.Equal(t, models.OperationAdd, events[0].Operation)
	assert.Equal(t, film.ID, events[0].EntityID)
}

func TestRemoveLikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewFilmService(db)

	require.NoError(t, svc.AddLike(film.ID, user.ID))
	require.NoError(t, svc.RemoveLike(film.ID, user.ID))
	require.NoError(t, svc.RemoveLike(film.ID, user.ID))

	assert.EqualValues(t, 0, countRows(t, db, "film_likes", "film_id = ?", film.ID))

	events, err := NewFeedService(db).GetFeed(user.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.OperationRemove, events[1].Operation)
}

func TestLikeRequiresExistingFilmAndUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewFilmService(db)

	assert.ErrorIs(t, svc.AddLike(999, user.ID), ErrNotFound)
	assert.ErrorIs(t, svc.AddLike(film.ID, 999), ErrNotFound)
	assert.ErrorIs(t, svc.RemoveLike(999, user.ID), ErrNotFound)
}

func TestMostPopularOrdersByLikesThenID(t *testing.T) {
	db := newTestDB(t)
	filmA := createFilm(t, db, "Alien", 1979)
	filmB := createFilm(t, db, "Blade Runner", 1982)
	filmC := createFilm(t, db, "Casablanca", 1942)
	svc := NewFilmService(db)

	var users []models.User
	for i := 0; i < 3; i++ {
		users = append(users, createUser(t, db, uniqueNick("u", i)))
	}

	// A and B tie at 3 likes, C has 1.
	for _, user := range users {
		likeFilm(t, db, filmA.ID, user.ID)
		likeFilm(t, db, filmB.ID, user.ID)
	}
	likeFilm(t, db, filmC.ID, users[0].ID)

	popular, err := svc.MostPopular(2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID}, filmIDs(popular))

	popular, err = svc.MostPopular(10, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID, filmC.ID}, filmIDs(popular))
}

func TestMostPopularNonPositiveCountReturnsNothing(t *testing.T) {
	db := newTestDB(t)
	createFilm(t, db, "Alien", 1979)

	popular, err := NewFilmService(db).MostPopular(0, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, popular)
}

func TestMostPopularSingleFilterKeepsPopularityOrder(t *testing.T) {
	db := newTestDB(t)
	horror := createGenre(t, db, "Horror")
	drama := createGenre(t, db, "Drama")
	filmA := createFilm(t, db, "Alien", 1979, horror)
	filmB := createFilm(t, db, "The Thing", 1982, horror)
	createFilm(t, db, "Amadeus", 1984, drama)

	userA := createUser(t, db, "alice")
	userB := createUser(t, db, "bob")
	likeFilm(t, db, filmB.ID, userA.ID)
	likeFilm(t, db, filmB.ID, userB.ID)
	likeFilm(t, db, filmA.ID, userA.ID)

	genreID := horror.ID
	popular, err := NewFilmService(db).MostPopular(10, &genreID, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmB.ID, filmA.ID}, filmIDs(popular))
}

func TestMostPopularGenreAndYearTogetherOrderByID(t *testing.T) {
	db := newTestDB(t)
	horror := createGenre(t, db, "Horror")
	filmA := createFilm(t, db, "The Thing", 1982, horror)
	filmB := createFilm(t, db, "Poltergeist", 1982, horror)
	createFilm(t, db, "Alien", 1979, horror)

	// filmB is more liked, but the combined filter orders by id.
	userA := createUser(t, db, "alice")
	userB := createUser(t, db, "bob")
	likeFilm(t, db, filmB.ID, userA.ID)
	likeFilm(t, db, filmB.ID, userB.ID)

	genreID := horror.ID
	year := 1982
	popular, err := NewFilmService(db).MostPopular(10, &genreID, &year)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID}, filmIDs(popular))
}

func TestCommonFilms(t *testing.T) {
	db := newTestDB(t)
	filmA := createFilm(t, db, "Alien", 1979)
	filmB := createFilm(t, db, "Blade Runner", 1982)
	filmC := createFilm(t, db, "Casablanca", 1942)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	svc := NewFilmService(db)

	likeFilm(t, db, filmA.ID, alice.ID)
	likeFilm(t, db, filmB.ID, alice.ID)
	likeFilm(t, db, filmC.ID, alice.ID)
	likeFilm(t, db, filmA.ID, bob.ID)
	likeFilm(t, db, filmB.ID, bob.ID)
	// Extra like pushes B above A in combined popularity.
	likeFilm(t, db, filmB.ID, carol.ID)

	common, err := svc.CommonFilms(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmB.ID, filmA.ID}, filmIDs(common))

	_, err = svc.CommonFilms(alice.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilmsByDirector(t *testing.T) {
	db := newTestDB(t)
	ridley := models.Director{Name: "Ridley Scott"}
	require.NoError(t, db.Create(&ridley).Error)

	// Created out of release order so the year sort has work to do.
	filmB := createFilm(t, db, "Blade Runner", 1982)
	require.NoError(t, db.Model(&filmB).Association("Directors").Append(&ridley))
	filmA := createFilm(t, db, "Alien", 1979)
	require.NoError(t, db.Model(&filmA).Association("Directors").Append(&ridley))
	createFilm(t, db, "Unrelated", 1990)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	likeFilm(t, db, filmB.ID, alice.ID)
	likeFilm(t, db, filmB.ID, bob.ID)
	likeFilm(t, db, filmA.ID, alice.ID)

	svc := NewFilmService(db)

	films, err := svc.ByDirector(ridley.ID, SortByYear)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID}, filmIDs(films))

	films, err = svc.ByDirector(ridley.ID, SortByLikes)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmB.ID, filmA.ID}, filmIDs(films))

	_, err = svc.ByDirector(999, SortByYear)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilmsByDirectorWithNoCredits(t *testing.T) {
	db := newTestDB(t)
	director := models.Director{Name: "Uncredited"}
	require.NoError(t, db.Create(&director).Error)

	films, err := NewFilmService(db).ByDirector(director.ID, SortByYear)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSearchByTitleAndDirector(t *testing.T) {
	db := newTestDB(t)
	ridley := models.Director{Name: "Ridley Scott"}
	require.NoError(t, db.Create(&ridley).Error)

	filmA := createFilm(t, db, "Alien", 1979)
	require.NoError(t, db.Model(&filmA).Association("Directors").Append(&ridley))
	filmB := createFilm(t, db, "Blade Runner", 1982)
	require.NoError(t, db.Model(&filmB).Association("Directors").Append(&ridley))
	filmC := createFilm(t, db, "Alienator", 1990)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	likeFilm(t, db, filmC.ID, alice.ID)
	likeFilm(t, db, filmC.ID, bob.ID)
	likeFilm(t, db, filmA.ID, alice.ID)

	svc := NewFilmService(db)

	// Title match, case-insensitive, most liked first.
	results, err := svc.Search("alien", SearchByTitle)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmC.ID, filmA.ID}, filmIDs(results))

	// Director match.
	results, err = svc.Search("scott", SearchByDirector)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID}, filmIDs(results))

	// Union of both fields, deduplicated.
	results, err = svc.Search("alien", SearchByTitleDirector)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmC.ID, filmA.ID}, filmIDs(results))
}

func TestSearchBlankQueryReturnsCatalog(t *testing.T) {
	db := newTestDB(t)
	filmA := createFilm(t, db, "Alien", 1979)
	filmB := createFilm(t, db, "Blade Runner", 1982)

	results, err := NewFilmService(db).Search("   ", SearchByTitleDirector)
	require.NoError(t, err)
	assert.Equal(t, []uint{filmA.ID, filmB.ID}, filmIDs(results))
}

func TestSearchUnknownFieldMatchesNothing(t *testing.T) {
	db := newTestDB(t)
	createFilm(t, db, "Alien", 1979)

	results, err := NewFilmService(db).Search("alien", "genre")
	require.NoError(t, err)
	assert.Empty(t, results)
}
