package service

import (
	"testing"

	"cinematch/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createReview(t *testing.T, db *gorm.DB, userID, filmID uint, positive bool) *models.Review {
	t.Helper()
	review := &models.Review{
		Content:    "worth watching",
		IsPositive: positive,
		UserID:     userID,
		FilmID:     filmID,
	}
	require.NoError(t, NewReviewService(db).Add(review))
	return review
}

func TestAddReviewEmitsEvent(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	film := createFilm(t, db, "Heat", 1995)

	review := createReview(t, db, alice.ID, film.ID, true)
	assert.Equal(t, 0, review.Useful)

	events, err := NewFeedService(db).GetFeed(alice.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeReview, events[0].EventType)
	assert.Equal(t, models.OperationAdd, events[0].Operation)
	assert.Equal(t, review.ID, events[0].EntityID)
}

func TestAddReviewRequiresExistingUserAndFilm(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewReviewService(db)

	err := svc.Add(&models.Review{Content: "x", UserID: 999, FilmID: film.ID})
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Add(&models.Review{Content: "x", UserID: alice.ID, FilmID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReviewOnlyByAuthor(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewReviewService(db)

	review := createReview(t, db, alice.ID, film.ID, true)

	_, err := svc.Update(review.ID, bob.ID, "hated it", false)
	assert.ErrorIs(t, err, ErrNotAuthor)

	updated, err := svc.Update(review.ID, alice.ID, "hated it", false)
	require.NoError(t, err)
	assert.Equal(t, "hated it", updated.Content)
	assert.False(t, updated.IsPositive)

	events, err := NewFeedService(db).GetFeed(alice.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.OperationUpdate, events[1].Operation)
}

func TestDeleteReviewRemovesVotes(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewReviewService(db)

	review := createReview(t, db, alice.ID, film.ID, true)
	require.NoError(t, svc.Vote(review.ID, bob.ID, true))

	require.NoError(t, svc.Delete(review.ID))

	_, err := svc.GetByID(review.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, "review_votes", "review_id = ?", review.ID))

	// Deletion is attributed to the author, not the caller.
	events, err := NewFeedService(db).GetFeed(alice.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.OperationRemove, events[1].Operation)
}

func TestVoteRecalculatesUseful(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewReviewService(db)

	review := createReview(t, db, alice.ID, film.ID, true)

	require.NoError(t, svc.Vote(review.ID, bob.ID, true))
	require.NoError(t, svc.Vote(review.ID, carol.ID, false))

	got, err := svc.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Useful)

	// A repeat vote replaces the previous one instead of stacking.
	require.NoError(t, svc.Vote(review.ID, carol.ID, true))
	got, err = svc.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Useful)
	assert.EqualValues(t, 2, countRows(t, db, "review_votes", "review_id = ?", review.ID))
}

func TestUnvoteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	film := createFilm(t, db, "Heat", 1995)
	svc := NewReviewService(db)

	review := createReview(t, db, alice.ID, film.ID, true)
	require.NoError(t, svc.Vote(review.ID, bob.ID, true))

	require.NoError(t, svc.Unvote(review.ID, bob.ID, true))
	require.NoError(t, svc.Unvote(review.ID, bob.ID, true))

	got, err := svc.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Useful)

	// Removing a like does not touch a dislike vote and vice versa.
	require.NoError(t, svc.Vote(review.ID, bob.ID, false))
	require.NoError(t, svc.Unvote(review.ID, bob.ID, true))
	got, err = svc.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Useful)
}

func TestListReviewsOrdersByUsefulness(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	filmA := createFilm(t, db, "Heat", 1995)
	filmB := createFilm(t, db, "Ronin", 1998)
	svc := NewReviewService(db)

	first := createReview(t, db, alice.ID, filmA.ID, true)
	second := createReview(t, db, bob.ID, filmA.ID, false)
	other := createReview(t, db, carol.ID, filmB.ID, true)

	require.NoError(t, svc.Vote(second.ID, alice.ID, true))
	require.NoError(t, svc.Vote(second.ID, carol.ID, true))
	require.NoError(t, svc.Vote(first.ID, bob.ID, true))

	reviews, err := svc.List(nil, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
	assert.Equal(t, other.ID, reviews[2].ID)

	// Film filter.
	reviews, err = svc.List(&filmB.ID, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, other.ID, reviews[0].ID)

	// Non-positive count falls back to the default limit.
	reviews, err = svc.List(nil, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	unknown := uint(999)
	_, err = svc.List(&unknown, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}
