package service

import (
	"fmt"
	"testing"
	"time"

	"cinematch/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.FriendLink{},
		&models.MpaRating{},
		&models.Genre{},
		&models.Director{},
		&models.Film{},
		&models.Review{},
		&models.ReviewVote{},
		&models.FeedEvent{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, nickname string) models.User {
	t.Helper()

	user := models.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createFilm(t *testing.T, db *gorm.DB, name string, year int, genres ...*models.Genre) models.Film {
	t.Helper()

	film := models.Film{
		Name:        name,
		ReleaseDate: time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		Duration:    120,
		Genres:      genres,
	}
	require.NoError(t, db.Create(&film).Error)
	return film
}

func createGenre(t *testing.T, db *gorm.DB, name string) *models.Genre {
	t.Helper()

	genre := models.Genre{Name: name}
	require.NoError(t, db.Create(&genre).Error)
	return &genre
}

func likeFilm(t *testing.T, db *gorm.DB, filmID, userID uint) {
	t.Helper()
	require.NoError(t, NewFilmService(db).AddLike(filmID, userID))
}

func filmIDs(films []models.Film) []uint {
	ids := make([]uint, 0, len(films))
	for _, film := range films {
		ids = append(ids, film.ID)
	}
	return ids
}

func userIDs(users []models.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return ids
}

func countRows(t *testing.T, db *gorm.DB, table, where string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(table).Where(where, args...).Count(&n).Error)
	return n
}

// uniqueNick generates nicknames for bulk user creation in ranking tests.
func uniqueNick(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}
