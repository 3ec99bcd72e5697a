package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinematch/backend/internal/auth"
	"cinematch/backend/internal/config"
	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FriendLink{},
		&models.MpaRating{},
		&models.Genre{},
		&models.Director{},
		&models.Film{},
		&models.Review{},
		&models.ReviewVote{},
		&models.FeedEvent{},
	))
	database.DB = db

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("", SearchUsers)
	userRoutes.GET("/me", GetMe)
	userRoutes.DELETE("/me", DeleteMe)
	userRoutes.GET("/me/recommendations", GetRecommendations)
	userRoutes.GET("/:id", GetUserByID)
	userRoutes.GET("/:id/feed", GetFeed)
	userRoutes.POST("/:id/friends", SendFriendRequest)
	userRoutes.DELETE("/:id/friends", RemoveFriend)
	userRoutes.GET("/:id/friends", GetFriends)
	userRoutes.GET("/:id/friends/common/:otherId", GetCommonFriends)

	filmRoutes := apiV1.Group("/films")
	filmRoutes.Use(auth.AuthMiddleware())
	filmRoutes.GET("", GetFilms)
	filmRoutes.GET("/popular", GetPopularFilms)
	filmRoutes.GET("/:id", GetFilmByID)
	filmRoutes.PUT("/:id/like", LikeFilm)
	filmRoutes.DELETE("/:id/like", UnlikeFilm)

	directorRoutes := apiV1.Group("/directors")
	directorRoutes.Use(auth.OptionalAuthMiddleware())
	directorRoutes.GET("/:id/films", GetDirectorFilms)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAccount(t *testing.T, router *gin.Engine, nickname string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Nickname: nickname,
		Email:    nickname + "@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	registerAccount(t, router, "alice")

	// Duplicate nickname is rejected.
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Nickname: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Login:    "alice",
		Password: "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Login:    "alice",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMe(t *testing.T) {
	router := setupRouter(t)
	token := registerAccount(t, router, "alice")

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Nickname)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestFriendFlow(t *testing.T) {
	router := setupRouter(t)
	aliceToken := registerAccount(t, router, "alice")
	bobToken := registerAccount(t, router, "bob")

	var alice, bob models.User
	require.NoError(t, database.DB.Where("nickname = ?", "alice").First(&alice).Error)
	require.NoError(t, database.DB.Where("nickname = ?", "bob").First(&bob).Error)

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/friends", bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Alice lists Bob even while the request is pending.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/friends", alice.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var friends []UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	// Bob has no link of his own yet.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/friends", bob.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	friends = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	assert.Empty(t, friends)

	// Bob accepts by sending back.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/friends", alice.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/friends", bob.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	friends = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, alice.ID, friends[0].ID)

	// Befriending yourself is a 400, unknown targets a 404.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/friends", alice.ID), aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/999/friends", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeAndPopularFlow(t *testing.T) {
	router := setupRouter(t)
	aliceToken := registerAccount(t, router, "alice")
	bobToken := registerAccount(t, router, "bob")

	filmA := models.Film{Name: "Alien"}
	filmB := models.Film{Name: "Blade Runner"}
	require.NoError(t, database.DB.Create(&filmA).Error)
	require.NoError(t, database.DB.Create(&filmB).Error)

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/films/%d/like", filmB.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/films/%d/like", filmB.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/films/%d/like", filmA.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/films/popular?count=10", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var popular []FilmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &popular))
	require.Len(t, popular, 2)
	assert.Equal(t, filmB.ID, popular[0].ID)
	assert.Equal(t, filmA.ID, popular[1].ID)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/films/%d/like", filmB.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Liking a missing film is a 404.
	w = doJSON(t, router, http.MethodPut, "/api/v1/films/999/like", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchUsersMixedCaseQuery(t *testing.T) {
	router := setupRouter(t)
	token := registerAccount(t, router, "CinemaFan")
	registerAccount(t, router, "bob")

	// The bound pattern must be lowercased to match LOWER(nickname).
	w := doJSON(t, router, http.MethodGet, "/api/v1/users?q=Cinema", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse[UserResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CinemaFan", resp.Data[0].Nickname)
	assert.EqualValues(t, 1, resp.Meta.TotalItems)
}

func TestGetFilmsMixedCaseQueryAndPagination(t *testing.T) {
	router := setupRouter(t)
	token := registerAccount(t, router, "alice")

	for _, name := range []string{"Alien", "Aliens", "Blade Runner"} {
		require.NoError(t, database.DB.Create(&models.Film{Name: name}).Error)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/films?q=ALIEN", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse[FilmResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Alien", resp.Data[0].Name)
	assert.Equal(t, "Aliens", resp.Data[1].Name)

	// Page size 1 still reports the full match count.
	w = doJSON(t, router, http.MethodGet, "/api/v1/films?q=alien&limit=1&page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = PaginatedResponse[FilmResponse]{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Aliens", resp.Data[0].Name)
	assert.EqualValues(t, 2, resp.Meta.TotalItems)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestGetDirectorFilms(t *testing.T) {
	router := setupRouter(t)

	director := models.Director{Name: "Ridley Scott"}
	require.NoError(t, database.DB.Create(&director).Error)
	film := models.Film{Name: "Alien", Directors: []*models.Director{&director}}
	require.NoError(t, database.DB.Create(&film).Error)

	// Readable without a token, like the other reference-data routes.
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/directors/%d/films", director.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var films []FilmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &films))
	require.Len(t, films, 1)
	assert.Equal(t, film.ID, films[0].ID)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/directors/%d/films?sortBy=rating", director.ID), "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/directors/999/films", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMeRemovesAccount(t *testing.T) {
	router := setupRouter(t)
	token := registerAccount(t, router, "alice")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token still parses, but the account is gone.
	w = doJSON(t, router, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
