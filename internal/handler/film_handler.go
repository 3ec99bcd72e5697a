package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/models"
	"cinematch/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type FilmInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"max=200"`
	ReleaseDate string `json:"release_date" example:"1999-03-31"`
	Duration    int    `json:"duration" binding:"omitempty,gt=0"`
	MpaID       *uint  `json:"mpa_id"`
	GenreIDs    []uint `json:"genre_ids"`
	DirectorIDs []uint `json:"director_ids"`
}

type FilmResponse struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ReleaseDate string             `json:"release_date,omitempty"`
	Duration    int                `json:"duration"`
	Mpa         *MpaResponse       `json:"mpa,omitempty"`
	Genres      []GenreResponse    `json:"genres"`
	Directors   []DirectorResponse `json:"directors"`
	Likes       int64              `json:"likes"`
}

func newFilmResponse(film models.Film) FilmResponse {
	// Per-film count query; can be optimized later if listing gets slow.
	var likes int64
	database.DB.Table("film_likes").Where("film_id = ?", film.ID).Count(&likes)

	genres := make([]GenreResponse, 0, len(film.Genres))
	for _, genre := range film.Genres {
		if genre != nil {
			genres = append(genres, newGenreResponse(*genre))
		}
	}

	directors := make([]DirectorResponse, 0, len(film.Directors))
	for _, director := range film.Directors {
		if director != nil {
			directors = append(directors, newDirectorResponse(*director))
		}
	}

	resp := FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		Duration:    film.Duration,
		Genres:      genres,
		Directors:   directors,
		Likes:       likes,
	}
	if !film.ReleaseDate.IsZero() {
		resp.ReleaseDate = film.ReleaseDate.Format("2006-01-02")
	}
	if film.MpaRating != nil {
		mpa := newMpaResponse(*film.MpaRating)
		resp.Mpa = &mpa
	}
	return resp
}

func newFilmResponses(films []models.Film) []FilmResponse {
	responses := make([]FilmResponse, 0, len(films))
	for _, film := range films {
		responses = append(responses, newFilmResponse(film))
	}
	return responses
}

// endregion

// region --- Admin Handlers ---

// CreateFilm godoc
// @Summary      Create a new film
// @Description  Creates a film and associates it with genres, directors and an MPA rating.
// @Tags         admin-films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FilmInput true "Film Info"
// @Success      201  {object}  FilmResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/films [post]
func CreateFilm(c *gin.Context) {
	var input FilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film := models.Film{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		MpaRatingID: input.MpaID,
	}
	if input.ReleaseDate != "" {
		releaseDate, err := time.Parse("2006-01-02", input.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Release date must be YYYY-MM-DD"})
			return
		}
		film.ReleaseDate = releaseDate
	}

	if len(input.GenreIDs) > 0 {
		database.DB.Find(&film.Genres, input.GenreIDs)
	}
	if len(input.DirectorIDs) > 0 {
		database.DB.Find(&film.Directors, input.DirectorIDs)
	}

	if err := database.DB.Create(&film).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create film"})
		return
	}

	database.DB.Preload("Genres").Preload("Directors").Preload("MpaRating").First(&film, film.ID)
	c.JSON(http.StatusCreated, newFilmResponse(film))
}

// UpdateFilm godoc
// @Summary      Update a film
// @Description  Updates a film's details and replaces its genres and directors.
// @Tags         admin-films
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Film ID"
// @Param        input body      FilmInput true  "New Film Info"
// @Success      200   {object}  FilmResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Film not found"
// @Router       /admin/films/{id} [put]
func UpdateFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var film models.Film
	if err := database.DB.First(&film, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Film not found"})
		return
	}

	var input FilmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film.Name = input.Name
	film.Description = input.Description
	film.Duration = input.Duration
	film.MpaRatingID = input.MpaID
	if input.ReleaseDate != "" {
		releaseDate, err := time.Parse("2006-01-02", input.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Release date must be YYYY-MM-DD"})
			return
		}
		film.ReleaseDate = releaseDate
	}

	var genres []*models.Genre
	if len(input.GenreIDs) > 0 {
		database.DB.Find(&genres, input.GenreIDs)
	}
	if err := database.DB.Model(&film).Association("Genres").Replace(genres); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update genres for film"})
		return
	}

	var directors []*models.Director
	if len(input.DirectorIDs) > 0 {
		database.DB.Find(&directors, input.DirectorIDs)
	}
	if err := database.DB.Model(&film).Association("Directors").Replace(directors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update directors for film"})
		return
	}

	database.DB.Save(&film)

	database.DB.Preload("Genres").Preload("Directors").Preload("MpaRating").First(&film, id)
	c.JSON(http.StatusOK, newFilmResponse(film))
}

// DeleteFilm godoc
// @Summary      Delete a film
// @Description  Deletes a film together with its genre, director and like associations.
// @Tags         admin-films
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Film ID"
// @Success      200 {object} map[string]string "{"message": "Film deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Film not found"
// @Router       /admin/films/{id} [delete]
func DeleteFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Select("Genres", "Directors", "LikedBy").Delete(&models.Film{}, id)
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Film not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Film deleted"})
}

// endregion

// region --- Public Handlers ---

// GetFilmByID godoc
// @Summary      Get a single film by ID
// @Description  Retrieves details for a single film, including genres, directors, MPA rating and like count.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Film ID"
// @Success      200 {object} FilmResponse
// @Failure      404 {object} ErrorResponse "Film not found"
// @Router       /films/{id} [get]
func GetFilmByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var film models.Film
	if err := database.DB.Preload("Genres").Preload("Directors").Preload("MpaRating").First(&film, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Film not found"})
		return
	}

	c.JSON(http.StatusOK, newFilmResponse(film))
}

// GetFilms godoc
// @Summary      Get a list of films
// @Description  Retrieves a paginated list of films, with optional name filtering.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        q     query  string  false  "Search query for film name"
// @Param        page  query  int     false  "Page number" default(1)
// @Param        limit query  int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedResponse[FilmResponse]
// @Router       /films [get]
func GetFilms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = pageParams(page, limit)
	searchQuery := c.Query("q")

	query := database.DB.Model(&models.Film{})
	if searchQuery != "" {
		// Both sides lowered; postgres LIKE is case-sensitive.
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(searchQuery)+"%")
	}

	query = query.Preload("Genres").Preload("Directors").Preload("MpaRating")
	films, totalItems, err := Paginate[models.Film](query, "id ASC", page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve films"})
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(newFilmResponses(films), totalItems, page, limit))
}

// GetPopularFilms godoc
// @Summary      Get most popular films
// @Description  Returns the most liked films, optionally filtered by genre and release year. With both filters applied the result is in ascending id order.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        count     query  int  false  "Maximum films to return" default(10)
// @Param        genre_id  query  int  false  "Filter by genre ID"
// @Param        year      query  int  false  "Filter by release year"
// @Success      200 {array} FilmResponse
// @Router       /films/popular [get]
func GetPopularFilms(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
		return
	}

	var genreID *uint
	if raw := c.Query("genre_id"); raw != "" {
		parsed, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre_id"})
			return
		}
		id := uint(parsed)
		genreID = &id
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = &parsed
	}

	films, err := service.NewFilmService(database.DB).MostPopular(count, genreID, year)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFilmResponses(films))
}

// GetCommonFilms godoc
// @Summary      Get films liked by both users
// @Description  Returns films liked by both the viewer and the other user, most liked first.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        otherId path int true "Other User ID"
// @Success      200 {array} FilmResponse
// @Failure      404 {object} ErrorResponse
// @Router       /films/common/{otherId} [get]
func GetCommonFilms(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	films, err := service.NewFilmService(database.DB).CommonFilms(viewerID.(uint), otherID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFilmResponses(films))
}

// SearchFilms godoc
// @Summary      Search films
// @Description  Case-insensitive substring search over film titles and/or director names, most liked first. A blank query returns the whole catalog.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Search query"
// @Param        by query  string  false  "Search fields: title, director, or title,director" default(title,director)
// @Success      200 {array} FilmResponse
// @Router       /films/search [get]
func SearchFilms(c *gin.Context) {
	query := c.Query("q")
	by := c.DefaultQuery("by", service.SearchByTitleDirector)

	films, err := service.NewFilmService(database.DB).Search(query, by)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFilmResponses(films))
}

// LikeFilm godoc
// @Summary      Like a film
// @Description  Adds the viewer's like to a film. Liking twice is a no-op.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Film ID"
// @Success      200 {object} map[string]string "{"message": "Liked"}"
// @Failure      404 {object} ErrorResponse "User or film not found"
// @Router       /films/{id}/like [put]
func LikeFilm(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewFilmService(database.DB).AddLike(filmID, viewerID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Liked"})
}

// UnlikeFilm godoc
// @Summary      Remove a like from a film
// @Description  Removes the viewer's like from a film. Removing an absent like is a no-op.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Film ID"
// @Success      200 {object} map[string]string "{"message": "Like removed"}"
// @Failure      404 {object} ErrorResponse "User or film not found"
// @Router       /films/{id}/like [delete]
func UnlikeFilm(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewFilmService(database.DB).RemoveLike(filmID, viewerID.(uint)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}

// GetRecommendations godoc
// @Summary      Get film recommendations
// @Description  Returns films liked by the viewer's most similar user that the viewer has not liked yet.
// @Tags         films
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} FilmResponse
// @Failure      401 {object} ErrorResponse
// @Router       /users/me/recommendations [get]
func GetRecommendations(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	films, err := service.NewRecommendationService(database.DB).Recommend(viewerID.(uint))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFilmResponses(films))
}

// endregion
