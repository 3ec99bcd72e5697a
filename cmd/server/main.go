package main

import (
	"fmt"
	"log"
	"net/http"

	"cinematch/backend/internal/auth"
	"cinematch/backend/internal/config"
	"cinematch/backend/internal/database"
	"cinematch/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "cinematch/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Cinematch API
// @version         1.0
// @description     This is the API for the Cinematch service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.DELETE("/me", handler.DeleteMe)
			userRoutes.GET("/me/recommendations", handler.GetRecommendations)
			userRoutes.GET("/:id", handler.GetUserByID)
			userRoutes.GET("/:id/feed", handler.GetFeed)

			// Friendship routes
			userRoutes.POST("/:id/friends", handler.SendFriendRequest)
			userRoutes.DELETE("/:id/friends", handler.RemoveFriend)
			userRoutes.GET("/:id/friends", handler.GetFriends)
			userRoutes.GET("/:id/friends/common/:otherId", handler.GetCommonFriends)
		}

		// Film routes (protected)
		filmRoutes := apiV1.Group("/films")
		filmRoutes.Use(auth.AuthMiddleware())
		{
			filmRoutes.GET("", handler.GetFilms)
			filmRoutes.GET("/popular", handler.GetPopularFilms)
			filmRoutes.GET("/search", handler.SearchFilms)
			filmRoutes.GET("/common/:otherId", handler.GetCommonFilms)
			filmRoutes.GET("/:id", handler.GetFilmByID)
			filmRoutes.PUT("/:id/like", handler.LikeFilm)
			filmRoutes.DELETE("/:id/like", handler.UnlikeFilm)
		}

		// Review routes (protected)
		reviewRoutes := apiV1.Group("/reviews")
		reviewRoutes.Use(auth.AuthMiddleware())
		{
			reviewRoutes.POST("", handler.CreateReview)
			reviewRoutes.GET("", handler.GetReviews)
			reviewRoutes.GET("/:id", handler.GetReviewByID)
			reviewRoutes.PUT("/:id", handler.UpdateReview)
			reviewRoutes.DELETE("/:id", handler.DeleteReview)
			reviewRoutes.PUT("/:id/like", handler.LikeReview)
			reviewRoutes.DELETE("/:id/like", handler.UnlikeReview)
			reviewRoutes.PUT("/:id/dislike", handler.DislikeReview)
			reviewRoutes.DELETE("/:id/dislike", handler.UndislikeReview)
		}

		// Reference data (readable without a token)
		genreRoutes := apiV1.Group("/genres")
		genreRoutes.Use(auth.OptionalAuthMiddleware())
		{
			genreRoutes.GET("", handler.GetGenres)
			genreRoutes.GET("/:id", handler.GetGenreByID)
		}

		directorRoutes := apiV1.Group("/directors")
		directorRoutes.Use(auth.OptionalAuthMiddleware())
		{
			directorRoutes.GET("", handler.GetDirectors)
			directorRoutes.GET("/:id", handler.GetDirectorByID)
			directorRoutes.GET("/:id/films", handler.GetDirectorFilms)
		}

		mpaRoutes := apiV1.Group("/mpa")
		mpaRoutes.Use(auth.OptionalAuthMiddleware())
		{
			mpaRoutes.GET("", handler.GetMpaRatings)
			mpaRoutes.GET("/:id", handler.GetMpaRatingByID)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Films CRUD (admin-only parts)
			adminFilmRoutes := adminRoutes.Group("/films")
			{
				adminFilmRoutes.POST("", handler.CreateFilm)
				adminFilmRoutes.PUT("/:id", handler.UpdateFilm)
				adminFilmRoutes.DELETE("/:id", handler.DeleteFilm)
			}

			// Genres CRUD
			adminGenreRoutes := adminRoutes.Group("/genres")
			{
				adminGenreRoutes.POST("", handler.CreateGenre)
				adminGenreRoutes.PUT("/:id", handler.UpdateGenre)
				adminGenreRoutes.DELETE("/:id", handler.DeleteGenre)
			}

			// Directors CRUD
			adminDirectorRoutes := adminRoutes.Group("/directors")
			{
				adminDirectorRoutes.POST("", handler.CreateDirector)
				adminDirectorRoutes.PUT("/:id", handler.UpdateDirector)
				adminDirectorRoutes.DELETE("/:id", handler.DeleteDirector)
			}
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
