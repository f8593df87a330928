package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spotlighthub/spotlight-api/internal/auth"
	"github.com/spotlighthub/spotlight-api/internal/config"
	"github.com/spotlighthub/spotlight-api/internal/database"
	"github.com/spotlighthub/spotlight-api/internal/handlers"
	"github.com/spotlighthub/spotlight-api/internal/middleware"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/services"
	"github.com/spotlighthub/spotlight-api/internal/spotify"
	"github.com/spotlighthub/spotlight-api/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize token service
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	// Initialize avatar storage
	avatars, err := storage.NewAvatarStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize avatar storage: %v", err)
	}

	// Initialize Spotify client
	spotifyClient := spotify.NewClient(spotify.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
		RedirectURI:  cfg.SpotifyRedirectURI,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	linkRepo := repository.NewSocialLinkRepository(db)
	showRepo := repository.NewShowcaseRepository(db)
	connRepo := repository.NewSpotifyConnectionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	spotifyService := services.NewSpotifyService(connRepo, spotifyClient)
	profileService := services.NewProfileService(userRepo, profileRepo, linkRepo, showRepo, connRepo, avatars)
	linkService := services.NewSocialLinkService(linkRepo)
	showcaseService := services.NewShowcaseService(showRepo, spotifyService)
	adminService := services.NewAdminService(userRepo, profileRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.MaxUploadBytes)
	linkHandler := handlers.NewSocialLinkHandler(linkService)
	showcaseHandler := handlers.NewShowcaseHandler(showcaseService)
	spotifyHandler := handlers.NewSpotifyHandler(spotifyService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the frontend origins
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// API routes
	api := r.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Spotlight API is running",
			})
		})

		// Uploaded avatars
		api.Static("/uploads/avatars", cfg.UploadDir)

		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", middleware.RequireRefreshToken(tokens), authHandler.Refresh)
			authRoutes.GET("/profile", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		// Profile routes
		profiles := api.Group("/profiles")
		{
			profiles.GET("/me", middleware.RequireAuth(tokens), profileHandler.GetMyProfile)
			profiles.PUT("/me", middleware.RequireAuth(tokens), profileHandler.UpdateMyProfile)
			profiles.POST("/me/avatar", middleware.RequireAuth(tokens), profileHandler.UploadAvatar)
			profiles.DELETE("/me/avatar", middleware.RequireAuth(tokens), profileHandler.DeleteAvatar)
			profiles.GET("/:username", profileHandler.GetPublicProfile)
		}

		// Social link routes (protected)
		links := api.Group("/social-links")
		links.Use(middleware.RequireAuth(tokens))
		{
			links.GET("", linkHandler.List)
			links.POST("", linkHandler.Create)
			links.PUT("/reorder", linkHandler.Reorder)
			links.PUT("/:id", linkHandler.Update)
			links.DELETE("/:id", linkHandler.Delete)
		}

		// Music showcase routes (protected)
		showcase := api.Group("/music-showcase")
		showcase.Use(middleware.RequireAuth(tokens))
		{
			showcase.GET("", showcaseHandler.List)
			showcase.POST("", showcaseHandler.Add)
			showcase.PUT("/reorder", showcaseHandler.Reorder)
			showcase.DELETE("/:id", showcaseHandler.Remove)
		}

		// Spotify routes (protected except the auth URL)
		spotifyRoutes := api.Group("/spotify")
		{
			spotifyRoutes.GET("/auth-url", spotifyHandler.AuthURL)
			spotifyRoutes.POST("/callback", middleware.RequireAuth(tokens), spotifyHandler.Callback)
			spotifyRoutes.GET("/status", middleware.RequireAuth(tokens), spotifyHandler.Status)
			spotifyRoutes.PUT("/artist-id", middleware.RequireAuth(tokens), spotifyHandler.SetArtist)
			spotifyRoutes.DELETE("/artist-id", middleware.RequireAuth(tokens), spotifyHandler.ClearArtist)
			spotifyRoutes.GET("/user-albums", middleware.RequireAuth(tokens), spotifyHandler.Albums)
			spotifyRoutes.GET("/album/:album_id", middleware.RequireAuth(tokens), spotifyHandler.AlbumDetails)
			spotifyRoutes.GET("/search-albums", middleware.RequireAuth(tokens), spotifyHandler.SearchAlbums)
			spotifyRoutes.GET("/search-artist", middleware.RequireAuth(tokens), spotifyHandler.SearchArtists)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin(userRepo))
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/toggle-admin", adminHandler.ToggleAdmin)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
