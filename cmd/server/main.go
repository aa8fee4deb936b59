package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"melodex/internal/auth"
	"melodex/internal/cache"
	"melodex/internal/config"
	"melodex/internal/handlers"
	"melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/services"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	db, err := models.NewDatabase(ctx, cfg.MongodbURL, cfg.MongodbDatabase)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.CreateIndexes(ctx); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	// Cache is optional. Without VALKEY_URL artist reads hit Mongo directly.
	var store cache.Cache
	if cfg.ValkeyURL != "" {
		store, err = cache.NewValkeyCache(cfg.ValkeyURL)
		if err != nil {
			slog.Error("Failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	strategy, err := auth.New(cfg.AuthMode, cfg.AuthToken, cfg.JWTSecret)
	if err != nil {
		slog.Error("Invalid auth configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Write authentication configured", "mode", strategy.Name())

	artistRepo := repositories.NewMongoArtistRepository(db)
	if store != nil {
		artistRepo = repositories.NewCachedArtistRepository(artistRepo, store)
	}
	albumRepo := repositories.NewMongoAlbumRepository(db)
	songRepo := repositories.NewMongoSongRepository(db)
	playlistRepo := repositories.NewMongoPlaylistRepository(db)

	artistService := services.NewArtistService(artistRepo, albumRepo)
	albumService := services.NewAlbumService(albumRepo, artistRepo)
	songService := services.NewSongService(songRepo, albumRepo, artistRepo)
	playlistService := services.NewPlaylistService(playlistRepo, songRepo)
	mediaChecker := services.NewMediaChecker(time.Duration(cfg.MediaCheckTimeoutSeconds) * time.Second)

	router := handlers.NewRouter(handlers.RouterDeps{
		Artists:   handlers.NewArtistHandler(artistService, cfg.Debug),
		Albums:    handlers.NewAlbumHandler(albumService, cfg.Debug),
		Songs:     handlers.NewSongHandler(songService, cfg.Debug),
		Playlists: handlers.NewPlaylistHandler(playlistService, cfg.Debug),
		Admin:     handlers.NewAdminHandler(artistRepo, albumRepo, songRepo, playlistRepo, mediaChecker, cfg.Debug),
		Health:    handlers.NewHealthHandler(db, store),
		Auth:      strategy,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}
