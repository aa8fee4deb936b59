package handlers

import (
	"github.com/gin-gonic/gin"

	"melodex/internal/auth"
)

// RouterDeps holds everything the HTTP surface needs
type RouterDeps struct {
	Artists *ArtistHandler
	Albums  *AlbumHandler
	Songs   *SongHandler

	Playlists *PlaylistHandler
	Admin     *AdminHandler
	Health    *HealthHandler

	Auth auth.Strategy
}

// NewRouter builds the gin engine with all routes registered. Reads are
// public; writes and admin routes go through the configured auth strategy.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), gin.Recovery())

	router.GET("/health", deps.Health.Health)

	v1 := router.Group("/api/v1")
	protected := RequireAuth(deps.Auth)

	artists := v1.Group("/artists")
	{
		artists.GET("", deps.Artists.List)
		artists.GET("/:id", deps.Artists.Get)
		artists.POST("", protected, deps.Artists.Create)
		artists.PUT("/:id", protected, deps.Artists.Update)
		artists.DELETE("/:id", protected, deps.Artists.Delete)
	}

	albums := v1.Group("/albums")
	{
		albums.GET("", deps.Albums.List)
		albums.GET("/:id", deps.Albums.Get)
		albums.GET("/artist/:artistId", deps.Albums.ByArtist)
		albums.POST("", protected, deps.Albums.Create)
		albums.PUT("/:id", protected, deps.Albums.Update)
		albums.DELETE("/:id", protected, deps.Albums.Delete)
	}

	songs := v1.Group("/songs")
	{
		songs.GET("", deps.Songs.List)
		songs.GET("/:id", deps.Songs.Get)
		songs.GET("/album/:albumId", deps.Songs.ByAlbum)
		songs.GET("/artist/:artistId", deps.Songs.ByArtist)
		songs.POST("", protected, deps.Songs.Create)
		songs.PUT("/:id", protected, deps.Songs.Update)
		songs.DELETE("/:id", protected, deps.Songs.Delete)
	}

	playlists := v1.Group("/playlists")
	{
		playlists.GET("", deps.Playlists.List)
		playlists.GET("/:id", deps.Playlists.Get)
		playlists.GET("/:id/songs", deps.Playlists.Songs)
		playlists.POST("", protected, deps.Playlists.Create)
		playlists.PUT("/:id", protected, deps.Playlists.Update)
		playlists.DELETE("/:id", protected, deps.Playlists.Delete)
		playlists.PUT("/:id/songs/:songId", protected, deps.Playlists.AddSong)
		playlists.DELETE("/:id/songs/:songId", protected, deps.Playlists.RemoveSong)
	}

	admin := v1.Group("/admin", protected)
	{
		admin.GET("/stats", deps.Admin.Stats)
		admin.POST("/check-media", deps.Admin.CheckMedia)
	}

	return router
}
