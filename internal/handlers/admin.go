package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"melodex/internal/apperr"
	"melodex/internal/repositories"
	"melodex/internal/services"
)

// CatalogStats reports document counts per collection
type CatalogStats struct {
	Artists     int64     `json:"artists"`
	Albums      int64     `json:"albums"`
	Songs       int64     `json:"songs"`
	Playlists   int64     `json:"playlists"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AdminHandler handles operator requests
type AdminHandler struct {
	artists   repositories.ArtistRepository
	albums    repositories.AlbumRepository
	songs     repositories.SongRepository
	playlists repositories.PlaylistRepository
	media     *services.MediaChecker
	debug     bool
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	artists repositories.ArtistRepository,
	albums repositories.AlbumRepository,
	songs repositories.SongRepository,
	playlists repositories.PlaylistRepository,
	media *services.MediaChecker,
	debug bool,
) *AdminHandler {
	return &AdminHandler{
		artists:   artists,
		albums:    albums,
		songs:     songs,
		playlists: playlists,
		media:     media,
		debug:     debug,
	}
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := CatalogStats{GeneratedAt: time.Now()}

	var err error
	if stats.Artists, err = h.artists.Count(ctx); err != nil {
		respondError(c, apperr.Internal(err), h.debug)
		return
	}
	if stats.Albums, err = h.albums.Count(ctx); err != nil {
		respondError(c, apperr.Internal(err), h.debug)
		return
	}
	if stats.Songs, err = h.songs.Count(ctx); err != nil {
		respondError(c, apperr.Internal(err), h.debug)
		return
	}
	if stats.Playlists, err = h.playlists.Count(ctx); err != nil {
		respondError(c, apperr.Internal(err), h.debug)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CheckMediaRequest is the body for the media reachability probe
type CheckMediaRequest struct {
	URL string `json:"url" binding:"required"`
}

// CheckMedia handles POST /api/v1/admin/check-media. It probes a stored
// cover_image_url or audio_url value and reports whether the host answers.
func (h *AdminHandler) CheckMedia(c *gin.Context) {
	var req CheckMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	result := h.media.Check(c.Request.Context(), req.URL)
	c.JSON(http.StatusOK, result)
}
