package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/internal/repositories"
	"melodex/internal/services"
)

// SongHandler handles song-related requests
type SongHandler struct {
	service *services.SongService
	debug   bool
}

// NewSongHandler creates a new song handler
func NewSongHandler(service *services.SongService, debug bool) *SongHandler {
	return &SongHandler{service: service, debug: debug}
}

// List handles GET /api/v1/songs
func (h *SongHandler) List(c *gin.Context) {
	page, err := pageOptions(c)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	filter := repositories.SongFilter{
		Title:       c.Query("title"),
		Genre:       c.Query("genre"),
		AlbumID:     c.Query("album_id"),
		ArtistID:    c.Query("artist_id"),
		DurationMin: queryIntPtr(c, "duration_min"),
		DurationMax: queryIntPtr(c, "duration_max"),
	}

	songs, pagination, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"songs":      songs,
		"pagination": pagination,
	})
}

// Get handles GET /api/v1/songs/:id
func (h *SongHandler) Get(c *gin.Context) {
	song, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, song)
}

// ByAlbum handles GET /api/v1/songs/album/:albumId. Returns a bare array
// in track order; an unknown album yields an empty array.
func (h *SongHandler) ByAlbum(c *gin.Context) {
	songs, err := h.service.ByAlbum(c.Request.Context(), c.Param("albumId"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// ByArtist handles GET /api/v1/songs/artist/:artistId
func (h *SongHandler) ByArtist(c *gin.Context) {
	songs, err := h.service.ByArtist(c.Request.Context(), c.Param("artistId"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// Create handles POST /api/v1/songs
func (h *SongHandler) Create(c *gin.Context) {
	var in services.SongInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	song, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Song created successfully",
		"song":    song,
	})
}

// Update handles PUT /api/v1/songs/:id
func (h *SongHandler) Update(c *gin.Context) {
	var in services.SongInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), &in); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/songs/:id
func (h *SongHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Song deleted successfully"})
}
