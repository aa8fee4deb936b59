package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/internal/repositories"
	"melodex/internal/services"
)

// PlaylistHandler handles playlist-related requests
type PlaylistHandler struct {
	service *services.PlaylistService
	debug   bool
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(service *services.PlaylistService, debug bool) *PlaylistHandler {
	return &PlaylistHandler{service: service, debug: debug}
}

// List handles GET /api/v1/playlists
func (h *PlaylistHandler) List(c *gin.Context) {
	page, err := pageOptions(c)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	filter := repositories.PlaylistFilter{
		Name:        c.Query("name"),
		CreatorName: c.Query("creator_name"),
		Tag:         c.Query("tag"),
		IsPublic:    queryBoolPtr(c, "is_public"),
	}

	playlists, pagination, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"playlists":  playlists,
		"pagination": pagination,
	})
}

// Get handles GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// Songs handles GET /api/v1/playlists/:id/songs. Returns the playlist's
// songs as a bare array in stored order; ids that no longer resolve are
// dropped. The playlist itself must exist.
func (h *PlaylistHandler) Songs(c *gin.Context) {
	songs, err := h.service.Songs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var in services.PlaylistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	playlist, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Playlist created successfully",
		"playlist": playlist,
	})
}

// Update handles PUT /api/v1/playlists/:id
func (h *PlaylistHandler) Update(c *gin.Context) {
	var in services.PlaylistInput
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

// Delete handles DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted successfully"})
}

// AddSong handles PUT /api/v1/playlists/:id/songs/:songId
func (h *PlaylistHandler) AddSong(c *gin.Context) {
	if err := h.service.AddSong(c.Request.Context(), c.Param("id"), c.Param("songId")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Song added to playlist"})
}

// RemoveSong handles DELETE /api/v1/playlists/:id/songs/:songId. Removing
// a song that is not in the playlist succeeds.
func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	if err := h.service.RemoveSong(c.Request.Context(), c.Param("id"), c.Param("songId")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Song removed from playlist"})
}
