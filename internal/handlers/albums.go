package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/internal/repositories"
	"melodex/internal/services"
)

// AlbumHandler handles album-related requests
type AlbumHandler struct {
	service *services.AlbumService
	debug   bool
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(service *services.AlbumService, debug bool) *AlbumHandler {
	return &AlbumHandler{service: service, debug: debug}
}

// List handles GET /api/v1/albums
func (h *AlbumHandler) List(c *gin.Context) {
	page, err := pageOptions(c)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	filter := repositories.AlbumFilter{
		Title:       c.Query("title"),
		Genre:       c.Query("genre"),
		ArtistID:    c.Query("artist_id"),
		ReleaseYear: queryIntPtr(c, "release_year"),
	}

	albums, pagination, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"albums":     albums,
		"pagination": pagination,
	})
}

// Get handles GET /api/v1/albums/:id
func (h *AlbumHandler) Get(c *gin.Context) {
	album, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, album)
}

// ByArtist handles GET /api/v1/albums/artist/:artistId. Returns a bare
// array in release order; an unknown artist yields an empty array.
func (h *AlbumHandler) ByArtist(c *gin.Context) {
	albums, err := h.service.ByArtist(c.Request.Context(), c.Param("artistId"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Create handles POST /api/v1/albums
func (h *AlbumHandler) Create(c *gin.Context) {
	var in services.AlbumInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	album, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Album created successfully",
		"album":   album,
	})
}

// Update handles PUT /api/v1/albums/:id
func (h *AlbumHandler) Update(c *gin.Context) {
	var in services.AlbumInput
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

// Delete handles DELETE /api/v1/albums/:id
func (h *AlbumHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Album deleted successfully"})
}
