package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"melodex/internal/repositories"
	"melodex/internal/services"
)

// ArtistHandler handles artist-related requests
type ArtistHandler struct {
	service *services.ArtistService
	debug   bool
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(service *services.ArtistService, debug bool) *ArtistHandler {
	return &ArtistHandler{service: service, debug: debug}
}

// List handles GET /api/v1/artists
func (h *ArtistHandler) List(c *gin.Context) {
	page, err := pageOptions(c)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	filter := repositories.ArtistFilter{
		Name:       c.Query("name"),
		Genre:      c.Query("genre"),
		Country:    c.Query("country"),
		FormedYear: queryIntPtr(c, "formed_year"),
	}

	artists, pagination, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artists":    artists,
		"pagination": pagination,
	})
}

// Get handles GET /api/v1/artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// Create handles POST /api/v1/artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var in services.ArtistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err), h.debug)
		return
	}

	artist, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Artist created successfully",
		"artist":  artist,
	})
}

// Update handles PUT /api/v1/artists/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	var in services.ArtistInput
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

// Delete handles DELETE /api/v1/artists/:id
func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}
