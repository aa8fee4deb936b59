package repositories

import (
	"context"

	"melodex/internal/models"
)

// PlaylistFilter holds the supported playlist listing filters
type PlaylistFilter struct {
	Name        string
	CreatorName string
	Tag         string
	IsPublic    *bool
}

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	Insert(ctx context.Context, playlist *models.Playlist) error
	Replace(ctx context.Context, id string, playlist *models.Playlist) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Playlist, error)
	FindByCreatorName(ctx context.Context, creatorName, name string) (*models.Playlist, error)
	List(ctx context.Context, filter PlaylistFilter, page PageOptions) ([]*models.Playlist, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
