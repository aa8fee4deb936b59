package repositories

import (
	"context"

	"melodex/internal/models"
)

// ArtistFilter holds the supported artist listing filters. String fields
// match by case-insensitive substring; FormedYear matches exactly.
type ArtistFilter struct {
	Name       string
	Genre      string
	Country    string
	FormedYear *int
}

// ArtistRepository defines the interface for artist data operations
type ArtistRepository interface {
	Insert(ctx context.Context, artist *models.Artist) error
	Replace(ctx context.Context, id string, artist *models.Artist) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Artist, error)
	FindByName(ctx context.Context, name string) (*models.Artist, error)
	List(ctx context.Context, filter ArtistFilter, page PageOptions) ([]*models.Artist, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
