package repositories

import (
	"context"

	"melodex/internal/models"
)

// AlbumFilter holds the supported album listing filters. ArtistID matches
// exactly and is ignored when malformed; ReleaseYear expands to a date range
// covering the calendar year.
type AlbumFilter struct {
	Title       string
	Genre       string
	ArtistID    string
	ReleaseYear *int
}

// AlbumRepository defines the interface for album data operations
type AlbumRepository interface {
	Insert(ctx context.Context, album *models.Album) error
	Replace(ctx context.Context, id string, album *models.Album) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Album, error)
	FindByArtistTitle(ctx context.Context, artistID, title string) (*models.Album, error)
	FindByArtist(ctx context.Context, artistID string) ([]*models.Album, error)
	CountByArtist(ctx context.Context, artistID string) (int64, error)
	List(ctx context.Context, filter AlbumFilter, page PageOptions) ([]*models.Album, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
