package repositories

import (
	"context"

	"melodex/internal/models"
)

// SongFilter holds the supported song listing filters. Duration bounds are
// inclusive; reference-ID filters match exactly and are ignored when
// malformed.
type SongFilter struct {
	Title       string
	Genre       string
	AlbumID     string
	ArtistID    string
	DurationMin *int
	DurationMax *int
}

// SongRepository defines the interface for song data operations
type SongRepository interface {
	Insert(ctx context.Context, song *models.Song) error
	Replace(ctx context.Context, id string, song *models.Song) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Song, error)
	FindByAlbumTitle(ctx context.Context, albumID, title string) (*models.Song, error)
	FindByAlbumTrack(ctx context.Context, albumID string, trackNumber int) (*models.Song, error)
	FindByAlbum(ctx context.Context, albumID string) ([]*models.Song, error)
	FindByArtist(ctx context.Context, artistID string) ([]*models.Song, error)
	FindManyByIDs(ctx context.Context, ids []string) ([]*models.Song, error)
	List(ctx context.Context, filter SongFilter, page PageOptions) ([]*models.Song, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
