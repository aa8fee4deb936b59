package testutil

import (
	"context"

	"melodex/internal/models"
	"melodex/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockArtistRepository is a mock implementation of ArtistRepository for testing
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Insert(ctx context.Context, artist *models.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Replace(ctx context.Context, id string, artist *models.Artist) (bool, error) {
	args := m.Called(ctx, id, artist)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) FindByID(ctx context.Context, id string) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindByName(ctx context.Context, name string) (*models.Artist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context, filter repositories.ArtistFilter, page repositories.PageOptions) ([]*models.Artist, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*models.Artist), args.Get(1).(int64), args.Error(2)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtistRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAlbumRepository is a mock implementation of AlbumRepository for testing
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) Insert(ctx context.Context, album *models.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Replace(ctx context.Context, id string, album *models.Album) (bool, error) {
	args := m.Called(ctx, id, album)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlbumRepository) FindByID(ctx context.Context, id string) (*models.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) FindByArtistTitle(ctx context.Context, artistID, title string) (*models.Album, error) {
	args := m.Called(ctx, artistID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) FindByArtist(ctx context.Context, artistID string) ([]*models.Album, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]*models.Album), args.Error(1)
}

func (m *MockAlbumRepository) CountByArtist(ctx context.Context, artistID string) (int64, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlbumRepository) List(ctx context.Context, filter repositories.AlbumFilter, page repositories.PageOptions) ([]*models.Album, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*models.Album), args.Get(1).(int64), args.Error(2)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlbumRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSongRepository is a mock implementation of SongRepository for testing
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Insert(ctx context.Context, song *models.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Replace(ctx context.Context, id string, song *models.Song) (bool, error) {
	args := m.Called(ctx, id, song)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongRepository) FindByAlbumTitle(ctx context.Context, albumID, title string) (*models.Song, error) {
	args := m.Called(ctx, albumID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongRepository) FindByAlbumTrack(ctx context.Context, albumID string, trackNumber int) (*models.Song, error) {
	args := m.Called(ctx, albumID, trackNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongRepository) FindByAlbum(ctx context.Context, albumID string) ([]*models.Song, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).([]*models.Song), args.Error(1)
}

func (m *MockSongRepository) FindByArtist(ctx context.Context, artistID string) ([]*models.Song, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).([]*models.Song), args.Error(1)
}

func (m *MockSongRepository) FindManyByIDs(ctx context.Context, ids []string) ([]*models.Song, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*models.Song), args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context, filter repositories.SongFilter, page repositories.PageOptions) ([]*models.Song, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*models.Song), args.Get(1).(int64), args.Error(2)
}

func (m *MockSongRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSongRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlaylistRepository is a mock implementation of PlaylistRepository for testing
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Insert(ctx context.Context, playlist *models.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Replace(ctx context.Context, id string, playlist *models.Playlist) (bool, error) {
	args := m.Called(ctx, id, playlist)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id string) (*models.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindByCreatorName(ctx context.Context, creatorName, name string) (*models.Playlist, error) {
	args := m.Called(ctx, creatorName, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) List(ctx context.Context, filter repositories.PlaylistFilter, page repositories.PageOptions) ([]*models.Playlist, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]*models.Playlist), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
