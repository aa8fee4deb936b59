package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"melodex/internal/apperr"
	"melodex/internal/models"
	"melodex/internal/testutil"
)

func validSongInput(albumID, artistID string) *SongInput {
	return &SongInput{
		Title:       strPtr("Time"),
		AlbumID:     strPtr(albumID),
		ArtistID:    strPtr(artistID),
		Duration:    intPtr(413),
		TrackNumber: intPtr(4),
		Genre:       strPtr("progressive rock"),
	}
}

type songFixtures struct {
	songs   *testutil.MockSongRepository
	albums  *testutil.MockAlbumRepository
	artists *testutil.MockArtistRepository
	service *SongService
	album   *models.Album
	artist  *models.Artist
}

func newSongFixtures() *songFixtures {
	f := &songFixtures{
		songs:   &testutil.MockSongRepository{},
		albums:  &testutil.MockAlbumRepository{},
		artists: &testutil.MockArtistRepository{},
		artist:  testutil.NewArtistBuilder().Build(),
	}
	f.album = testutil.NewAlbumBuilder().WithArtistID(f.artist.ID.Hex()).Build()
	f.service = NewSongService(f.songs, f.albums, f.artists)
	return f
}

func (f *songFixtures) input() *SongInput {
	return validSongInput(f.album.ID.Hex(), f.artist.ID.Hex())
}

func (f *songFixtures) resolveOK() {
	f.albums.On("FindByID", mock.Anything, f.album.ID.Hex()).Return(f.album, nil)
	f.artists.On("FindByID", mock.Anything, f.artist.ID.Hex()).Return(f.artist, nil)
}

func TestSongService_Create_Success(t *testing.T) {
	f := newSongFixtures()
	f.resolveOK()

	stored := testutil.NewSongBuilder().
		WithAlbumID(f.album.ID.Hex()).
		WithArtistID(f.artist.ID.Hex()).
		WithTitle("Time").
		Build()

	f.songs.On("FindByAlbumTitle", mock.Anything, f.album.ID.Hex(), "Time").Return(nil, nil)
	f.songs.On("FindByAlbumTrack", mock.Anything, f.album.ID.Hex(), 4).Return(nil, nil)
	f.songs.On("Insert", mock.Anything, mock.AnythingOfType("*models.Song")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Song).ID = stored.ID
		}).
		Return(nil)
	f.songs.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)

	created, err := f.service.Create(context.Background(), f.input())
	require.NoError(t, err)
	assert.Equal(t, stored, created)

	f.songs.AssertExpectations(t)
}

func TestSongService_Create_AlbumResolvedBeforeArtist(t *testing.T) {
	f := newSongFixtures()

	// Both references are unknown; the album failure must win.
	f.albums.On("FindByID", mock.Anything, f.album.ID.Hex()).Return(nil, nil)

	_, err := f.service.Create(context.Background(), f.input())
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeReference, appErr.Code)
	assert.Equal(t, "Referenced album does not exist", appErr.Message)

	f.artists.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSongService_Create_UnknownArtist(t *testing.T) {
	f := newSongFixtures()

	f.albums.On("FindByID", mock.Anything, f.album.ID.Hex()).Return(f.album, nil)
	f.artists.On("FindByID", mock.Anything, f.artist.ID.Hex()).Return(nil, nil)

	_, err := f.service.Create(context.Background(), f.input())
	assert.Equal(t, "Referenced artist does not exist", apperr.From(err).Message)
}

func TestSongService_Create_DuplicateTitlePerAlbum(t *testing.T) {
	f := newSongFixtures()
	f.resolveOK()

	existing := testutil.NewSongBuilder().WithAlbumID(f.album.ID.Hex()).WithTitle("Time").Build()
	f.songs.On("FindByAlbumTitle", mock.Anything, f.album.ID.Hex(), "Time").Return(existing, nil)

	_, err := f.service.Create(context.Background(), f.input())
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeDuplicate, appErr.Code)
	assert.Equal(t, "Song already exists", appErr.Message)
}

func TestSongService_Create_TrackNumberTaken(t *testing.T) {
	f := newSongFixtures()
	f.resolveOK()

	occupant := testutil.NewSongBuilder().WithAlbumID(f.album.ID.Hex()).WithTrackNumber(4).Build()
	f.songs.On("FindByAlbumTitle", mock.Anything, f.album.ID.Hex(), "Time").Return(nil, nil)
	f.songs.On("FindByAlbumTrack", mock.Anything, f.album.ID.Hex(), 4).Return(occupant, nil)

	_, err := f.service.Create(context.Background(), f.input())
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeDuplicate, appErr.Code)
	assert.Equal(t, "Track number already taken on this album", appErr.Message)
}

func TestSongService_Create_NoTrackNumberSkipsTrackCheck(t *testing.T) {
	f := newSongFixtures()
	f.resolveOK()

	in := f.input()
	in.TrackNumber = nil

	stored := testutil.NewSongBuilder().WithAlbumID(f.album.ID.Hex()).WithTitle("Time").Build()
	f.songs.On("FindByAlbumTitle", mock.Anything, f.album.ID.Hex(), "Time").Return(nil, nil)
	f.songs.On("Insert", mock.Anything, mock.AnythingOfType("*models.Song")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Song).ID = stored.ID
		}).
		Return(nil)
	f.songs.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)

	_, err := f.service.Create(context.Background(), in)
	require.NoError(t, err)

	f.songs.AssertNotCalled(t, "FindByAlbumTrack", mock.Anything, mock.Anything, mock.Anything)
}

func TestSongService_Update_ExcludesSelf(t *testing.T) {
	f := newSongFixtures()
	f.resolveOK()

	current := testutil.NewSongBuilder().
		WithAlbumID(f.album.ID.Hex()).
		WithArtistID(f.artist.ID.Hex()).
		WithTitle("Time").
		WithTrackNumber(4).
		Build()
	id := current.ID.Hex()

	// Both uniqueness probes find the song being updated itself.
	f.songs.On("FindByAlbumTitle", mock.Anything, f.album.ID.Hex(), "Time").Return(current, nil)
	f.songs.On("FindByAlbumTrack", mock.Anything, f.album.ID.Hex(), 4).Return(current, nil)
	f.songs.On("FindByID", mock.Anything, id).Return(current, nil)
	f.songs.On("Replace", mock.Anything, id, mock.AnythingOfType("*models.Song")).Return(true, nil)

	require.NoError(t, f.service.Update(context.Background(), id, f.input()))
	f.songs.AssertExpectations(t)
}

func TestSongService_ByAlbum_UnknownAlbumYieldsEmpty(t *testing.T) {
	f := newSongFixtures()

	albumID := primitive.NewObjectID().Hex()
	f.songs.On("FindByAlbum", mock.Anything, albumID).Return([]*models.Song{}, nil)

	songs, err := f.service.ByAlbum(context.Background(), albumID)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestSongService_ByArtist_MalformedID(t *testing.T) {
	f := newSongFixtures()

	_, err := f.service.ByArtist(context.Background(), "nope")
	appErr := apperr.From(err)
	assert.Equal(t, apperr.CodeMalformedID, appErr.Code)
	assert.Equal(t, "Invalid artist ID format", appErr.Message)
}

func TestSongService_Delete(t *testing.T) {
	f := newSongFixtures()

	id := primitive.NewObjectID().Hex()
	f.songs.On("Delete", mock.Anything, id).Return(true, nil)

	require.NoError(t, f.service.Delete(context.Background(), id))
}
