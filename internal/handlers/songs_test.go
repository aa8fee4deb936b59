package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"melodex/internal/auth"
	"melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/services"
	"melodex/internal/testutil"
)

type songHandlerFixture struct {
	songs   *testutil.MockSongRepository
	albums  *testutil.MockAlbumRepository
	artists *testutil.MockArtistRepository
	helper  *testutil.HTTPTestHelper
}

func setupSongHandler(t *testing.T) *songHandlerFixture {
	f := &songHandlerFixture{
		songs:   &testutil.MockSongRepository{},
		albums:  &testutil.MockAlbumRepository{},
		artists: &testutil.MockArtistRepository{},
		helper:  testutil.NewHTTPTestHelper(t),
	}

	strategy, err := auth.New(auth.ModeDisabled, "", "")
	require.NoError(t, err)

	service := services.NewSongService(f.songs, f.albums, f.artists)
	handler := NewSongHandler(service, false)
	protected := RequireAuth(strategy)

	v1 := f.helper.Router().Group("/api/v1")
	v1.GET("/songs", handler.List)
	v1.GET("/songs/:id", handler.Get)
	v1.GET("/songs/album/:albumId", handler.ByAlbum)
	v1.GET("/songs/artist/:artistId", handler.ByArtist)
	v1.POST("/songs", protected, handler.Create)

	return f
}

func TestSongHandler_ByAlbum(t *testing.T) {
	f := setupSongHandler(t)

	t.Run("bare array in track order", func(t *testing.T) {
		albumID := primitive.NewObjectID().Hex()
		one := testutil.NewSongBuilder().WithAlbumID(albumID).WithTrackNumber(1).Build()
		two := testutil.NewSongBuilder().WithAlbumID(albumID).WithTrackNumber(2).Build()

		f.songs.On("FindByAlbum", mock.Anything, albumID).Return([]*models.Song{one, two}, nil)

		recorder := f.helper.GetJSON("/api/v1/songs/album/" + albumID)

		var songs []models.Song
		f.helper.AssertJSONResponse(recorder, http.StatusOK, &songs)
		require.Len(t, songs, 2)
		assert.Equal(t, 1, songs[0].TrackNumber)
		assert.Equal(t, 2, songs[1].TrackNumber)
	})

	t.Run("unknown album yields empty array", func(t *testing.T) {
		albumID := primitive.NewObjectID().Hex()
		f.songs.On("FindByAlbum", mock.Anything, albumID).Return([]*models.Song{}, nil)

		recorder := f.helper.GetJSON("/api/v1/songs/album/" + albumID)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "[]", recorder.Body.String())
	})

	t.Run("malformed album id", func(t *testing.T) {
		recorder := f.helper.GetJSON("/api/v1/songs/album/junk")
		f.helper.AssertErrorResponse(recorder, http.StatusBadRequest, "Invalid album ID format")
	})
}

func TestSongHandler_ByArtist(t *testing.T) {
	f := setupSongHandler(t)

	artistID := primitive.NewObjectID().Hex()
	song := testutil.NewSongBuilder().WithArtistID(artistID).Build()
	f.songs.On("FindByArtist", mock.Anything, artistID).Return([]*models.Song{song}, nil)

	recorder := f.helper.GetJSON("/api/v1/songs/artist/" + artistID)

	var songs []models.Song
	f.helper.AssertJSONResponse(recorder, http.StatusOK, &songs)
	require.Len(t, songs, 1)
}

func TestSongHandler_List_DurationFilter(t *testing.T) {
	f := setupSongHandler(t)

	f.songs.On("List", mock.Anything, mock.MatchedBy(func(filter repositories.SongFilter) bool {
		return filter.DurationMin != nil && *filter.DurationMin == 120 &&
			filter.DurationMax != nil && *filter.DurationMax == 300
	}), mock.Anything).Return([]*models.Song{}, int64(0), nil)

	recorder := f.helper.GetJSON("/api/v1/songs?duration_min=120&duration_max=300")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSongHandler_Create_ReferenceFailure(t *testing.T) {
	f := setupSongHandler(t)

	albumID := primitive.NewObjectID().Hex()
	artistID := primitive.NewObjectID().Hex()
	f.albums.On("FindByID", mock.Anything, albumID).Return(nil, nil)

	payload := map[string]any{
		"title":     "Time",
		"album_id":  albumID,
		"artist_id": artistID,
		"duration":  413,
		"genre":     "progressive rock",
	}

	recorder := f.helper.PostJSON("/api/v1/songs", payload)
	f.helper.AssertErrorResponse(recorder, http.StatusBadRequest, "Referenced album does not exist")
}
