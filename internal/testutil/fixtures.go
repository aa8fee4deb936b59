package testutil

import (
	"time"

	"melodex/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArtistBuilder provides a fluent interface for creating test artists
type ArtistBuilder struct {
	artist *models.Artist
}

// NewArtistBuilder creates a new artist builder with default values
func NewArtistBuilder() *ArtistBuilder {
	return &ArtistBuilder{
		artist: models.NewArtist("Test Artist", "rock", "US", 1990, []string{"Alex"}),
	}
}

// WithID sets the artist ID
func (b *ArtistBuilder) WithID(id string) *ArtistBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.artist.ID = objID
	return b
}

// WithName sets the artist name
func (b *ArtistBuilder) WithName(name string) *ArtistBuilder {
	b.artist.Name = name
	return b
}

// WithGenre sets the artist genre
func (b *ArtistBuilder) WithGenre(genre string) *ArtistBuilder {
	b.artist.Genre = genre
	return b
}

// WithCountry sets the artist country
func (b *ArtistBuilder) WithCountry(country string) *ArtistBuilder {
	b.artist.Country = country
	return b
}

// WithFormedYear sets the year the artist formed
func (b *ArtistBuilder) WithFormedYear(year int) *ArtistBuilder {
	b.artist.FormedYear = year
	return b
}

// WithMembers sets the member list
func (b *ArtistBuilder) WithMembers(members ...string) *ArtistBuilder {
	b.artist.Members = members
	return b
}

// Build returns the constructed artist
func (b *ArtistBuilder) Build() *models.Artist {
	if b.artist.ID.IsZero() {
		b.artist.ID = primitive.NewObjectID()
	}
	return b.artist
}

// AlbumBuilder provides a fluent interface for creating test albums
type AlbumBuilder struct {
	album *models.Album
}

// NewAlbumBuilder creates a new album builder with default values
func NewAlbumBuilder() *AlbumBuilder {
	now := time.Now()
	return &AlbumBuilder{
		album: &models.Album{
			Title:       "Test Album",
			ArtistID:    primitive.NewObjectID().Hex(),
			ReleaseDate: "2020-06-15",
			Genre:       "rock",
			TrackCount:  10,
			Duration:    45,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// WithID sets the album ID
func (b *AlbumBuilder) WithID(id string) *AlbumBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.album.ID = objID
	return b
}

// WithTitle sets the album title
func (b *AlbumBuilder) WithTitle(title string) *AlbumBuilder {
	b.album.Title = title
	return b
}

// WithArtistID sets the owning artist
func (b *AlbumBuilder) WithArtistID(artistID string) *AlbumBuilder {
	b.album.ArtistID = artistID
	return b
}

// WithReleaseDate sets the release date (YYYY-MM-DD)
func (b *AlbumBuilder) WithReleaseDate(date string) *AlbumBuilder {
	b.album.ReleaseDate = date
	return b
}

// WithTrackCount sets the track count
func (b *AlbumBuilder) WithTrackCount(count int) *AlbumBuilder {
	b.album.TrackCount = count
	return b
}

// Build returns the constructed album
func (b *AlbumBuilder) Build() *models.Album {
	if b.album.ID.IsZero() {
		b.album.ID = primitive.NewObjectID()
	}
	return b.album
}

// SongBuilder provides a fluent interface for creating test songs
type SongBuilder struct {
	song *models.Song
}

// NewSongBuilder creates a new song builder with default values
func NewSongBuilder() *SongBuilder {
	now := time.Now()
	return &SongBuilder{
		song: &models.Song{
			Title:           "Test Song",
			AlbumID:         primitive.NewObjectID().Hex(),
			ArtistID:        primitive.NewObjectID().Hex(),
			Duration:        240,
			Genre:           "rock",
			TrackNumber:     1,
			FeaturedArtists: []string{},
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// WithID sets the song ID
func (b *SongBuilder) WithID(id string) *SongBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.song.ID = objID
	return b
}

// WithTitle sets the song title
func (b *SongBuilder) WithTitle(title string) *SongBuilder {
	b.song.Title = title
	return b
}

// WithAlbumID sets the owning album
func (b *SongBuilder) WithAlbumID(albumID string) *SongBuilder {
	b.song.AlbumID = albumID
	return b
}

// WithArtistID sets the owning artist
func (b *SongBuilder) WithArtistID(artistID string) *SongBuilder {
	b.song.ArtistID = artistID
	return b
}

// WithDuration sets the duration in seconds
func (b *SongBuilder) WithDuration(seconds int) *SongBuilder {
	b.song.Duration = seconds
	return b
}

// WithTrackNumber sets the track number
func (b *SongBuilder) WithTrackNumber(n int) *SongBuilder {
	b.song.TrackNumber = n
	return b
}

// Build returns the constructed song
func (b *SongBuilder) Build() *models.Song {
	if b.song.ID.IsZero() {
		b.song.ID = primitive.NewObjectID()
	}
	return b.song
}

// PlaylistBuilder provides a fluent interface for creating test playlists
type PlaylistBuilder struct {
	playlist *models.Playlist
}

// NewPlaylistBuilder creates a new playlist builder with default values
func NewPlaylistBuilder() *PlaylistBuilder {
	now := time.Now()
	return &PlaylistBuilder{
		playlist: &models.Playlist{
			Name:        "Test Playlist",
			CreatorName: "tester",
			SongIDs:     []string{},
			Tags:        []string{},
			IsPublic:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// WithID sets the playlist ID
func (b *PlaylistBuilder) WithID(id string) *PlaylistBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.playlist.ID = objID
	return b
}

// WithName sets the playlist name
func (b *PlaylistBuilder) WithName(name string) *PlaylistBuilder {
	b.playlist.Name = name
	return b
}

// WithCreator sets the creator name
func (b *PlaylistBuilder) WithCreator(creator string) *PlaylistBuilder {
	b.playlist.CreatorName = creator
	return b
}

// WithSongs sets the ordered song membership
func (b *PlaylistBuilder) WithSongs(songIDs ...string) *PlaylistBuilder {
	b.playlist.SongIDs = songIDs
	return b
}

// WithPublic sets the visibility flag
func (b *PlaylistBuilder) WithPublic(public bool) *PlaylistBuilder {
	b.playlist.IsPublic = public
	return b
}

// Build returns the constructed playlist
func (b *PlaylistBuilder) Build() *models.Playlist {
	if b.playlist.ID.IsZero() {
		b.playlist.ID = primitive.NewObjectID()
	}
	return b.playlist
}
