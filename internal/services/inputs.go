package services

import (
	"strings"

	"melodex/internal/models"
)

// Input types use pointer fields for required scalars so that "absent" and
// "zero" are distinguishable after JSON binding. Updates are full-document
// replaces, so create and update share the same input type per entity.

// ArtistInput is the write payload for artists
type ArtistInput struct {
	Name        *string           `json:"name"`
	Genre       *string           `json:"genre"`
	Country     *string           `json:"country"`
	FormedYear  *int              `json:"formed_year"`
	Members     []string          `json:"members"`
	Biography   *string           `json:"biography"`
	Website     *string           `json:"website"`
	SocialMedia map[string]string `json:"social_media"`
}

// Normalize trims all string content in place
func (in *ArtistInput) Normalize() {
	trimPtr(in.Name)
	trimPtr(in.Genre)
	trimPtr(in.Country)
	trimPtr(in.Biography)
	trimPtr(in.Website)
	trimSlice(in.Members)
}

// Document projects the input into the field map the validator consumes.
// Nil fields are omitted so required-field checks see them as missing.
func (in *ArtistInput) Document() map[string]any {
	doc := map[string]any{}
	putString(doc, "name", in.Name)
	putString(doc, "genre", in.Genre)
	putString(doc, "country", in.Country)
	putInt(doc, "formed_year", in.FormedYear)
	if in.Members != nil {
		doc["members"] = in.Members
	}
	putString(doc, "biography", in.Biography)
	putString(doc, "website", in.Website)
	if in.SocialMedia != nil {
		doc["social_media"] = in.SocialMedia
	}
	return doc
}

// ToModel builds the entity; only call after validation passed
func (in *ArtistInput) ToModel() *models.Artist {
	artist := models.NewArtist(*in.Name, *in.Genre, *in.Country, *in.FormedYear, in.Members)
	artist.Biography = deref(in.Biography)
	artist.Website = deref(in.Website)
	artist.SocialMedia = in.SocialMedia
	return artist
}

// AlbumInput is the write payload for albums
type AlbumInput struct {
	Title         *string `json:"title"`
	ArtistID      *string `json:"artist_id"`
	ReleaseDate   *string `json:"release_date"`
	Genre         *string `json:"genre"`
	TrackCount    *int    `json:"track_count"`
	Duration      *int    `json:"duration"`
	RecordLabel   *string `json:"record_label"`
	CoverImageURL *string `json:"cover_image_url"`
}

func (in *AlbumInput) Normalize() {
	trimPtr(in.Title)
	trimPtr(in.ArtistID)
	trimPtr(in.ReleaseDate)
	trimPtr(in.Genre)
	trimPtr(in.RecordLabel)
	trimPtr(in.CoverImageURL)
}

func (in *AlbumInput) Document() map[string]any {
	doc := map[string]any{}
	putString(doc, "title", in.Title)
	putString(doc, "artist_id", in.ArtistID)
	putString(doc, "release_date", in.ReleaseDate)
	putString(doc, "genre", in.Genre)
	putInt(doc, "track_count", in.TrackCount)
	putInt(doc, "duration", in.Duration)
	putString(doc, "record_label", in.RecordLabel)
	putString(doc, "cover_image_url", in.CoverImageURL)
	return doc
}

func (in *AlbumInput) ToModel() *models.Album {
	return &models.Album{
		Title:         *in.Title,
		ArtistID:      *in.ArtistID,
		ReleaseDate:   *in.ReleaseDate,
		Genre:         *in.Genre,
		TrackCount:    *in.TrackCount,
		Duration:      *in.Duration,
		RecordLabel:   deref(in.RecordLabel),
		CoverImageURL: deref(in.CoverImageURL),
	}
}

// SongInput is the write payload for songs
type SongInput struct {
	Title           *string  `json:"title"`
	AlbumID         *string  `json:"album_id"`
	ArtistID        *string  `json:"artist_id"`
	Duration        *int     `json:"duration"`
	TrackNumber     *int     `json:"track_number"`
	Genre           *string  `json:"genre"`
	Lyrics          *string  `json:"lyrics"`
	AudioURL        *string  `json:"audio_url"`
	FeaturedArtists []string `json:"featured_artists"`
}

func (in *SongInput) Normalize() {
	trimPtr(in.Title)
	trimPtr(in.AlbumID)
	trimPtr(in.ArtistID)
	trimPtr(in.Genre)
	trimPtr(in.AudioURL)
	trimSlice(in.FeaturedArtists)
}

func (in *SongInput) Document() map[string]any {
	doc := map[string]any{}
	putString(doc, "title", in.Title)
	putString(doc, "album_id", in.AlbumID)
	putString(doc, "artist_id", in.ArtistID)
	putInt(doc, "duration", in.Duration)
	putInt(doc, "track_number", in.TrackNumber)
	putString(doc, "genre", in.Genre)
	putString(doc, "lyrics", in.Lyrics)
	putString(doc, "audio_url", in.AudioURL)
	if in.FeaturedArtists != nil {
		doc["featured_artists"] = in.FeaturedArtists
	}
	return doc
}

func (in *SongInput) ToModel() *models.Song {
	song := &models.Song{
		Title:           *in.Title,
		AlbumID:         *in.AlbumID,
		ArtistID:        *in.ArtistID,
		Duration:        *in.Duration,
		Genre:           *in.Genre,
		Lyrics:          deref(in.Lyrics),
		AudioURL:        deref(in.AudioURL),
		FeaturedArtists: in.FeaturedArtists,
	}
	if in.TrackNumber != nil {
		song.TrackNumber = *in.TrackNumber
	}
	return song
}

// PlaylistInput is the write payload for playlists
type PlaylistInput struct {
	Name          *string  `json:"name"`
	CreatorName   *string  `json:"creator_name"`
	Description   *string  `json:"description"`
	SongIDs       []string `json:"songs"`
	Tags          []string `json:"tags"`
	IsPublic      *bool    `json:"is_public"`
	CoverImageURL *string  `json:"cover_image_url"`
}

func (in *PlaylistInput) Normalize() {
	trimPtr(in.Name)
	trimPtr(in.CreatorName)
	trimPtr(in.Description)
	trimPtr(in.CoverImageURL)
	trimSlice(in.SongIDs)
	trimSlice(in.Tags)
}

func (in *PlaylistInput) Document() map[string]any {
	doc := map[string]any{}
	putString(doc, "name", in.Name)
	putString(doc, "creator_name", in.CreatorName)
	putString(doc, "description", in.Description)
	if in.SongIDs != nil {
		doc["songs"] = in.SongIDs
	}
	if in.Tags != nil {
		doc["tags"] = in.Tags
	}
	if in.IsPublic != nil {
		doc["is_public"] = *in.IsPublic
	}
	putString(doc, "cover_image_url", in.CoverImageURL)
	return doc
}

func (in *PlaylistInput) ToModel() *models.Playlist {
	return &models.Playlist{
		Name:          *in.Name,
		CreatorName:   *in.CreatorName,
		Description:   deref(in.Description),
		SongIDs:       in.SongIDs,
		Tags:          in.Tags,
		IsPublic:      *in.IsPublic,
		CoverImageURL: deref(in.CoverImageURL),
	}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func trimSlice(items []string) {
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
}

func putString(doc map[string]any, field string, value *string) {
	if value != nil {
		doc[field] = *value
	}
}

func putInt(doc map[string]any, field string, value *int) {
	if value != nil {
		doc[field] = *value
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
