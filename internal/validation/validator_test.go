package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArtistRecord() map[string]any {
	return map[string]any{
		"name":        "Pink Floyd",
		"genre":       "progressive rock",
		"country":     "UK",
		"formed_year": 1965,
		"members":     []string{"David Gilmour", "Roger Waters"},
	}
}

func validAlbumRecord() map[string]any {
	return map[string]any{
		"title":        "The Dark Side of the Moon",
		"artist_id":    "507f1f77bcf86cd799439011",
		"release_date": "1973-03-01",
		"genre":        "progressive rock",
		"track_count":  10,
		"duration":     43,
	}
}

func validSongRecord() map[string]any {
	return map[string]any{
		"title":     "Time",
		"album_id":  "507f1f77bcf86cd799439011",
		"artist_id": "507f1f77bcf86cd799439012",
		"duration":  413,
		"genre":     "progressive rock",
	}
}

func validPlaylistRecord() map[string]any {
	return map[string]any{
		"name":         "Road Trip",
		"creator_name": "alex",
		"is_public":    true,
	}
}

func TestValidate_ValidRecords(t *testing.T) {
	tests := []struct {
		kind   string
		record map[string]any
	}{
		{KindArtist, validArtistRecord()},
		{KindAlbum, validAlbumRecord()},
		{KindSong, validSongRecord()},
		{KindPlaylist, validPlaylistRecord()},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			violations := Validate(tt.kind, tt.record)
			assert.Empty(t, violations)
		})
	}
}

func TestValidate_EveryRequiredFieldEnforced(t *testing.T) {
	// Removing any single required field must produce exactly one
	// "<field> is required" violation.
	cases := map[string]struct {
		record   map[string]any
		required []string
	}{
		KindArtist:   {validArtistRecord(), []string{"name", "genre", "country", "formed_year", "members"}},
		KindAlbum:    {validAlbumRecord(), []string{"title", "artist_id", "release_date", "genre", "track_count", "duration"}},
		KindSong:     {validSongRecord(), []string{"title", "album_id", "artist_id", "duration", "genre"}},
		KindPlaylist: {validPlaylistRecord(), []string{"name", "creator_name", "is_public"}},
	}

	for kind, tc := range cases {
		for _, field := range tc.required {
			t.Run(kind+"/"+field, func(t *testing.T) {
				record := map[string]any{}
				for k, v := range tc.record {
					record[k] = v
				}
				delete(record, field)

				violations := Validate(kind, record)
				require.Len(t, violations, 1)
				assert.Equal(t, field+" is required", violations[0])
			})
		}
	}
}

func TestValidate_WhitespaceStringCountsAsMissing(t *testing.T) {
	record := validArtistRecord()
	record["name"] = "   "

	violations := Validate(KindArtist, record)
	require.Len(t, violations, 1)
	assert.Equal(t, "name is required", violations[0])
}

func TestValidate_ViolationsAccumulate(t *testing.T) {
	record := validAlbumRecord()
	delete(record, "title")
	record["track_count"] = 500
	record["duration"] = 0

	violations := Validate(KindAlbum, record)
	assert.Len(t, violations, 3)
	assert.Contains(t, violations, "title is required")
	assert.Contains(t, violations, "track_count must be between 1 and 200")
	assert.Contains(t, violations, "duration must be between 1 and 600")
}

func TestValidate_ArtistFormedYearRange(t *testing.T) {
	tests := []struct {
		name  string
		year  any
		valid bool
	}{
		{"lower bound", 1900, true},
		{"current year", time.Now().Year(), true},
		{"before 1900", 1899, false},
		{"future year", time.Now().Year() + 1, false},
		{"float from JSON", float64(1990), true},
		{"fractional number", 1990.5, false},
		{"not a number", "1990", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validArtistRecord()
			record["formed_year"] = tt.year

			violations := Validate(KindArtist, record)
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				assert.Len(t, violations, 1)
			}
		})
	}
}

func TestValidate_ArtistMembers(t *testing.T) {
	t.Run("empty array", func(t *testing.T) {
		record := validArtistRecord()
		record["members"] = []string{}

		violations := Validate(KindArtist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "members must be a non-empty array", violations[0])
	})

	t.Run("case-insensitive duplicates", func(t *testing.T) {
		record := validArtistRecord()
		record["members"] = []string{"Roger Waters", "roger waters"}

		violations := Validate(KindArtist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "members must not contain duplicate entries", violations[0])
	})

	t.Run("blank entry", func(t *testing.T) {
		record := validArtistRecord()
		record["members"] = []string{"Roger Waters", "  "}

		violations := Validate(KindArtist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "members must not contain empty entries", violations[0])
	})
}

func TestValidate_AlbumReleaseDate(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"well-formed", "1999-12-31", true},
		{"wrong format", "31/12/1999", false},
		{"impossible date", "1999-02-30", false},
		{"before minimum", "1899-12-31", false},
		{"tomorrow", time.Now().AddDate(0, 0, 1).Format("2006-01-02"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validAlbumRecord()
			record["release_date"] = tt.date

			violations := Validate(KindAlbum, record)
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				assert.Len(t, violations, 1)
			}
		})
	}
}

func TestValidate_MalformedReferenceIDIsValidationError(t *testing.T) {
	record := validAlbumRecord()
	record["artist_id"] = "not-a-hex-id"

	violations := Validate(KindAlbum, record)
	require.Len(t, violations, 1)
	assert.Equal(t, "artist_id must be a valid ID", violations[0])
}

func TestValidate_SongConstraints(t *testing.T) {
	t.Run("duration out of range", func(t *testing.T) {
		record := validSongRecord()
		record["duration"] = 4000

		violations := Validate(KindSong, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "duration must be between 1 and 3600", violations[0])
	})

	t.Run("optional track number validated when present", func(t *testing.T) {
		record := validSongRecord()
		record["track_number"] = 0

		violations := Validate(KindSong, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "track_number must be between 1 and 200", violations[0])
	})

	t.Run("audio url scheme", func(t *testing.T) {
		record := validSongRecord()
		record["audio_url"] = "ftp://example.com/track.mp3"

		violations := Validate(KindSong, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "audio_url must be an http or https URL", violations[0])
	})
}

func TestValidate_PlaylistConstraints(t *testing.T) {
	t.Run("is_public must be boolean", func(t *testing.T) {
		record := validPlaylistRecord()
		record["is_public"] = "yes"

		violations := Validate(KindPlaylist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "is_public must be a boolean", violations[0])
	})

	t.Run("song ids must be well-formed", func(t *testing.T) {
		record := validPlaylistRecord()
		record["songs"] = []string{"507f1f77bcf86cd799439011", "bogus"}

		violations := Validate(KindPlaylist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "songs must contain only valid IDs", violations[0])
	})

	t.Run("duplicate song ids", func(t *testing.T) {
		record := validPlaylistRecord()
		record["songs"] = []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439011"}

		violations := Validate(KindPlaylist, record)
		require.Len(t, violations, 1)
		assert.Equal(t, "songs must not contain duplicate entries", violations[0])
	})
}

func TestValidate_StringLengthBounds(t *testing.T) {
	long := ""
	for i := 0; i < 201; i++ {
		long += "x"
	}

	record := validArtistRecord()
	record["name"] = long

	violations := Validate(KindArtist, record)
	require.Len(t, violations, 1)
	assert.Equal(t, fmt.Sprintf("name must be at most %d characters", 200), violations[0])
}

func TestValidate_UnknownEntityKind(t *testing.T) {
	violations := Validate("label", map[string]any{})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "unknown entity kind")
}
