package services

import (
	"context"
	"errors"
	"fmt"

	"melodex/internal/apperr"
	"melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/validation"
)

// SongService orchestrates song CRUD. Songs reference both an album and an
// artist; both must resolve before any write. Uniqueness is two-fold:
// title per album, and track number per album when supplied.
type SongService struct {
	songs   repositories.SongRepository
	albums  repositories.AlbumRepository
	artists repositories.ArtistRepository
}

// NewSongService creates a song service
func NewSongService(songs repositories.SongRepository, albums repositories.AlbumRepository, artists repositories.ArtistRepository) *SongService {
	return &SongService{songs: songs, albums: albums, artists: artists}
}

func (s *SongService) resolveReferences(ctx context.Context, in *SongInput) error {
	album, err := s.albums.FindByID(ctx, *in.AlbumID)
	if err != nil {
		return apperr.Internal(err)
	}
	if album == nil {
		return apperr.Reference("album")
	}

	artist, err := s.artists.FindByID(ctx, *in.ArtistID)
	if err != nil {
		return apperr.Internal(err)
	}
	if artist == nil {
		return apperr.Reference("artist")
	}
	return nil
}

// checkDuplicates enforces title-per-album and track-number-per-album
// uniqueness, excluding excludeID when updating
func (s *SongService) checkDuplicates(ctx context.Context, in *SongInput, excludeID string) error {
	existing, err := s.songs.FindByAlbumTitle(ctx, *in.AlbumID, *in.Title)
	if err != nil {
		return apperr.Internal(err)
	}
	if existing != nil && existing.ID.Hex() != excludeID {
		return apperr.Duplicate("Song already exists")
	}

	if in.TrackNumber != nil {
		occupant, err := s.songs.FindByAlbumTrack(ctx, *in.AlbumID, *in.TrackNumber)
		if err != nil {
			return apperr.Internal(err)
		}
		if occupant != nil && occupant.ID.Hex() != excludeID {
			return apperr.Duplicate("Track number already taken on this album")
		}
	}
	return nil
}

// Create validates, resolves both references, checks duplicates, persists
// and re-fetches the stored record
func (s *SongService) Create(ctx context.Context, in *SongInput) (*models.Song, error) {
	in.Normalize()
	if violations := validation.Validate(validation.KindSong, in.Document()); len(violations) > 0 {
		return nil, apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in); err != nil {
		return nil, err
	}
	if err := s.checkDuplicates(ctx, in, ""); err != nil {
		return nil, err
	}

	song := in.ToModel()
	if err := s.songs.Insert(ctx, song); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Duplicate("Song already exists")
		}
		return nil, apperr.Internal(err)
	}

	created, err := s.songs.FindByID(ctx, song.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if created == nil {
		return nil, apperr.Internal(fmt.Errorf("song %s vanished after insert", song.ID.Hex()))
	}
	return created, nil
}

// Get returns one song by id
func (s *SongService) Get(ctx context.Context, id string) (*models.Song, error) {
	if !wellFormedID(id) {
		return nil, apperr.MalformedID("song")
	}
	song, err := s.songs.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if song == nil {
		return nil, apperr.NotFound("song")
	}
	return song, nil
}

// List returns a page of songs with pagination metadata
func (s *SongService) List(ctx context.Context, filter repositories.SongFilter, page repositories.PageOptions) ([]*models.Song, repositories.Pagination, error) {
	songs, total, err := s.songs.List(ctx, filter, page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal(err)
	}
	return songs, repositories.NewPagination(page, total), nil
}

// ByAlbum returns an album's songs in track order. A well-formed but
// unknown album id yields an empty list.
func (s *SongService) ByAlbum(ctx context.Context, albumID string) ([]*models.Song, error) {
	if !wellFormedID(albumID) {
		return nil, apperr.MalformedID("album")
	}
	songs, err := s.songs.FindByAlbum(ctx, albumID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return songs, nil
}

// ByArtist returns an artist's songs alphabetically
func (s *SongService) ByArtist(ctx context.Context, artistID string) ([]*models.Song, error) {
	if !wellFormedID(artistID) {
		return nil, apperr.MalformedID("artist")
	}
	songs, err := s.songs.FindByArtist(ctx, artistID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return songs, nil
}

// Update replaces a song document in full with all checks re-run
func (s *SongService) Update(ctx context.Context, id string, in *SongInput) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("song")
	}

	in.Normalize()
	if violations := validation.Validate(validation.KindSong, in.Document()); len(violations) > 0 {
		return apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in); err != nil {
		return err
	}
	if err := s.checkDuplicates(ctx, in, id); err != nil {
		return err
	}

	current, err := s.songs.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if current == nil {
		return apperr.NotFound("song")
	}

	song := in.ToModel()
	song.CreatedAt = current.CreatedAt
	matched, err := s.songs.Replace(ctx, id, song)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return apperr.Duplicate("Song already exists")
		}
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("song")
	}
	return nil
}

// Delete removes a song. Playlist memberships are not guarded; stale
// playlist entries are dropped on read instead.
func (s *SongService) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("song")
	}
	deleted, err := s.songs.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("song")
	}
	return nil
}
