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

// PlaylistService orchestrates playlist CRUD and membership mutation. The
// stored song-id order is the playback order; reads preserve it exactly and
// drop ids that no longer resolve.
type PlaylistService struct {
	playlists repositories.PlaylistRepository
	songs     repositories.SongRepository
}

// NewPlaylistService creates a playlist service
func NewPlaylistService(playlists repositories.PlaylistRepository, songs repositories.SongRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists, songs: songs}
}

// resolveReferences requires every listed song to exist. A single missing
// id fails the whole operation; there is no partial insert.
func (s *PlaylistService) resolveReferences(ctx context.Context, songIDs []string) error {
	if len(songIDs) == 0 {
		return nil
	}
	found, err := s.songs.FindManyByIDs(ctx, songIDs)
	if err != nil {
		return apperr.Internal(err)
	}
	if len(found) != len(songIDs) {
		return apperr.Reference("song")
	}
	return nil
}

// Create validates, resolves all song references, checks per-creator name
// uniqueness, persists and re-fetches the stored record
func (s *PlaylistService) Create(ctx context.Context, in *PlaylistInput) (*models.Playlist, error) {
	in.Normalize()
	if violations := validation.Validate(validation.KindPlaylist, in.Document()); len(violations) > 0 {
		return nil, apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in.SongIDs); err != nil {
		return nil, err
	}

	existing, err := s.playlists.FindByCreatorName(ctx, *in.CreatorName, *in.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("Playlist already exists")
	}

	playlist := in.ToModel()
	if err := s.playlists.Insert(ctx, playlist); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Duplicate("Playlist already exists")
		}
		return nil, apperr.Internal(err)
	}

	created, err := s.playlists.FindByID(ctx, playlist.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if created == nil {
		return nil, apperr.Internal(fmt.Errorf("playlist %s vanished after insert", playlist.ID.Hex()))
	}
	return created, nil
}

// Get returns one playlist by id
func (s *PlaylistService) Get(ctx context.Context, id string) (*models.Playlist, error) {
	if !wellFormedID(id) {
		return nil, apperr.MalformedID("playlist")
	}
	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if playlist == nil {
		return nil, apperr.NotFound("playlist")
	}
	return playlist, nil
}

// List returns a page of playlists with pagination metadata
func (s *PlaylistService) List(ctx context.Context, filter repositories.PlaylistFilter, page repositories.PageOptions) ([]*models.Playlist, repositories.Pagination, error) {
	playlists, total, err := s.playlists.List(ctx, filter, page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal(err)
	}
	return playlists, repositories.NewPagination(page, total), nil
}

// Update replaces a playlist document in full with all checks re-run
func (s *PlaylistService) Update(ctx context.Context, id string, in *PlaylistInput) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("playlist")
	}

	in.Normalize()
	if violations := validation.Validate(validation.KindPlaylist, in.Document()); len(violations) > 0 {
		return apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in.SongIDs); err != nil {
		return err
	}

	existing, err := s.playlists.FindByCreatorName(ctx, *in.CreatorName, *in.Name)
	if err != nil {
		return apperr.Internal(err)
	}
	if existing != nil && existing.ID.Hex() != id {
		return apperr.Duplicate("Playlist already exists")
	}

	current, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if current == nil {
		return apperr.NotFound("playlist")
	}

	playlist := in.ToModel()
	playlist.CreatedAt = current.CreatedAt
	matched, err := s.playlists.Replace(ctx, id, playlist)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return apperr.Duplicate("Playlist already exists")
		}
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("playlist")
	}
	return nil
}

// Delete removes a playlist by id
func (s *PlaylistService) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("playlist")
	}
	deleted, err := s.playlists.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("playlist")
	}
	return nil
}

// Songs expands a playlist's stored song ids into full records, preserving
// the stored order exactly and dropping ids that no longer resolve. Unlike
// the other relation reads, the parent playlist must exist.
func (s *PlaylistService) Songs(ctx context.Context, id string) ([]*models.Song, error) {
	playlist, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	found, err := s.songs.FindManyByIDs(ctx, playlist.SongIDs)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	byID := make(map[string]*models.Song, len(found))
	for _, song := range found {
		byID[song.ID.Hex()] = song
	}

	ordered := make([]*models.Song, 0, len(playlist.SongIDs))
	for _, songID := range playlist.SongIDs {
		if song, ok := byID[songID]; ok {
			ordered = append(ordered, song)
		}
	}
	return ordered, nil
}

// AddSong appends a song to the end of a playlist. Adding a song that is
// already a member is a conflict.
func (s *PlaylistService) AddSong(ctx context.Context, id, songID string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("playlist")
	}
	if !wellFormedID(songID) {
		return apperr.MalformedID("song")
	}

	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if playlist == nil {
		return apperr.NotFound("playlist")
	}

	song, err := s.songs.FindByID(ctx, songID)
	if err != nil {
		return apperr.Internal(err)
	}
	if song == nil {
		return apperr.Reference("song")
	}

	if !playlist.AddSong(songID) {
		return apperr.Duplicate("Song already in playlist")
	}

	matched, err := s.playlists.Replace(ctx, id, playlist)
	if err != nil {
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("playlist")
	}
	return nil
}

// RemoveSong removes a song from a playlist. Removing an absent song is
// idempotent and succeeds.
func (s *PlaylistService) RemoveSong(ctx context.Context, id, songID string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("playlist")
	}
	if !wellFormedID(songID) {
		return apperr.MalformedID("song")
	}

	playlist, err := s.playlists.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if playlist == nil {
		return apperr.NotFound("playlist")
	}

	if !playlist.RemoveSong(songID) {
		return nil
	}

	matched, err := s.playlists.Replace(ctx, id, playlist)
	if err != nil {
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("playlist")
	}
	return nil
}
