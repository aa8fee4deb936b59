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

// AlbumService orchestrates album CRUD. Albums reference one artist, whose
// existence is resolved after field validation and before any write.
type AlbumService struct {
	albums  repositories.AlbumRepository
	artists repositories.ArtistRepository
}

// NewAlbumService creates an album service
func NewAlbumService(albums repositories.AlbumRepository, artists repositories.ArtistRepository) *AlbumService {
	return &AlbumService{albums: albums, artists: artists}
}

func (s *AlbumService) resolveReferences(ctx context.Context, in *AlbumInput) error {
	artist, err := s.artists.FindByID(ctx, *in.ArtistID)
	if err != nil {
		return apperr.Internal(err)
	}
	if artist == nil {
		return apperr.Reference("artist")
	}
	return nil
}

// Create validates, resolves the artist reference, checks per-artist title
// uniqueness, persists and re-fetches the stored record
func (s *AlbumService) Create(ctx context.Context, in *AlbumInput) (*models.Album, error) {
	in.Normalize()
	if violations := validation.Validate(validation.KindAlbum, in.Document()); len(violations) > 0 {
		return nil, apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in); err != nil {
		return nil, err
	}

	existing, err := s.albums.FindByArtistTitle(ctx, *in.ArtistID, *in.Title)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("Album already exists")
	}

	album := in.ToModel()
	if err := s.albums.Insert(ctx, album); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Duplicate("Album already exists")
		}
		return nil, apperr.Internal(err)
	}

	created, err := s.albums.FindByID(ctx, album.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if created == nil {
		return nil, apperr.Internal(fmt.Errorf("album %s vanished after insert", album.ID.Hex()))
	}
	return created, nil
}

// Get returns one album by id
func (s *AlbumService) Get(ctx context.Context, id string) (*models.Album, error) {
	if !wellFormedID(id) {
		return nil, apperr.MalformedID("album")
	}
	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if album == nil {
		return nil, apperr.NotFound("album")
	}
	return album, nil
}

// List returns a page of albums with pagination metadata
func (s *AlbumService) List(ctx context.Context, filter repositories.AlbumFilter, page repositories.PageOptions) ([]*models.Album, repositories.Pagination, error) {
	albums, total, err := s.albums.List(ctx, filter, page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal(err)
	}
	return albums, repositories.NewPagination(page, total), nil
}

// ByArtist returns an artist's albums in release order. A well-formed but
// unknown artist id yields an empty list, not a 404.
func (s *AlbumService) ByArtist(ctx context.Context, artistID string) ([]*models.Album, error) {
	if !wellFormedID(artistID) {
		return nil, apperr.MalformedID("artist")
	}
	albums, err := s.albums.FindByArtist(ctx, artistID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return albums, nil
}

// Update replaces an album document in full, re-running the reference and
// duplicate checks (the latter excluding the updated document)
func (s *AlbumService) Update(ctx context.Context, id string, in *AlbumInput) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("album")
	}

	in.Normalize()
	if violations := validation.Validate(validation.KindAlbum, in.Document()); len(violations) > 0 {
		return apperr.Validation(violations)
	}

	if err := s.resolveReferences(ctx, in); err != nil {
		return err
	}

	existing, err := s.albums.FindByArtistTitle(ctx, *in.ArtistID, *in.Title)
	if err != nil {
		return apperr.Internal(err)
	}
	if existing != nil && existing.ID.Hex() != id {
		return apperr.Duplicate("Album already exists")
	}

	current, err := s.albums.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if current == nil {
		return apperr.NotFound("album")
	}

	album := in.ToModel()
	album.CreatedAt = current.CreatedAt
	matched, err := s.albums.Replace(ctx, id, album)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return apperr.Duplicate("Album already exists")
		}
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("album")
	}
	return nil
}

// Delete removes an album. There is deliberately no guard on dependent
// songs; only the artist-album edge is guarded.
func (s *AlbumService) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("album")
	}
	deleted, err := s.albums.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("album")
	}
	return nil
}
