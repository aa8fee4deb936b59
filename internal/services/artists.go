// Package services holds the CRUD orchestrators. Every write runs the same
// pipeline: field validation, reference resolution, duplicate check,
// persist. The first failing stage short-circuits into a typed apperr.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"melodex/internal/apperr"
	"melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/validation"
)

// ArtistService orchestrates artist CRUD. It also owns the delete guard:
// an artist cannot be removed while albums still reference it.
type ArtistService struct {
	artists repositories.ArtistRepository
	albums  repositories.AlbumRepository
}

// NewArtistService creates an artist service
func NewArtistService(artists repositories.ArtistRepository, albums repositories.AlbumRepository) *ArtistService {
	return &ArtistService{artists: artists, albums: albums}
}

// Create validates, checks name uniqueness, persists and re-fetches the
// stored record
func (s *ArtistService) Create(ctx context.Context, in *ArtistInput) (*models.Artist, error) {
	in.Normalize()
	if violations := validation.Validate(validation.KindArtist, in.Document()); len(violations) > 0 {
		return nil, apperr.Validation(violations)
	}

	existing, err := s.artists.FindByName(ctx, *in.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("Artist already exists")
	}

	artist := in.ToModel()
	if err := s.artists.Insert(ctx, artist); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Duplicate("Artist already exists")
		}
		return nil, apperr.Internal(err)
	}

	created, err := s.artists.FindByID(ctx, artist.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if created == nil {
		return nil, apperr.Internal(fmt.Errorf("artist %s vanished after insert", artist.ID.Hex()))
	}
	return created, nil
}

// Get returns one artist by id
func (s *ArtistService) Get(ctx context.Context, id string) (*models.Artist, error) {
	if !wellFormedID(id) {
		return nil, apperr.MalformedID("artist")
	}
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if artist == nil {
		return nil, apperr.NotFound("artist")
	}
	return artist, nil
}

// List returns a page of artists with pagination metadata
func (s *ArtistService) List(ctx context.Context, filter repositories.ArtistFilter, page repositories.PageOptions) ([]*models.Artist, repositories.Pagination, error) {
	artists, total, err := s.artists.List(ctx, filter, page)
	if err != nil {
		return nil, repositories.Pagination{}, apperr.Internal(err)
	}
	return artists, repositories.NewPagination(page, total), nil
}

// Update replaces an artist document in full. The duplicate-name check
// re-runs, excluding the document being updated, so a rename cannot collide
// with another artist.
func (s *ArtistService) Update(ctx context.Context, id string, in *ArtistInput) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("artist")
	}

	in.Normalize()
	if violations := validation.Validate(validation.KindArtist, in.Document()); len(violations) > 0 {
		return apperr.Validation(violations)
	}

	existing, err := s.artists.FindByName(ctx, *in.Name)
	if err != nil {
		return apperr.Internal(err)
	}
	if existing != nil && existing.ID.Hex() != id {
		return apperr.Duplicate("Artist already exists")
	}

	current, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if current == nil {
		return apperr.NotFound("artist")
	}

	artist := in.ToModel()
	artist.CreatedAt = current.CreatedAt
	matched, err := s.artists.Replace(ctx, id, artist)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return apperr.Duplicate("Artist already exists")
		}
		return apperr.Internal(err)
	}
	if !matched {
		return apperr.NotFound("artist")
	}
	return nil
}

// Delete removes an artist unless albums still reference it
func (s *ArtistService) Delete(ctx context.Context, id string) error {
	if !wellFormedID(id) {
		return apperr.MalformedID("artist")
	}

	dependents, err := s.albums.CountByArtist(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if dependents > 0 {
		return apperr.DeleteBlocked("Cannot delete artist with existing albums")
	}

	deleted, err := s.artists.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !deleted {
		return apperr.NotFound("artist")
	}
	return nil
}

// wellFormedID reports whether id satisfies ObjectID hex syntax
func wellFormedID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
