package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"melodex/internal/cache"
	"melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/testutil"
)

func TestCachedArtistRepository_FindByID_ReadThrough(t *testing.T) {
	inner := &testutil.MockArtistRepository{}
	repo := repositories.NewCachedArtistRepository(inner, cache.NewMemoryCache())

	stored := testutil.NewArtistBuilder().WithName("Kraftwerk").Build()
	id := stored.ID.Hex()

	// Only the first read may hit the underlying repository
	inner.On("FindByID", mock.Anything, id).Return(stored, nil).Once()

	first, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Kraftwerk", first.Name)

	second, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, second.ID)
	assert.Equal(t, "Kraftwerk", second.Name)

	inner.AssertExpectations(t)
}

func TestCachedArtistRepository_MissNotCached(t *testing.T) {
	inner := &testutil.MockArtistRepository{}
	repo := repositories.NewCachedArtistRepository(inner, cache.NewMemoryCache())

	id := testutil.NewArtistBuilder().Build().ID.Hex()
	inner.On("FindByID", mock.Anything, id).Return(nil, nil).Twice()

	for i := 0; i < 2; i++ {
		artist, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, artist)
	}

	inner.AssertExpectations(t)
}

func TestCachedArtistRepository_ReplaceInvalidates(t *testing.T) {
	inner := &testutil.MockArtistRepository{}
	repo := repositories.NewCachedArtistRepository(inner, cache.NewMemoryCache())

	stored := testutil.NewArtistBuilder().WithName("Kraftwerk").Build()
	id := stored.ID.Hex()
	renamed := testutil.NewArtistBuilder().WithID(id).WithName("Organisation").Build()

	inner.On("FindByID", mock.Anything, id).Return(stored, nil).Once()
	inner.On("Replace", mock.Anything, id, renamed).Return(true, nil)

	_, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	matched, err := repo.Replace(context.Background(), id, renamed)
	require.NoError(t, err)
	assert.True(t, matched)

	// Cache was invalidated, so this read goes back to the source
	inner.On("FindByID", mock.Anything, id).Return(renamed, nil).Once()
	after, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Organisation", after.Name)

	inner.AssertExpectations(t)
}

func TestCachedArtistRepository_DeleteInvalidates(t *testing.T) {
	inner := &testutil.MockArtistRepository{}
	repo := repositories.NewCachedArtistRepository(inner, cache.NewMemoryCache())

	stored := testutil.NewArtistBuilder().Build()
	id := stored.ID.Hex()

	inner.On("FindByID", mock.Anything, id).Return(stored, nil).Once()
	inner.On("Delete", mock.Anything, id).Return(true, nil)

	_, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)

	inner.On("FindByID", mock.Anything, id).Return(nil, nil).Once()
	after, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, after)

	inner.AssertExpectations(t)
}

func TestCachedArtistRepository_PassThrough(t *testing.T) {
	inner := &testutil.MockArtistRepository{}
	repo := repositories.NewCachedArtistRepository(inner, cache.NewMemoryCache())

	filter := repositories.ArtistFilter{Genre: "electronic"}
	page := repositories.PageOptions{Page: 1, Limit: 10}
	inner.On("List", mock.Anything, filter, page).Return([]*models.Artist{}, int64(0), nil)
	inner.On("FindByName", mock.Anything, "Kraftwerk").Return(nil, nil)
	inner.On("Count", mock.Anything).Return(int64(7), nil)

	_, _, err := repo.List(context.Background(), filter, page)
	require.NoError(t, err)

	_, err = repo.FindByName(context.Background(), "Kraftwerk")
	require.NoError(t, err)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	inner.AssertExpectations(t)
}
