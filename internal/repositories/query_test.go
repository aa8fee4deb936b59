package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"melodex/internal/apperr"
)

func TestParsePageOptions_Defaults(t *testing.T) {
	opts, err := ParsePageOptions("", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultPage, opts.Page)
	assert.Equal(t, DefaultLimit, opts.Limit)
	assert.Empty(t, opts.SortBy)
}

func TestParsePageOptions_ValidValues(t *testing.T) {
	opts, err := ParsePageOptions("3", "25", "name", "desc")
	require.NoError(t, err)

	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 25, opts.Limit)
	assert.Equal(t, "name", opts.SortBy)
	assert.Equal(t, "desc", opts.SortOrder)
}

func TestParsePageOptions_LimitRejected(t *testing.T) {
	// Limits above the cap are an error, not clamped down.
	tests := []struct {
		name  string
		limit string
	}{
		{"above cap", "150"},
		{"zero", "0"},
		{"negative", "-5"},
		{"not a number", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePageOptions("1", tt.limit, "", "")
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidLimit, apperr.From(err).Code)
		})
	}
}

func TestParsePageOptions_LimitAtCap(t *testing.T) {
	opts, err := ParsePageOptions("", "100", "", "")
	require.NoError(t, err)
	assert.Equal(t, 100, opts.Limit)
}

func TestParsePageOptions_BadPageFallsBack(t *testing.T) {
	// Page is forgiving where limit is strict.
	for _, page := range []string{"abc", "0", "-1"} {
		opts, err := ParsePageOptions(page, "", "", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultPage, opts.Page)
	}
}

func TestFindOptions(t *testing.T) {
	sortable := map[string]bool{"name": true, "formed_year": true}

	t.Run("skip and limit from page", func(t *testing.T) {
		opts := PageOptions{Page: 3, Limit: 10}.FindOptions(sortable)
		assert.Equal(t, int64(20), *opts.Skip)
		assert.Equal(t, int64(10), *opts.Limit)
		assert.Nil(t, opts.Sort)
	})

	t.Run("ascending sort", func(t *testing.T) {
		opts := PageOptions{Page: 1, Limit: 10, SortBy: "name"}.FindOptions(sortable)
		assert.Equal(t, bson.D{{Key: "name", Value: 1}}, opts.Sort)
	})

	t.Run("descending sort", func(t *testing.T) {
		opts := PageOptions{Page: 1, Limit: 10, SortBy: "formed_year", SortOrder: "desc"}.FindOptions(sortable)
		assert.Equal(t, bson.D{{Key: "formed_year", Value: -1}}, opts.Sort)
	})

	t.Run("unknown sort field ignored", func(t *testing.T) {
		opts := PageOptions{Page: 1, Limit: 10, SortBy: "password"}.FindOptions(sortable)
		assert.Nil(t, opts.Sort)
	})
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of many", 1, 10, 45, 5, true, false},
		{"middle page", 3, 10, 45, 5, true, true},
		{"last partial page", 5, 10, 45, 5, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty collection", 1, 10, 0, 0, false, false},
		{"page past the end", 9, 10, 45, 5, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(PageOptions{Page: tt.page, Limit: tt.limit}, tt.total)

			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestSubstringMatcherEscapesMeta(t *testing.T) {
	rx := substring("AC/DC (live)")
	assert.Equal(t, `AC/DC \(live\)`, rx.Pattern)
	assert.Equal(t, "i", rx.Options)
}

func TestExactCIMatcherAnchors(t *testing.T) {
	rx := exactCI("Abbey Road")
	assert.Equal(t, "^Abbey Road$", rx.Pattern)
	assert.Equal(t, "i", rx.Options)
}

func TestAddIDFilter(t *testing.T) {
	t.Run("well-formed id added", func(t *testing.T) {
		filter := bson.M{}
		addIDFilter(filter, "artist_id", "507f1f77bcf86cd799439011")
		assert.Equal(t, "507f1f77bcf86cd799439011", filter["artist_id"])
	})

	t.Run("malformed id ignored", func(t *testing.T) {
		filter := bson.M{}
		addIDFilter(filter, "artist_id", "nope")
		assert.Empty(t, filter)
	})

	t.Run("empty id ignored", func(t *testing.T) {
		filter := bson.M{}
		addIDFilter(filter, "artist_id", "")
		assert.Empty(t, filter)
	})
}
