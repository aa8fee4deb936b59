package repositories

import (
	"errors"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"melodex/internal/apperr"
)

// ErrDuplicateKey is returned when a write trips a unique index. It is the
// store-level backstop for the application's duplicate checks.
var ErrDuplicateKey = errors.New("duplicate key")

// Pagination defaults and cap. Limits above MaxLimit are rejected outright
// rather than clamped.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageOptions carries validated pagination and sorting parameters
type PageOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ParsePageOptions validates raw query-string pagination values. Absent
// values fall back to defaults; a limit that is not a positive integer at or
// below the cap is an InvalidLimit error. Unrecognized sort fields are
// filtered later, silently.
func ParsePageOptions(page, limit, sortBy, sortOrder string) (PageOptions, error) {
	opts := PageOptions{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err == nil && n > 0 {
			opts.Page = n
		}
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxLimit {
			return PageOptions{}, apperr.InvalidLimit()
		}
		opts.Limit = n
	}

	return opts, nil
}

// FindOptions translates the page options into mongo find options. Only
// fields present in sortable may be sorted on; anything else is ignored and
// the natural order applies.
func (p PageOptions) FindOptions(sortable map[string]bool) *options.FindOptions {
	opts := options.Find().
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))

	if p.SortBy != "" && sortable[p.SortBy] {
		order := 1
		if p.SortOrder == "desc" {
			order = -1
		}
		opts.SetSort(bson.D{{Key: p.SortBy, Value: order}})
	}

	return opts
}

// Pagination is the listing-response metadata envelope
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes the metadata for a page over total items
func NewPagination(opts PageOptions, total int64) Pagination {
	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return Pagination{
		CurrentPage: opts.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     int64(opts.Page)*int64(opts.Limit) < total,
		HasPrev:     opts.Page > 1,
	}
}

// substring builds a case-insensitive substring matcher
func substring(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// exactCI builds a case-insensitive whole-value matcher, used by the
// duplicate checks
func exactCI(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// addIDFilter adds an exact-match filter on a stored reference field.
// Values that are not well-formed ObjectID hex are ignored entirely.
func addIDFilter(filter bson.M, field, id string) {
	if id == "" {
		return
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return
	}
	filter[field] = id
}
