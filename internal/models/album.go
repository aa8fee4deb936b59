package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReleaseDateLayout is the storage format for album release dates. Dates are
// kept as strings so calendar-year filters reduce to a lexicographic range.
const ReleaseDateLayout = "2006-01-02"

// Album represents a release belonging to an artist. ArtistID is a soft
// reference (hex ObjectID string); integrity is enforced before writes, not
// by the store.
type Album struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	ArtistID    string             `bson:"artist_id" json:"artist_id"`
	ReleaseDate string             `bson:"release_date" json:"release_date"`
	Genre       string             `bson:"genre" json:"genre"`
	TrackCount  int                `bson:"track_count" json:"track_count"`
	Duration    int                `bson:"duration" json:"duration"` // minutes

	RecordLabel   string `bson:"record_label,omitempty" json:"record_label,omitempty"`
	CoverImageURL string `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
