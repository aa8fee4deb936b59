package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song represents a single track on an album
type Song struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	AlbumID  string             `bson:"album_id" json:"album_id"`
	ArtistID string             `bson:"artist_id" json:"artist_id"`
	Duration int                `bson:"duration" json:"duration"` // seconds
	Genre    string             `bson:"genre" json:"genre"`

	TrackNumber     int      `bson:"track_number,omitempty" json:"track_number,omitempty"`
	Lyrics          string   `bson:"lyrics,omitempty" json:"lyrics,omitempty"`
	AudioURL        string   `bson:"audio_url,omitempty" json:"audio_url,omitempty"`
	FeaturedArtists []string `bson:"featured_artists" json:"featured_artists"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
