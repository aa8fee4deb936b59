package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Artist represents a recording artist or band
type Artist struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Genre      string             `bson:"genre" json:"genre"`
	Country    string             `bson:"country" json:"country"`
	FormedYear int                `bson:"formed_year" json:"formed_year"`
	Members    []string           `bson:"members" json:"members"`

	// Optional fields
	Biography   string            `bson:"biography,omitempty" json:"biography,omitempty"`
	Website     string            `bson:"website,omitempty" json:"website,omitempty"`
	SocialMedia map[string]string `bson:"social_media,omitempty" json:"social_media,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewArtist creates an Artist with timestamps set
func NewArtist(name, genre, country string, formedYear int, members []string) *Artist {
	now := time.Now()
	return &Artist{
		Name:       name,
		Genre:      genre,
		Country:    country,
		FormedYear: formedYear,
		Members:    members,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
