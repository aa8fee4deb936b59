package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist represents an ordered, named collection of songs. The order of
// SongIDs is the playback order and must be preserved by every read.
type Playlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	CreatorName string             `bson:"creator_name" json:"creator_name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	SongIDs     []string           `bson:"songs" json:"songs"`
	Tags        []string           `bson:"tags" json:"tags"`
	IsPublic    bool               `bson:"is_public" json:"is_public"`

	CoverImageURL string `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasSong reports whether the playlist already contains the song
func (p *Playlist) HasSong(songID string) bool {
	for _, id := range p.SongIDs {
		if id == songID {
			return true
		}
	}
	return false
}

// AddSong appends a song to the end of the playlist if not already present.
// Returns false when the song was already a member.
func (p *Playlist) AddSong(songID string) bool {
	if p.HasSong(songID) {
		return false
	}
	p.SongIDs = append(p.SongIDs, songID)
	p.UpdatedAt = time.Now()
	return true
}

// RemoveSong removes a song from the playlist, preserving the order of the
// remaining entries. Removing an absent song is a no-op.
func (p *Playlist) RemoveSong(songID string) bool {
	for i, id := range p.SongIDs {
		if id == songID {
			p.SongIDs = append(p.SongIDs[:i], p.SongIDs[i+1:]...)
			p.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}
