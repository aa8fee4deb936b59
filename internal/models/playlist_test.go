package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistAddSong(t *testing.T) {
	p := &Playlist{SongIDs: []string{"a", "b"}}

	assert.True(t, p.AddSong("c"))
	assert.Equal(t, []string{"a", "b", "c"}, p.SongIDs)

	// Second add of the same song is refused
	assert.False(t, p.AddSong("c"))
	assert.Equal(t, []string{"a", "b", "c"}, p.SongIDs)
}

func TestPlaylistRemoveSong(t *testing.T) {
	p := &Playlist{SongIDs: []string{"a", "b", "c", "d"}}

	assert.True(t, p.RemoveSong("b"))
	assert.Equal(t, []string{"a", "c", "d"}, p.SongIDs)

	// Removing an absent song is a no-op
	assert.False(t, p.RemoveSong("b"))
	assert.Equal(t, []string{"a", "c", "d"}, p.SongIDs)
}

func TestPlaylistHasSong(t *testing.T) {
	p := &Playlist{SongIDs: []string{"a", "b"}}

	assert.True(t, p.HasSong("a"))
	assert.False(t, p.HasSong("z"))
}
