package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the service
const (
	CollectionArtists   = "artists"
	CollectionAlbums    = "albums"
	CollectionSongs     = "songs"
	CollectionPlaylists = "playlists"
)

// Database represents the database connection
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase creates a new database connection and verifies it with a ping.
// The process must not begin serving requests when this fails.
func NewDatabase(ctx context.Context, mongoURL, dbName string) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(20).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Database{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Close closes the database connection
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// Health verifies the connection is still alive
func (d *Database) Health(ctx context.Context) error {
	return d.Client.Ping(ctx, nil)
}

// caseInsensitive is the collation used for uniqueness indexes so that
// "Queen" and "queen" collide.
func caseInsensitive() *options.Collation {
	return &options.Collation{Locale: "en", Strength: 2}
}

// CreateIndexes creates the uniqueness and lookup indexes. The unique
// compound indexes backstop the application-level duplicate checks: the
// existence-check-then-insert sequence is not atomic, and a losing racer
// surfaces here as a duplicate-key error instead of a second document.
func (d *Database) CreateIndexes(ctx context.Context) error {
	artistIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitive()),
		},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}
	if _, err := d.DB.Collection(CollectionArtists).Indexes().CreateMany(ctx, artistIndexes); err != nil {
		return err
	}

	albumIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "artist_id", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitive()),
		},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "release_date", Value: 1}}},
	}
	if _, err := d.DB.Collection(CollectionAlbums).Indexes().CreateMany(ctx, albumIndexes); err != nil {
		return err
	}

	songIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "album_id", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitive()),
		},
		{
			Keys: bson.D{{Key: "album_id", Value: 1}, {Key: "track_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.D{{Key: "track_number", Value: bson.D{{Key: "$gt", Value: 0}}}},
			),
		},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "title", Value: 1}}},
	}
	if _, err := d.DB.Collection(CollectionSongs).Indexes().CreateMany(ctx, songIndexes); err != nil {
		return err
	}

	playlistIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "creator_name", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(caseInsensitive()),
		},
	}
	if _, err := d.DB.Collection(CollectionPlaylists).Indexes().CreateMany(ctx, playlistIndexes); err != nil {
		return err
	}

	return nil
}
