package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"melodex/internal/models"
)

var playlistSortable = map[string]bool{
	"name":         true,
	"creator_name": true,
	"created_at":   true,
}

// mongoPlaylistRepository implements PlaylistRepository using MongoDB
type mongoPlaylistRepository struct {
	collection *mongo.Collection
}

// NewMongoPlaylistRepository creates a MongoDB-backed playlist repository
func NewMongoPlaylistRepository(db *models.Database) PlaylistRepository {
	return &mongoPlaylistRepository{
		collection: db.DB.Collection(models.CollectionPlaylists),
	}
}

func (r *mongoPlaylistRepository) Insert(ctx context.Context, playlist *models.Playlist) error {
	now := time.Now()
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = now
	}
	playlist.UpdatedAt = now
	if playlist.SongIDs == nil {
		playlist.SongIDs = []string{}
	}
	if playlist.Tags == nil {
		playlist.Tags = []string{}
	}

	result, err := r.collection.InsertOne(ctx, playlist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert playlist: %w", err)
	}
	playlist.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoPlaylistRepository) Replace(ctx context.Context, id string, playlist *models.Playlist) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	playlist.ID = objectID
	playlist.UpdatedAt = time.Now()
	if playlist.SongIDs == nil {
		playlist.SongIDs = []string{}
	}
	if playlist.Tags == nil {
		playlist.Tags = []string{}
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, playlist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateKey
		}
		return false, fmt.Errorf("failed to replace playlist: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoPlaylistRepository) FindByID(ctx context.Context, id string) (*models.Playlist, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid object ID: %w", err)
	}

	var playlist models.Playlist
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find playlist by ID: %w", err)
	}
	return &playlist, nil
}

// FindByCreatorName matches a playlist name case-insensitively within one
// creator's playlists. Used by the per-creator duplicate check.
func (r *mongoPlaylistRepository) FindByCreatorName(ctx context.Context, creatorName, name string) (*models.Playlist, error) {
	filter := bson.M{
		"creator_name": exactCI(creatorName),
		"name":         exactCI(name),
	}

	var playlist models.Playlist
	err := r.collection.FindOne(ctx, filter).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find playlist by creator and name: %w", err)
	}
	return &playlist, nil
}

func (r *mongoPlaylistRepository) List(ctx context.Context, filter PlaylistFilter, page PageOptions) ([]*models.Playlist, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = substring(filter.Name)
	}
	if filter.CreatorName != "" {
		query["creator_name"] = substring(filter.CreatorName)
	}
	if filter.Tag != "" {
		query["tags"] = exactCI(filter.Tag)
	}
	if filter.IsPublic != nil {
		query["is_public"] = *filter.IsPublic
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, page.FindOptions(playlistSortable))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cursor.Close(ctx)

	playlists := []*models.Playlist{}
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, 0, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, total, nil
}

func (r *mongoPlaylistRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete playlist: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoPlaylistRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count playlists: %w", err)
	}
	return count, nil
}
