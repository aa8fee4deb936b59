package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"melodex/internal/models"
)

var songSortable = map[string]bool{
	"title":        true,
	"duration":     true,
	"track_number": true,
	"created_at":   true,
}

// mongoSongRepository implements SongRepository using MongoDB
type mongoSongRepository struct {
	collection *mongo.Collection
}

// NewMongoSongRepository creates a MongoDB-backed song repository
func NewMongoSongRepository(db *models.Database) SongRepository {
	return &mongoSongRepository{
		collection: db.DB.Collection(models.CollectionSongs),
	}
}

func (r *mongoSongRepository) Insert(ctx context.Context, song *models.Song) error {
	now := time.Now()
	if song.CreatedAt.IsZero() {
		song.CreatedAt = now
	}
	song.UpdatedAt = now
	if song.FeaturedArtists == nil {
		song.FeaturedArtists = []string{}
	}

	result, err := r.collection.InsertOne(ctx, song)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert song: %w", err)
	}
	song.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoSongRepository) Replace(ctx context.Context, id string, song *models.Song) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	song.ID = objectID
	song.UpdatedAt = time.Now()
	if song.FeaturedArtists == nil {
		song.FeaturedArtists = []string{}
	}

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, song)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateKey
		}
		return false, fmt.Errorf("failed to replace song: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid object ID: %w", err)
	}

	var song models.Song
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find song by ID: %w", err)
	}
	return &song, nil
}

// FindByAlbumTitle matches a song title case-insensitively within one album
func (r *mongoSongRepository) FindByAlbumTitle(ctx context.Context, albumID, title string) (*models.Song, error) {
	filter := bson.M{
		"album_id": albumID,
		"title":    exactCI(title),
	}

	var song models.Song
	err := r.collection.FindOne(ctx, filter).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find song by album and title: %w", err)
	}
	return &song, nil
}

// FindByAlbumTrack finds the song occupying a track slot on an album
func (r *mongoSongRepository) FindByAlbumTrack(ctx context.Context, albumID string, trackNumber int) (*models.Song, error) {
	filter := bson.M{
		"album_id":     albumID,
		"track_number": trackNumber,
	}

	var song models.Song
	err := r.collection.FindOne(ctx, filter).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find song by album and track number: %w", err)
	}
	return &song, nil
}

// FindByAlbum returns an album's songs in track order, unpaginated
func (r *mongoSongRepository) FindByAlbum(ctx context.Context, albumID string) ([]*models.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "track_number", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"album_id": albumID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find songs by album: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []*models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}

// FindByArtist returns an artist's songs alphabetically, unpaginated
func (r *mongoSongRepository) FindByArtist(ctx context.Context, artistID string) ([]*models.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"artist_id": artistID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find songs by artist: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []*models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}

// FindManyByIDs fetches songs by ID, silently skipping malformed IDs. The
// result order is the store's, not the input's; callers that care about
// order re-sequence the result.
func (r *mongoSongRepository) FindManyByIDs(ctx context.Context, ids []string) ([]*models.Song, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	if len(objectIDs) == 0 {
		return []*models.Song{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []*models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, nil
}

func (r *mongoSongRepository) List(ctx context.Context, filter SongFilter, page PageOptions) ([]*models.Song, int64, error) {
	query := bson.M{}
	if filter.Title != "" {
		query["title"] = substring(filter.Title)
	}
	if filter.Genre != "" {
		query["genre"] = substring(filter.Genre)
	}
	addIDFilter(query, "album_id", filter.AlbumID)
	addIDFilter(query, "artist_id", filter.ArtistID)
	if filter.DurationMin != nil || filter.DurationMax != nil {
		bounds := bson.M{}
		if filter.DurationMin != nil {
			bounds["$gte"] = *filter.DurationMin
		}
		if filter.DurationMax != nil {
			bounds["$lte"] = *filter.DurationMax
		}
		query["duration"] = bounds
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count songs: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, page.FindOptions(songSortable))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []*models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode songs: %w", err)
	}
	return songs, total, nil
}

func (r *mongoSongRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete song: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoSongRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}
