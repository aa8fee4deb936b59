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

var albumSortable = map[string]bool{
	"title":        true,
	"release_date": true,
	"track_count":  true,
	"duration":     true,
	"created_at":   true,
}

// mongoAlbumRepository implements AlbumRepository using MongoDB
type mongoAlbumRepository struct {
	collection *mongo.Collection
}

// NewMongoAlbumRepository creates a MongoDB-backed album repository
func NewMongoAlbumRepository(db *models.Database) AlbumRepository {
	return &mongoAlbumRepository{
		collection: db.DB.Collection(models.CollectionAlbums),
	}
}

func (r *mongoAlbumRepository) Insert(ctx context.Context, album *models.Album) error {
	now := time.Now()
	if album.CreatedAt.IsZero() {
		album.CreatedAt = now
	}
	album.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, album)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert album: %w", err)
	}
	album.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoAlbumRepository) Replace(ctx context.Context, id string, album *models.Album) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	album.ID = objectID
	album.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, album)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateKey
		}
		return false, fmt.Errorf("failed to replace album: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoAlbumRepository) FindByID(ctx context.Context, id string) (*models.Album, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid object ID: %w", err)
	}

	var album models.Album
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&album)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find album by ID: %w", err)
	}
	return &album, nil
}

// FindByArtistTitle matches an album title case-insensitively within one
// artist's discography. Used by the per-artist duplicate check.
func (r *mongoAlbumRepository) FindByArtistTitle(ctx context.Context, artistID, title string) (*models.Album, error) {
	filter := bson.M{
		"artist_id": artistID,
		"title":     exactCI(title),
	}

	var album models.Album
	err := r.collection.FindOne(ctx, filter).Decode(&album)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find album by artist and title: %w", err)
	}
	return &album, nil
}

// FindByArtist returns an artist's albums in release order, unpaginated
func (r *mongoAlbumRepository) FindByArtist(ctx context.Context, artistID string) ([]*models.Album, error) {
	opts := options.Find().SetSort(bson.D{{Key: "release_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"artist_id": artistID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find albums by artist: %w", err)
	}
	defer cursor.Close(ctx)

	albums := []*models.Album{}
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, nil
}

func (r *mongoAlbumRepository) CountByArtist(ctx context.Context, artistID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"artist_id": artistID})
	if err != nil {
		return 0, fmt.Errorf("failed to count albums by artist: %w", err)
	}
	return count, nil
}

func (r *mongoAlbumRepository) List(ctx context.Context, filter AlbumFilter, page PageOptions) ([]*models.Album, int64, error) {
	query := bson.M{}
	if filter.Title != "" {
		query["title"] = substring(filter.Title)
	}
	if filter.Genre != "" {
		query["genre"] = substring(filter.Genre)
	}
	addIDFilter(query, "artist_id", filter.ArtistID)
	if filter.ReleaseYear != nil {
		year := *filter.ReleaseYear
		query["release_date"] = bson.M{
			"$gte": fmt.Sprintf("%04d-01-01", year),
			"$lte": fmt.Sprintf("%04d-12-31", year),
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, page.FindOptions(albumSortable))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", err)
	}
	defer cursor.Close(ctx)

	albums := []*models.Album{}
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, 0, fmt.Errorf("failed to decode albums: %w", err)
	}
	return albums, total, nil
}

func (r *mongoAlbumRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete album: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoAlbumRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count albums: %w", err)
	}
	return count, nil
}
