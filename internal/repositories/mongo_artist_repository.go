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

// artistSortable lists the allow-listed sort fields for artist listings
var artistSortable = map[string]bool{
	"name":        true,
	"genre":       true,
	"country":     true,
	"formed_year": true,
	"created_at":  true,
}

// mongoArtistRepository implements ArtistRepository using MongoDB
type mongoArtistRepository struct {
	collection *mongo.Collection
}

// NewMongoArtistRepository creates a MongoDB-backed artist repository
func NewMongoArtistRepository(db *models.Database) ArtistRepository {
	return &mongoArtistRepository{
		collection: db.DB.Collection(models.CollectionArtists),
	}
}

func (r *mongoArtistRepository) Insert(ctx context.Context, artist *models.Artist) error {
	now := time.Now()
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = now
	}
	artist.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, artist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert artist: %w", err)
	}
	artist.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoArtistRepository) Replace(ctx context.Context, id string, artist *models.Artist) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	artist.ID = objectID
	artist.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, artist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateKey
		}
		return false, fmt.Errorf("failed to replace artist: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoArtistRepository) FindByID(ctx context.Context, id string) (*models.Artist, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid object ID: %w", err)
	}

	var artist models.Artist
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&artist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find artist by ID: %w", err)
	}
	return &artist, nil
}

// FindByName matches the whole name case-insensitively. Used by the
// duplicate check, which treats "Queen" and "queen" as the same artist.
func (r *mongoArtistRepository) FindByName(ctx context.Context, name string) (*models.Artist, error) {
	var artist models.Artist
	err := r.collection.FindOne(ctx, bson.M{"name": exactCI(name)}).Decode(&artist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find artist by name: %w", err)
	}
	return &artist, nil
}

func (r *mongoArtistRepository) List(ctx context.Context, filter ArtistFilter, page PageOptions) ([]*models.Artist, int64, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = substring(filter.Name)
	}
	if filter.Genre != "" {
		query["genre"] = substring(filter.Genre)
	}
	if filter.Country != "" {
		query["country"] = substring(filter.Country)
	}
	if filter.FormedYear != nil {
		query["formed_year"] = *filter.FormedYear
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, page.FindOptions(artistSortable))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list artists: %w", err)
	}
	defer cursor.Close(ctx)

	artists := []*models.Artist{}
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, 0, fmt.Errorf("failed to decode artists: %w", err)
	}
	return artists, total, nil
}

func (r *mongoArtistRepository) Delete(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("invalid object ID: %w", err)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, fmt.Errorf("failed to delete artist: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoArtistRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return count, nil
}
