// File: internal/catalog/repository.go
package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MovieRepository answers filtered, paginated queries over the movies
// collection.
type MovieRepository interface {
	FindPage(ctx context.Context, filter bson.M, p Pagination) ([]Movie, int64, error)
}

type mongoMovieRepository struct {
	collection *mongo.Collection
}

// NewMongoMovieRepository creates a Mongo-backed movie repository.
func NewMongoMovieRepository(db *mongo.Database, collectionName string) MovieRepository {
	return &mongoMovieRepository{collection: db.Collection(collectionName)}
}

func (r *mongoMovieRepository) FindPage(ctx context.Context, filter bson.M, p Pagination) ([]Movie, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	findOptions := options.Find().
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, 0, fmt.Errorf("failed to decode movies: %w", err)
	}

	return movies, total, nil
}

var _ MovieRepository = (*mongoMovieRepository)(nil)
