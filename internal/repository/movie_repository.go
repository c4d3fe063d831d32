package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/obedtech/catalog-api/internal/model"
)

// MovieCollection is the collection movies are stored in.
const MovieCollection = "movies"

// MovieRepo encapsulates all document-store operations on movies.  It is
// scoped to a single collection handle which should be configured elsewhere.
type MovieRepo struct {
	coll *mongo.Collection
}

// NewMovieRepo constructs a MovieRepo bound to the movies collection of db.
func NewMovieRepo(db *mongo.Database) *MovieRepo {
	return &MovieRepo{coll: db.Collection(MovieCollection)}
}

// ListAll returns every movie in natural (insertion) order.  The result is
// never nil so that it encodes as an empty JSON array.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	return r.find(ctx, bson.D{})
}

// SearchByTitle returns movies whose title contains fragment, ignoring case.
func (r *MovieRepo) SearchByTitle(ctx context.Context, fragment string) ([]model.Movie, error) {
	return r.find(ctx, titleContains(fragment))
}

func (r *MovieRepo) find(ctx context.Context, filter bson.D) ([]model.Movie, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	out := []model.Movie{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return out, nil
}

// GetByID fetches a movie by its hex id.  It returns ErrInvalidID for a
// malformed id and ErrMovieNotFound when nothing matches.
func (r *MovieRepo) GetByID(ctx context.Context, rawID string) (*model.Movie, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	var m model.Movie
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie %s: %w", rawID, err)
	}
	return &m, nil
}

// Create inserts m.  On success m.ID holds the generated identifier.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	m.ID = bson.NilObjectID
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		m.ID = id
	}
	return nil
}

// Delete removes the movie with the given id and reports whether a document
// was removed.  A malformed id or a missing document is not an error: nothing
// matched, so nothing was deleted.
func (r *MovieRepo) Delete(ctx context.Context, rawID string) (bool, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return false, fmt.Errorf("delete movie %s: %w", rawID, err)
	}
	return res.DeletedCount > 0, nil
}
