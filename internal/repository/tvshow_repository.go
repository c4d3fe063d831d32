package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/obedtech/catalog-api/internal/model"
)

// TvShowCollection is the collection TV shows are stored in.
const TvShowCollection = "tvshows"

// TvShowRepo encapsulates all document-store operations on TV shows.  Seasons
// and episodes are embedded, so every write touches exactly one document.
type TvShowRepo struct {
	coll *mongo.Collection
}

func NewTvShowRepo(db *mongo.Database) *TvShowRepo {
	return &TvShowRepo{coll: db.Collection(TvShowCollection)}
}

// ListAll returns every show in natural order.
func (r *TvShowRepo) ListAll(ctx context.Context) ([]model.TvShow, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find tv shows: %w", err)
	}
	out := []model.TvShow{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode tv shows: %w", err)
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

// GetByID fetches a show by its hex id, distinguishing ErrInvalidID from
// ErrTvShowNotFound.
func (r *TvShowRepo) GetByID(ctx context.Context, rawID string) (*model.TvShow, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	var s model.TvShow
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTvShowNotFound
		}
		return nil, fmt.Errorf("find tv show %s: %w", rawID, err)
	}
	s.Normalize()
	return &s, nil
}

// Create inserts s together with its seasons and episodes.
func (r *TvShowRepo) Create(ctx context.Context, s *model.TvShow) error {
	s.ID = bson.NilObjectID
	s.Normalize()
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("insert tv show: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		s.ID = id
	}
	return nil
}

// Delete removes the show with the given id and reports whether it existed;
// absent or malformed ids are a successful no-op.
func (r *TvShowRepo) Delete(ctx context.Context, rawID string) (bool, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return false, fmt.Errorf("delete tv show %s: %w", rawID, err)
	}
	return res.DeletedCount > 0, nil
}
