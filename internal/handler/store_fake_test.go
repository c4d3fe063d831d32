package handler_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/obedtech/catalog-api/internal/model"
	"github.com/obedtech/catalog-api/internal/queue"
	"github.com/obedtech/catalog-api/internal/repository"
)

var errStoreDown = errors.New("server selection timeout")

// memMovies is an in-memory MovieStore with the same error contract as
// repository.MovieRepo.
type memMovies struct {
	mu   sync.Mutex
	docs []model.Movie
	fail bool
}

func (s *memMovies) ListAll(context.Context) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	return append([]model.Movie{}, s.docs...), nil
}

func (s *memMovies) SearchByTitle(_ context.Context, fragment string) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Movie{}
	for _, m := range s.docs {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(fragment)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memMovies) GetByID(_ context.Context, raw string) (*model.Movie, error) {
	id, err := repository.ParseID(raw)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, errStoreDown
	}
	for _, m := range s.docs {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, repository.ErrMovieNotFound
}

func (s *memMovies) Create(_ context.Context, m *model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errStoreDown
	}
	m.ID = bson.NewObjectID()
	s.docs = append(s.docs, *m)
	return nil
}

func (s *memMovies) Delete(_ context.Context, raw string) (bool, error) {
	id, err := repository.ParseID(raw)
	if err != nil {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.docs {
		if m.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memShows struct {
	mu   sync.Mutex
	docs []model.TvShow
}

func (s *memShows) ListAll(context.Context) ([]model.TvShow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TvShow{}, s.docs...), nil
}

func (s *memShows) GetByID(_ context.Context, raw string) (*model.TvShow, error) {
	id, err := repository.ParseID(raw)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range s.docs {
		if sh.ID == id {
			sh := sh
			return &sh, nil
		}
	}
	return nil, repository.ErrTvShowNotFound
}

func (s *memShows) Create(_ context.Context, sh *model.TvShow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = bson.NewObjectID()
	sh.Normalize()
	s.docs = append(s.docs, *sh)
	return nil
}

func (s *memShows) Delete(_ context.Context, raw string) (bool, error) {
	id, err := repository.ParseID(raw)
	if err != nil {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sh := range s.docs {
		if sh.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.CatalogEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.CatalogEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}
