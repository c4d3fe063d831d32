package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/obedtech/catalog-api/internal/model"
	"github.com/obedtech/catalog-api/internal/queue"
	"github.com/obedtech/catalog-api/internal/repository"
)

// MovieStore is the persistence surface the movie handlers need.
// *repository.MovieRepo satisfies it.
type MovieStore interface {
	ListAll(ctx context.Context) ([]model.Movie, error)
	SearchByTitle(ctx context.Context, fragment string) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id string) (bool, error)
}

// MovieHandler serves the /api movie routes.
type MovieHandler struct {
	Movies  MovieStore
	Events  EventPublisher // optional
	Timeout time.Duration  // per store call; defaults to five seconds
}

// NewMovieHandler panics when movies is nil, like the other constructors in
// this package; a handler without a store cannot serve anything.
func NewMovieHandler(movies MovieStore, events EventPublisher, timeout time.Duration) *MovieHandler {
	if movies == nil {
		panic("nil store passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies, Events: events, Timeout: timeout}
}

// movieRequest is the accepted body of POST /api/add.
type movieRequest struct {
	Title       string `json:"title" validate:"required" example:"Dune"`
	Description string `json:"description" example:"A noble family becomes embroiled in a war for control of the desert planet Arrakis."`
	Year        *int   `json:"year" example:"2021"`
	Category    string `json:"category" example:"Sci-Fi"`
	Poster      string `json:"poster" example:"https://example.com/dune.jpg"`
	VideoURL    string `json:"videoUrl" example:"https://example.com/dune.mp4"`
}

func (r movieRequest) toModel() *model.Movie {
	return &model.Movie{
		Title:       r.Title,
		Description: r.Description,
		Year:        r.Year,
		Category:    r.Category,
		Poster:      r.Poster,
		VideoURL:    r.VideoURL,
	}
}

// movieCreated is the body of a successful POST /api/add.
type movieCreated struct {
	Success bool         `json:"success" example:"true"`
	Movie   *model.Movie `json:"movie"`
}

// ListMovies godoc
//
//	@Summary	List all movies
//	@Tags		Movies
//	@Produce	json
//	@Success	200	{array}		model.Movie
//	@Failure	500	{object}	errorBody
//	@Router		/api/movies [get]
func (h *MovieHandler) ListMovies(c echo.Context) error {
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return storeFailure(c, "movies.list", err)
	}
	return c.JSON(http.StatusOK, movies)
}

// SearchMovies godoc
//
//	@Summary		Search movies by title
//	@Description	Case-insensitive substring match on the title. The fragment is matched literally.
//	@Tags			Movies
//	@Produce		json
//	@Param			title	path		string	true	"Title fragment"
//	@Success		200		{array}		model.Movie
//	@Failure		500		{object}	errorBody
//	@Router			/api/search/{title} [get]
func (h *MovieHandler) SearchMovies(c echo.Context) error {
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	movies, err := h.Movies.SearchByTitle(ctx, pathParam(c, "title"))
	if err != nil {
		return storeFailure(c, "movies.search", err)
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie godoc
//
//	@Summary	Get a movie by id
//	@Tags		Movies
//	@Produce	json
//	@Param		id	path		string	true	"Movie ObjectID"
//	@Success	200	{object}	model.Movie
//	@Failure	400	{object}	errorBody	"Invalid ID"
//	@Failure	404	{object}	errorBody	"Movie not found"
//	@Router		/api/info/{id} [get]
func (h *MovieHandler) GetMovie(c echo.Context) error {
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	movie, err := h.Movies.GetByID(ctx, c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return jsonError(c, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, repository.ErrMovieNotFound):
		return jsonError(c, http.StatusNotFound, "Movie not found")
	case err != nil:
		return storeFailure(c, "movies.get", err)
	}
	return c.JSON(http.StatusOK, movie)
}

// CreateMovie godoc
//
//	@Summary	Add a movie
//	@Tags		Movies
//	@Accept		json
//	@Produce	json
//	@Param		movie	body		movieRequest	true	"Movie fields; title is required"
//	@Success	200		{object}	movieCreated
//	@Failure	400		{object}	errorBody
//	@Router		/api/add [post]
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	var req movieRequest
	if err := bindStrict(c, "Movie", &req); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	movie := req.toModel()

	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	if err := h.Movies.Create(ctx, movie); err != nil {
		return storeFailure(c, "movies.create", err)
	}
	publish(c, h.Events, queue.CatalogEvent{
		Type:  queue.MovieCreated,
		ID:    movie.ID.Hex(),
		Title: movie.Title,
	})
	return c.JSON(http.StatusOK, movieCreated{Success: true, Movie: movie})
}

// DeleteMovie godoc
//
//	@Summary		Delete a movie
//	@Description	Idempotent: deleting an id that matches nothing also succeeds.
//	@Tags			Movies
//	@Produce		json
//	@Param			id	path		string	true	"Movie ObjectID"
//	@Success		200	{object}	successBody
//	@Failure		500	{object}	errorBody
//	@Router			/api/delete/{id} [delete]
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id := c.Param("id")
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	deleted, err := h.Movies.Delete(ctx, id)
	if err != nil {
		return storeFailure(c, "movies.delete", err)
	}
	if deleted {
		publish(c, h.Events, queue.CatalogEvent{Type: queue.MovieDeleted, ID: id})
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}
