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

// TvShowStore is the persistence surface the TV handlers need.  There is no
// title search for shows.
type TvShowStore interface {
	ListAll(ctx context.Context) ([]model.TvShow, error)
	GetByID(ctx context.Context, id string) (*model.TvShow, error)
	Create(ctx context.Context, s *model.TvShow) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TvShowHandler serves the /api/tv routes.
type TvShowHandler struct {
	Shows   TvShowStore
	Events  EventPublisher
	Timeout time.Duration
}

func NewTvShowHandler(shows TvShowStore, events EventPublisher, timeout time.Duration) *TvShowHandler {
	if shows == nil {
		panic("nil store passed to NewTvShowHandler")
	}
	return &TvShowHandler{Shows: shows, Events: events, Timeout: timeout}
}

type episodeRequest struct {
	Title         string `json:"title" example:"Pilot"`
	EpisodeNumber *int   `json:"episodeNumber" example:"1"`
	VideoURL      string `json:"videoUrl" example:"https://example.com/s01e01.mp4"`
}

type seasonRequest struct {
	SeasonNumber *int             `json:"seasonNumber" example:"1"`
	Episodes     []episodeRequest `json:"episodes" validate:"dive"`
}

// tvShowRequest is the accepted body of POST /api/tv/add.  Seasons and
// episodes keep the order they were sent in.
type tvShowRequest struct {
	Title       string          `json:"title" validate:"required" example:"Dark"`
	Description string          `json:"description" example:"A missing child sets four families on a frantic hunt for answers."`
	Year        *int            `json:"year" example:"2017"`
	Category    string          `json:"category" example:"Thriller"`
	Poster      string          `json:"poster" example:"https://example.com/dark.jpg"`
	Seasons     []seasonRequest `json:"seasons" validate:"dive"`
}

func (r tvShowRequest) toModel() *model.TvShow {
	s := &model.TvShow{
		Title:       r.Title,
		Description: r.Description,
		Year:        r.Year,
		Category:    r.Category,
		Poster:      r.Poster,
		Seasons:     make([]model.Season, 0, len(r.Seasons)),
	}
	for _, sr := range r.Seasons {
		season := model.Season{
			SeasonNumber: sr.SeasonNumber,
			Episodes:     make([]model.Episode, 0, len(sr.Episodes)),
		}
		for _, er := range sr.Episodes {
			season.Episodes = append(season.Episodes, model.Episode{
				Title:         er.Title,
				EpisodeNumber: er.EpisodeNumber,
				VideoURL:      er.VideoURL,
			})
		}
		s.Seasons = append(s.Seasons, season)
	}
	return s
}

type tvShowCreated struct {
	Success bool          `json:"success" example:"true"`
	Tv      *model.TvShow `json:"tv"`
}

// ListTvShows godoc
//
//	@Summary	List all TV shows
//	@Tags		TV Shows
//	@Produce	json
//	@Success	200	{array}		model.TvShow
//	@Failure	500	{object}	errorBody
//	@Router		/api/tvshows [get]
func (h *TvShowHandler) ListTvShows(c echo.Context) error {
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return storeFailure(c, "tvshows.list", err)
	}
	return c.JSON(http.StatusOK, shows)
}

// GetTvShow godoc
//
//	@Summary	Get a TV show by id
//	@Tags		TV Shows
//	@Produce	json
//	@Param		id	path		string	true	"TV show ObjectID"
//	@Success	200	{object}	model.TvShow
//	@Failure	400	{object}	errorBody	"Invalid ID"
//	@Failure	404	{object}	errorBody	"TV show not found"
//	@Router		/api/tv/{id} [get]
func (h *TvShowHandler) GetTvShow(c echo.Context) error {
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	show, err := h.Shows.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return jsonError(c, http.StatusBadRequest, "Invalid ID")
		}
		if errors.Is(err, repository.ErrTvShowNotFound) {
			return jsonError(c, http.StatusNotFound, "TV show not found")
		}
		return storeFailure(c, "tvshows.get", err)
	}
	return c.JSON(http.StatusOK, show)
}

// CreateTvShow godoc
//
//	@Summary		Add a TV show
//	@Description	Seasons and episodes are stored inside the show document in a single write.
//	@Tags			TV Shows
//	@Accept			json
//	@Produce		json
//	@Param			tv	body		tvShowRequest	true	"TV show fields; title is required"
//	@Success		200	{object}	tvShowCreated
//	@Failure		400	{object}	errorBody
//	@Router			/api/tv/add [post]
func (h *TvShowHandler) CreateTvShow(c echo.Context) error {
	var req tvShowRequest
	if err := bindStrict(c, "TvShow", &req); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	show := req.toModel()

	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	if err := h.Shows.Create(ctx, show); err != nil {
		return storeFailure(c, "tvshows.create", err)
	}
	publish(c, h.Events, queue.CatalogEvent{
		Type:    queue.TvShowCreated,
		ID:      show.ID.Hex(),
		Title:   show.Title,
		Seasons: len(show.Seasons),
	})
	return c.JSON(http.StatusOK, tvShowCreated{Success: true, Tv: show})
}

// DeleteTvShow godoc
//
//	@Summary	Delete a TV show
//	@Tags		TV Shows
//	@Produce	json
//	@Param		id	path		string	true	"TV show ObjectID"
//	@Success	200	{object}	successBody
//	@Failure	500	{object}	errorBody
//	@Router		/api/tv/delete/{id} [delete]
func (h *TvShowHandler) DeleteTvShow(c echo.Context) error {
	id := c.Param("id")
	ctx, cancel := storeContext(c, h.Timeout)
	defer cancel()
	deleted, err := h.Shows.Delete(ctx, id)
	if err != nil {
		return storeFailure(c, "tvshows.delete", err)
	}
	if deleted {
		publish(c, h.Events, queue.CatalogEvent{Type: queue.TvShowDeleted, ID: id})
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}
