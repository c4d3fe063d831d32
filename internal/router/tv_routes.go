package router

import (
	"github.com/labstack/echo/v4"

	"github.com/obedtech/catalog-api/internal/handler"
)

// RegisterTvShows maps the TV show endpoints.  /tv/add and /tv/delete/:id
// are static segments and take precedence over /tv/:id in echo's router.
func RegisterTvShows(api *echo.Group, h *handler.TvShowHandler, reads, writes echo.MiddlewareFunc) {
	api.GET("/tvshows", h.ListTvShows, reads)
	api.GET("/tv/:id", h.GetTvShow, reads)
	api.POST("/tv/add", h.CreateTvShow, writes)
	api.DELETE("/tv/delete/:id", h.DeleteTvShow, writes)
}
