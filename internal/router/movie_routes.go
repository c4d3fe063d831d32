package router

import (
	"github.com/labstack/echo/v4"

	"github.com/obedtech/catalog-api/internal/handler"
)

// RegisterMovies maps the movie endpoints under the /api group.  The path
// names are kept as existing clients call them, which is why search, info,
// add and delete sit directly under /api.
func RegisterMovies(api *echo.Group, h *handler.MovieHandler, reads, writes echo.MiddlewareFunc) {
	api.GET("/movies", h.ListMovies, reads)
	api.GET("/search/:title", h.SearchMovies, reads)
	api.GET("/info/:id", h.GetMovie, reads)
	api.POST("/add", h.CreateMovie, writes)
	api.DELETE("/delete/:id", h.DeleteMovie, writes)
}
