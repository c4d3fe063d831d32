package router // package router defines how HTTP routes are registered for the API

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/obedtech/catalog-api/internal/config"
	"github.com/obedtech/catalog-api/internal/handler"
	"github.com/obedtech/catalog-api/internal/middleware"
)

// Deps is everything the route groups need.  Redis may be nil, in which case
// caching and rate limiting are pass-through.
type Deps struct {
	Movies    *handler.MovieHandler
	TvShows   *handler.TvShowHandler
	Ready     handler.PingFunc
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	PublicDir string
	Logger    *slog.Logger
}

// Setup installs the global middleware chain and every route on e.
func Setup(e *echo.Echo, d Deps) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.CORS())

	RegisterRoutes(e, d.Ready, d.PublicDir)

	api := e.Group("/api", middleware.NewTokenBucket(d.RateLimit, d.Redis))
	reads := middleware.NewRedisCache(d.Cache, d.Redis)
	writes := middleware.NewCacheInvalidator(d.Cache, d.Redis)
	RegisterMovies(api, d.Movies, reads, writes)
	RegisterTvShows(api, d.TvShows, reads, writes)

	RegisterDocs(e)
}

// RegisterRoutes registers the non-API routes: liveness, readiness, the
// banner at "/", the admin page and static assets from publicDir.  Assets are
// served from the root so pages can reference them as "/logo.png"; the exact
// routes registered here take precedence over the catch-all.
func RegisterRoutes(e *echo.Echo, ready handler.PingFunc, publicDir string) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
	if ready != nil {
		e.GET("/readyz", handler.Ready(ready))
	}
	if publicDir != "" {
		e.GET("/admin", handler.AdminPage(publicDir))
		e.Static("/", publicDir)
	}
}
