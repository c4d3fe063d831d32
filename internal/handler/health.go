package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"net/http" // net/http provides status codes and response helpers
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health is a simple health‑check endpoint used by load balancers and
// monitoring systems to verify that the process is running.  It does not
// touch the database.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers GET / with a plain text banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "OBEDTECH Movie & TV API is live!")
}

// PingFunc checks a dependency; nil means reachable.
type PingFunc func(ctx context.Context) error

// Ready reports 200 only when ping succeeds within two seconds, so that
// orchestrators stop routing traffic while MongoDB is unreachable.
func Ready(ping PingFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	}
}

// AdminPage serves admin.html from dir, or 404 when the file does not exist.
func AdminPage(dir string) echo.HandlerFunc {
	page := filepath.Join(dir, "admin.html")
	return func(c echo.Context) error {
		if _, err := os.Stat(page); err != nil {
			return c.JSON(http.StatusNotFound, errorBody{Error: "admin page not found"})
		}
		return c.File(page)
	}
}
