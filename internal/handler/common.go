// Package handler exposes the HTTP handlers of the catalog API.  Handlers
// parse and validate input, delegate persistence to the stores injected at
// construction time and translate every outcome into a JSON response; no
// error is returned to echo's default error handler.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/obedtech/catalog-api/internal/queue"
)

// defaultStoreTimeout bounds a single store call when the handler was built
// without an explicit timeout.
const defaultStoreTimeout = 5 * time.Second

// EventPublisher receives a notification after every successful write.
// Publishing is best effort: failures are logged and never change the
// response.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.CatalogEvent) error
}

// errorBody is the shape of every error response.
type errorBody struct {
	Error string `json:"error" example:"Invalid ID"`
}

// successBody is returned by the delete endpoints.
type successBody struct {
	Success bool `json:"success" example:"true"`
}

func storeContext(c echo.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(c.Request().Context(), timeout)
}

func jsonError(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorBody{Error: msg})
}

// storeFailure logs an unexpected store error and answers 500.
func storeFailure(c echo.Context, op string, err error) error {
	slog.Error("store operation failed",
		"op", op,
		"error", err,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
	)
	return jsonError(c, http.StatusInternalServerError, "database error")
}

// publish hands ev to the publisher, if any, on a context detached from the
// request so a client disconnect does not drop the event.
func publish(c echo.Context, p EventPublisher, ev queue.CatalogEvent) {
	if p == nil {
		return
	}
	ev.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), 3*time.Second)
	defer cancel()
	if err := p.Publish(ctx, ev); err != nil {
		slog.Warn("catalog event not published", "type", ev.Type, "id", ev.ID, "error", err)
	}
}

// bindStrict decodes the JSON body into dst, rejecting unknown fields and
// values of the wrong type, then runs the struct validator registered on
// echo.  An empty body decodes as an empty object.  The returned error is
// already phrased for the client, prefixed with entity.
func bindStrict(c echo.Context, entity string, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	switch err := dec.Decode(dst); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return fmt.Errorf("%s validation failed: %s", entity, describeDecodeError(err))
	default:
		// The body must hold exactly one value.
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%s validation failed: unexpected data after the JSON object", entity)
		}
	}
	if err := c.Validate(dst); err != nil {
		return fmt.Errorf("%s validation failed: %s", entity, describeValidationError(err))
	}
	return nil
}

// pathParam returns the named path parameter, percent-decoded.  echo routes on
// URL.RawPath when the path carries escapes such as %2F and then hands back
// the still-escaped value; otherwise the parameter is already decoded.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return fmt.Sprintf("body must be a JSON object, got %s", typeErr.Value)
		}
		return fmt.Sprintf("%s: expected %s, got %s", field, jsonKind(typeErr.Type.Kind().String()), typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON: unexpected end of body"
	}
	return strings.TrimPrefix(err.Error(), "json: ")
}

func jsonKind(goKind string) string {
	switch goKind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "slice", "array":
		return "array"
	case "struct", "map", "ptr":
		return "object"
	}
	return goKind
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: Path `%s` is required.", path, path))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: Path `%s` failed the %q rule.", path, path, fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}
