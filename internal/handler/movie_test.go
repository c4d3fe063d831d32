package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/obedtech/catalog-api/internal/handler"
	"github.com/obedtech/catalog-api/internal/model"
	"github.com/obedtech/catalog-api/internal/queue"
)

func newMovieServer(t *testing.T, store *memMovies, events handler.EventPublisher) *echo.Echo {
	t.Helper()
	h := handler.NewMovieHandler(store, events, time.Second)
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.GET("/api/movies", h.ListMovies)
	e.GET("/api/search/:title", h.SearchMovies)
	e.GET("/api/info/:id", h.GetMovie)
	e.POST("/api/add", h.CreateMovie)
	e.DELETE("/api/delete/:id", h.DeleteMovie)
	return e
}

func request(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type createdMovie struct {
	Success bool        `json:"success"`
	Movie   model.Movie `json:"movie"`
}

func createMovie(t *testing.T, e *echo.Echo, body string) model.Movie {
	t.Helper()
	rec := request(e, http.MethodPost, "/api/add", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out createdMovie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.True(t, out.Success)
	require.False(t, out.Movie.ID.IsZero())
	return out.Movie
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestCreateMovieThenGet(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)

	created := createMovie(t, e, `{"title":"Dune","description":"Spice","year":2021,"category":"Sci-Fi","poster":"p.jpg","videoUrl":"v.mp4"}`)
	year := 2021
	assert.Equal(t, model.Movie{
		ID: created.ID, Title: "Dune", Description: "Spice", Year: &year,
		Category: "Sci-Fi", Poster: "p.jpg", VideoURL: "v.mp4",
	}, created)

	rec := request(e, http.MethodGet, "/api/info/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestCreateMovieResponseShape(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)
	rec := request(e, http.MethodPost, "/api/add", `{"title":"Dune"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["success"])
	movie := raw["movie"].(map[string]any)
	assert.Equal(t, "Dune", movie["title"])
	assert.Len(t, movie["_id"], 24)
	assert.NotContains(t, movie, "year", "unset optional fields are omitted")
}

func TestCreateMovieValidation(t *testing.T) {
	store := &memMovies{}
	e := newMovieServer(t, store, nil)

	cases := map[string]struct {
		body    string
		mention string
	}{
		"empty object":  {`{}`, "title"},
		"empty body":    {``, "title"},
		"blank title":   {`{"title":""}`, "title"},
		"wrong type":    {`{"title":"Dune","year":"2021"}`, "year"},
		"unknown field": {`{"title":"Dune","rating":5}`, "rating"},
		"malformed":     {`{"title":`, "malformed"},
		"not an object": {`["Dune"]`, "object"},
		"trailing data": {`{"title":"Dune"} {"rating":5} garbage`, "after the JSON object"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := request(e, http.MethodPost, "/api/add", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			msg := errorOf(t, rec)
			assert.True(t, strings.HasPrefix(msg, "Movie validation failed: "), msg)
			assert.Contains(t, msg, tc.mention)
		})
	}
	assert.Empty(t, store.docs)
}

func TestGetMovieInvalidVersusMissing(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)

	for _, id := range []string{"not-a-valid-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		rec := request(e, http.MethodGet, "/api/info/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "Invalid ID", errorOf(t, rec))
	}

	rec := request(e, http.MethodGet, "/api/info/"+bson.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Movie not found", errorOf(t, rec))
}

func TestListMoviesEmptyIsArray(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)
	rec := request(e, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListMoviesKeepsInsertionOrder(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)
	for _, title := range []string{"Alien", "Brazil", "Casablanca"} {
		createMovie(t, e, `{"title":"`+title+`"}`)
	}
	rec := request(e, http.MethodGet, "/api/movies", "")
	var got []model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Alien", got[0].Title)
	assert.Equal(t, "Casablanca", got[2].Title)
}

func TestSearchMoviesCaseInsensitiveSubstring(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)
	createMovie(t, e, `{"title":"The Matrix"}`)
	createMovie(t, e, `{"title":"Dune"}`)

	for _, q := range []string{"matrix", "MAT"} {
		rec := request(e, http.MethodGet, "/api/search/"+q, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var got []model.Movie
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1, q)
		assert.Equal(t, "The Matrix", got[0].Title)
	}

	rec := request(e, http.MethodGet, "/api/search/zzz", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = request(e, http.MethodGet, "/api/search/%28", "")
	assert.Equal(t, http.StatusOK, rec.Code, "regex metacharacters are not rejected")
}

func TestSearchMoviesDecodesEscapedSlash(t *testing.T) {
	e := newMovieServer(t, &memMovies{}, nil)
	createMovie(t, e, `{"title":"AC/DC Live"}`)
	createMovie(t, e, `{"title":"100% Wolf"}`)

	cases := map[string]string{
		"/api/search/AC%2FDC": "AC/DC Live",
		"/api/search/ac%2fdc": "AC/DC Live",
		"/api/search/100%25":  "100% Wolf",
	}
	for target, want := range cases {
		rec := request(e, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		var got []model.Movie
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1, target)
		assert.Equal(t, want, got[0].Title)
	}
}

func TestDeleteMovieIsIdempotent(t *testing.T) {
	store := &memMovies{}
	e := newMovieServer(t, store, nil)
	m := createMovie(t, e, `{"title":"Dune"}`)

	for i := 0; i < 2; i++ {
		rec := request(e, http.MethodDelete, "/api/delete/"+m.ID.Hex(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	}
	assert.Empty(t, store.docs)

	rec := request(e, http.MethodDelete, "/api/delete/"+bson.NewObjectID().Hex(), "")
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	rec = request(e, http.MethodDelete, "/api/delete/not-a-valid-id", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMovieStoreFailureIs500(t *testing.T) {
	e := newMovieServer(t, &memMovies{fail: true}, nil)

	rec := request(e, http.MethodGet, "/api/movies", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "database error", errorOf(t, rec))

	rec = request(e, http.MethodPost, "/api/add", `{"title":"Dune"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMovieWritesPublishEvents(t *testing.T) {
	pub := &recordingPublisher{}
	e := newMovieServer(t, &memMovies{}, pub)

	m := createMovie(t, e, `{"title":"Dune"}`)
	request(e, http.MethodDelete, "/api/delete/"+m.ID.Hex(), "")

	require.Len(t, pub.events, 2)
	assert.Equal(t, queue.MovieCreated, pub.events[0].Type)
	assert.Equal(t, m.ID.Hex(), pub.events[0].ID)
	assert.Equal(t, "Dune", pub.events[0].Title)
	assert.Equal(t, queue.MovieDeleted, pub.events[1].Type)
}

func TestDeletingNothingPublishesNothing(t *testing.T) {
	pub := &recordingPublisher{}
	e := newMovieServer(t, &memMovies{}, pub)

	for _, id := range []string{bson.NewObjectID().Hex(), "not-a-valid-id"} {
		rec := request(e, http.MethodDelete, "/api/delete/"+id, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	}
	assert.Empty(t, pub.events)

	m := createMovie(t, e, `{"title":"Dune"}`)
	request(e, http.MethodDelete, "/api/delete/"+m.ID.Hex(), "")
	request(e, http.MethodDelete, "/api/delete/"+m.ID.Hex(), "")
	require.Len(t, pub.events, 2, "second delete of the same id matched nothing")
	assert.Equal(t, queue.MovieDeleted, pub.events[1].Type)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	pub := &recordingPublisher{err: assert.AnError}
	e := newMovieServer(t, &memMovies{}, pub)
	createMovie(t, e, `{"title":"Dune"}`)
	assert.Len(t, pub.events, 1)
}

func TestNewMovieHandlerRequiresStore(t *testing.T) {
	assert.Panics(t, func() { handler.NewMovieHandler(nil, nil, 0) })
}
