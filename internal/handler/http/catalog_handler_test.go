// File: internal/handler/http/catalog_handler_test.go
package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/catalog"
)

type stubMovieRepository struct {
	movies     []catalog.Movie
	total      int64
	lastFilter bson.M
	lastPage   catalog.Pagination
}

func (s *stubMovieRepository) FindPage(ctx context.Context, filter bson.M, p catalog.Pagination) ([]catalog.Movie, int64, error) {
	s.lastFilter = filter
	s.lastPage = p
	return s.movies, s.total, nil
}

func newCatalogRouter(repo *stubMovieRepository) *gin.Engine {
	log := zap.NewNop()
	handler := NewCatalogHandler(catalog.NewService(repo, catalog.NopPageCache{}, log), log)

	router := gin.New()
	movies := router.Group("/movies")
	{
		movies.GET("", handler.List)
		movies.GET("/search", handler.Search)
		movies.GET("/year/:year", handler.ByYear)
		movies.GET("/top-rated", handler.TopRated)
	}
	return router
}

func catalogGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestMoviesEndpoint(t *testing.T) {
	repo := &stubMovieRepository{
		movies: []catalog.Movie{{Title: "The Matrix", Year: 1999}},
		total:  45,
	}
	router := newCatalogRouter(repo)

	recorder := catalogGet(t, router, "/movies?page=2&limit=10")
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, float64(2), body["currentPage"])
	assert.Equal(t, float64(5), body["totalPages"])
	assert.Equal(t, float64(3), body["remainingPages"])
	assert.Equal(t, float64(45), body["totalItems"])
	assert.Equal(t, float64(10), body["itemsPerPage"])
	assert.Equal(t, true, body["hasMore"])
	assert.Len(t, body["data"], 1)
}

func TestMoviesEndpoint_PaginationDefaults(t *testing.T) {
	repo := &stubMovieRepository{total: 5}
	router := newCatalogRouter(repo)

	recorder := catalogGet(t, router, "/movies")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, catalog.Pagination{Page: 1, Limit: 10}, repo.lastPage)

	recorder = catalogGet(t, router, "/movies?page=0&limit=500")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, catalog.Pagination{Page: 1, Limit: 20}, repo.lastPage)
}

func TestMoviesSearchEndpoint(t *testing.T) {
	repo := &stubMovieRepository{total: 1}
	router := newCatalogRouter(repo)

	t.Run("requires title", func(t *testing.T) {
		recorder := catalogGet(t, router, "/movies/search")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("filters by title", func(t *testing.T) {
		recorder := catalogGet(t, router, "/movies/search?title=matrix")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, repo.lastFilter, "title")
	})
}

func TestMoviesByYearEndpoint(t *testing.T) {
	repo := &stubMovieRepository{total: 3}
	router := newCatalogRouter(repo)

	t.Run("filters by year", func(t *testing.T) {
		recorder := catalogGet(t, router, "/movies/year/1999")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, bson.M{"year": 1999}, repo.lastFilter)
	})

	t.Run("rejects non-numeric year", func(t *testing.T) {
		recorder := catalogGet(t, router, "/movies/year/nineteen99")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMoviesTopRatedEndpoint(t *testing.T) {
	repo := &stubMovieRepository{total: 7}
	router := newCatalogRouter(repo)

	recorder := catalogGet(t, router, "/movies/top-rated")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, bson.M{"imdb.rating": bson.M{"$exists": true, "$ne": nil}}, repo.lastFilter)
}
