// File: internal/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/utils/metrics"
)

// Service answers the catalog read queries. Every query goes through the
// page cache first and falls back to the repository on a miss.
type Service struct {
	movies MovieRepository
	cache  PageCache
	logger *zap.Logger
}

// NewService creates a catalog Service.
func NewService(movies MovieRepository, cache PageCache, logger *zap.Logger) *Service {
	if cache == nil {
		cache = NopPageCache{}
	}
	return &Service{movies: movies, cache: cache, logger: logger}
}

// List returns a page over the whole collection.
func (s *Service) List(ctx context.Context, p Pagination) (*PaginatedMovies, error) {
	p = p.Normalize()
	return s.query(ctx, fmt.Sprintf("movies:all:%d:%d", p.Page, p.Limit), bson.M{}, p)
}

// SearchByTitle returns movies whose title matches the given text,
// case-insensitively. The text is quoted so user input cannot inject
// regex syntax.
func (s *Service) SearchByTitle(ctx context.Context, title string, p Pagination) (*PaginatedMovies, error) {
	p = p.Normalize()
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
	return s.query(ctx, fmt.Sprintf("movies:search:%s:%d:%d", title, p.Page, p.Limit), filter, p)
}

// ByYear returns movies released in the given year.
func (s *Service) ByYear(ctx context.Context, year int, p Pagination) (*PaginatedMovies, error) {
	p = p.Normalize()
	filter := bson.M{"year": year}
	return s.query(ctx, fmt.Sprintf("movies:year:%d:%d:%d", year, p.Page, p.Limit), filter, p)
}

// TopRated returns movies that carry an imdb rating.
func (s *Service) TopRated(ctx context.Context, p Pagination) (*PaginatedMovies, error) {
	p = p.Normalize()
	filter := bson.M{"imdb.rating": bson.M{"$exists": true, "$ne": nil}}
	return s.query(ctx, fmt.Sprintf("movies:top-rated:%d:%d", p.Page, p.Limit), filter, p)
}

func (s *Service) query(ctx context.Context, cacheKey string, filter bson.M, p Pagination) (*PaginatedMovies, error) {
	if page, err := s.cache.Get(ctx, cacheKey); err == nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return page, nil
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	data, total, err := s.movies.FindPage(ctx, filter, p)
	if err != nil {
		s.logger.Error("Catalog query failed", zap.Error(err), zap.String("cache_key", cacheKey))
		return nil, err
	}

	page := NewPaginatedMovies(data, total, p)
	_ = s.cache.Set(ctx, cacheKey, page)
	return page, nil
}
