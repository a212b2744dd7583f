package services

import (
	"context"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
)

// CourseSearcher defines read operations against the course catalog.
type CourseSearcher interface {
	Search(ctx context.Context, query string) ([]models.CourseDB, error)
}

// SearchCache caches search results per query.
type SearchCache interface {
	GetCourses(ctx context.Context, query string) ([]models.CourseDB, error)
	SetCourses(ctx context.Context, query string, courses []models.CourseDB) error
}

// SearchService serves course catalog searches with a read-through cache.
type SearchService struct {
	courses CourseSearcher
	cache   SearchCache
}

// NewSearchService creates a new SearchService. The cache may be nil,
// in which case every search goes to the store.
func NewSearchService(courses CourseSearcher, cache SearchCache) *SearchService {
	return &SearchService{
		courses: courses,
		cache:   cache,
	}
}

// Search returns active courses matching query as a case-insensitive
// substring of name or course id. An empty query returns all active
// courses. Cached results may report slightly stale seat counts.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.CourseDB, error) {
	if s.cache != nil {
		if courses, err := s.cache.GetCourses(ctx, query); err == nil {
			return courses, nil
		}
	}

	courses, err := s.courses.Search(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to search courses", "query", query, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCourses(ctx, query, courses); err != nil {
			logger.Log.Errorw("failed to cache search results", "query", query, "error", err)
		}
	}

	return courses, nil
}
