package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
)

// SearchCacheRepository provides cached course search results using Redis.
// Seat counts drift as registrations land, so the TTL should stay short.
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewSearchCacheRepository creates a new repository instance with optional TTL
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(query string) string {
	return fmt.Sprintf("course_search:%s", strings.ToLower(strings.TrimSpace(query)))
}

// GetCourses fetches cached search results for a query.
func (r *SearchCacheRepository) GetCourses(ctx context.Context, query string) ([]models.CourseDB, error) {
	key := searchKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("no cached search results for %q", query)
		}
		return nil, err
	}

	var courses []models.CourseDB
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(courses),
		"error", nil,
	)

	return courses, nil
}

// SetCourses caches search results for a query with expiration.
func (r *SearchCacheRepository) SetCourses(ctx context.Context, query string, courses []models.CourseDB) error {
	key := searchKey(query)

	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, string(data), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
