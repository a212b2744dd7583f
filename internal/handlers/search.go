package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
)

// CourseSearcher defines the interface that the search service must implement.
type CourseSearcher interface {
	Search(ctx context.Context, query string) ([]models.CourseDB, error)
}

// CourseResult represents one course in a search response
// swagger:model CourseResult
type CourseResult struct {
	// Course identifier
	// default: CS101
	CourseID string `json:"course_id"`

	// Course name
	// default: Intro to Computer Science
	Name string `json:"name"`

	// Seats remaining
	// default: 30
	Seats int `json:"seats"`
}

// SearchResponse represents a successful course search response
// swagger:model SearchResponse
type SearchResponse struct {
	// Matching active courses
	Courses []CourseResult `json:"courses"`
}

// SearchErrorResponse represents an error response for course search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for course search.
// @Summary Search active courses
// @Description Returns active courses whose name or id contains the query as a case-insensitive substring. Empty query returns all active courses.
// @Tags courses
// @Produce json
// @Param query query string false "Substring to match against course name or id"
// @Success 200 {object} handlers.SearchResponse "Matching courses"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SearchErrorResponse "Internal server error"
// @Router /courses [get]
// @Security BearerAuth
func NewSearchHandler(svc CourseSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")

		courses, err := svc.Search(r.Context(), query)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		results := make([]CourseResult, 0, len(courses))
		for _, course := range courses {
			results = append(results, CourseResult{
				CourseID: course.CourseID,
				Name:     course.Name,
				Seats:    course.Seats,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{
			Courses: results,
		})
	}
}
