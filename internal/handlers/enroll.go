package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/services"
)

// EnrollTokener defines only the token methods needed by this handler.
type EnrollTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// CourseRegisterer defines the interface that the registration service
// must implement.
type CourseRegisterer interface {
	Register(ctx context.Context, username, courseID string) error
}

// EnrollResponse represents a successful course registration response
// swagger:model EnrollResponse
type EnrollResponse struct {
	// Success message
	// default: Registered successfully
	Message string `json:"message"`
}

// EnrollErrorResponse represents an error response for course registration
// swagger:model EnrollErrorResponse
type EnrollErrorResponse struct {
	// Error message
	// default: No seats available
	Error string `json:"error"`
}

// NewEnrollHandler returns an HTTP handler for course registration.
// Each outcome keeps its own status and message so the caller can
// render exactly why a registration was refused.
// @Summary Register for a course
// @Description Enrolls the authenticated user in a course, subject to activity, seat availability, prerequisite, and duplicate checks.
// @Tags courses
// @Produce json
// @Param courseID path string true "Course identifier"
// @Success 201 {object} handlers.EnrollResponse "Registered successfully"
// @Failure 401 {object} handlers.EnrollErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EnrollErrorResponse "Course not active"
// @Failure 409 {object} handlers.EnrollErrorResponse "No seats available / already registered"
// @Failure 422 {object} handlers.EnrollErrorResponse "Prerequisites not met"
// @Router /courses/{courseID}/register [post]
// @Security BearerAuth
func NewEnrollHandler(svc CourseRegisterer, tokenGetter EnrollTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized enroll request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EnrollErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(EnrollErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		courseID := chi.URLParam(r, "courseID")

		if err := svc.Register(ctx, username, courseID); err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotActive):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EnrollErrorResponse{
					Error: "Course not active",
				})
			case errors.Is(err, services.ErrNoSeats):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(EnrollErrorResponse{
					Error: "No seats available",
				})
			case errors.Is(err, services.ErrPrerequisitesNotMet):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(EnrollErrorResponse{
					Error: "Prerequisites not met",
				})
			case errors.Is(err, services.ErrAlreadyRegistered):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(EnrollErrorResponse{
					Error: "Already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EnrollErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(EnrollResponse{
			Message: "Registered successfully",
		})
	}
}
