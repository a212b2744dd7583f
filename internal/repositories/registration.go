package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cantord3/info465teamproject/internal/logger"
)

// ErrAlreadyRegistered is returned when an insert hits the
// (username, course_id) primary key of the registrations table.
var ErrAlreadyRegistered = errors.New("user already registered for course")

// RegistrationReadRepository handles registration read operations
type RegistrationReadRepository struct {
	db *sqlx.DB
}

func NewRegistrationReadRepository(db *sqlx.DB) *RegistrationReadRepository {
	return &RegistrationReadRepository{db: db}
}

// ListCourseIDs returns the course ids the user is currently registered for.
func (r *RegistrationReadRepository) ListCourseIDs(ctx context.Context, username string) ([]string, error) {
	const query = `
		SELECT course_id
		FROM registrations
		WHERE username = $1
	`

	var courseIDs []string
	err := r.db.SelectContext(ctx, &courseIDs, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", courseIDs,
		"error", err,
	)

	return courseIDs, err
}

// Exists reports whether the user is registered for the course.
func (r *RegistrationReadRepository) Exists(ctx context.Context, username, courseID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM registrations WHERE username = $1 AND course_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username, courseID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, courseID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// RegistrationWriteRepository handles registration write operations
type RegistrationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRegistrationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RegistrationWriteRepository {
	return &RegistrationWriteRepository{db: db, txGetter: txGetter}
}

// Add inserts an enrollment. A primary key conflict is reported as
// ErrAlreadyRegistered rather than a raw driver error; any other
// failure propagates untouched.
func (r *RegistrationWriteRepository) Add(ctx context.Context, username, courseID string) error {
	const query = `
		INSERT INTO registrations (username, course_id, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{username, courseID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrAlreadyRegistered
	}
	return err
}
