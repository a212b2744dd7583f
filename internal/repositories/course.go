package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
)

// CourseReadRepository handles course read operations
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// GetActive returns the course record, or nil if the course does not
// exist or its active flag is off. Inactive and missing courses are
// indistinguishable to callers.
func (r *CourseReadRepository) GetActive(ctx context.Context, courseID string) (*models.CourseDB, error) {
	const query = `
		SELECT course_id, name, seats, active, created_at
		FROM courses
		WHERE course_id = $1 AND active
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, courseID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{courseID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

// Search returns active courses whose name or course_id contains query
// as a case-insensitive substring. An empty query returns all active
// courses. Results come back in insertion order.
func (r *CourseReadRepository) Search(ctx context.Context, query string) ([]models.CourseDB, error) {
	const stmt = `
		SELECT course_id, name, seats, active, created_at
		FROM courses
		WHERE active
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR course_id ILIKE '%' || $1 || '%')
		ORDER BY created_at
	`

	var courses []models.CourseDB
	err := r.db.SelectContext(ctx, &courses, stmt, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(stmt), " "),
		"args", []any{query},
		"result", len(courses),
		"error", err,
	)

	return courses, err
}

// CourseWriteRepository handles course write operations
type CourseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCourseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CourseWriteRepository {
	return &CourseWriteRepository{db: db, txGetter: txGetter}
}

// DecrementSeats takes one seat from the course in a single
// compare-and-decrement statement and returns the seats remaining.
// sql.ErrNoRows means no seat was available to take: two concurrent
// attempts at the last seat cannot both succeed.
func (r *CourseWriteRepository) DecrementSeats(ctx context.Context, courseID string) (int, error) {
	const query = `
		UPDATE courses
		SET seats = seats - 1
		WHERE course_id = $1 AND seats > 0
		RETURNING seats
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var seats int
	err := sqlx.GetContext(ctx, executor, &seats, query, courseID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{courseID},
		"result", seats,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return seats, nil
}
