package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cantord3/info465teamproject/internal/logger"
)

// PrerequisiteReadRepository handles prerequisite edge reads.
// Edges are seeded at startup and never mutated at runtime.
type PrerequisiteReadRepository struct {
	db *sqlx.DB
}

func NewPrerequisiteReadRepository(db *sqlx.DB) *PrerequisiteReadRepository {
	return &PrerequisiteReadRepository{db: db}
}

// ListByCourseID returns the course ids required before registering
// for the given course. An empty result means no prerequisites.
func (r *PrerequisiteReadRepository) ListByCourseID(ctx context.Context, courseID string) ([]string, error) {
	const query = `
		SELECT prereq_id
		FROM prerequisites
		WHERE course_id = $1
	`

	var prereqIDs []string
	err := r.db.SelectContext(ctx, &prereqIDs, query, courseID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{courseID},
		"result", prereqIDs,
		"error", err,
	)

	return prereqIDs, err
}
