package migrations

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/cantord3/info465teamproject/internal/logger"
)

// Migrator creates the schema and seeds the starter catalog.
type Migrator struct {
	db *sqlx.DB
}

func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(50) PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS courses (
		course_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		seats INTEGER NOT NULL CHECK (seats >= 0),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS registrations (
		username VARCHAR(50) NOT NULL REFERENCES users(username),
		course_id VARCHAR(20) NOT NULL REFERENCES courses(course_id),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (username, course_id)
	);`,
	`CREATE TABLE IF NOT EXISTS prerequisites (
		course_id VARCHAR(20) NOT NULL REFERENCES courses(course_id),
		prereq_id VARCHAR(20) NOT NULL REFERENCES courses(course_id),
		PRIMARY KEY (course_id, prereq_id)
	);`,
}

// starterCourses is the fixed catalog inserted on first startup.
var starterCourses = []struct {
	CourseID string
	Name     string
	Seats    int
}{
	{"CS101", "Intro to Computer Science", 30},
	{"CS201", "Data Structures", 25},
	{"MATH201", "Calculus I", 25},
	{"ENG150", "English Literature", 20},
	{"IS310", "Information Systems Fundamentals", 40},
	{"HIST210", "World History", 35},
}

// starterPrerequisites holds the seeded prerequisite edges.
var starterPrerequisites = []struct {
	CourseID string
	PrereqID string
}{
	{"CS201", "CS101"},
}

// Up creates the tables and seeds the starter catalog when the courses
// table is empty. Seeding never touches a non-empty catalog, so
// operator-modified data survives restarts.
func (m *Migrator) Up(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("failed to apply schema statement", "error", err)
			return err
		}
	}

	var count int
	if err := m.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM courses`); err != nil {
		logger.Log.Errorw("failed to count courses", "error", err)
		return err
	}
	if count > 0 {
		logger.Log.Infow("catalog already seeded", "courses", count)
		return nil
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, course := range starterCourses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO courses (course_id, name, seats, active) VALUES ($1, $2, $3, TRUE)`,
			course.CourseID, course.Name, course.Seats,
		)
		if err != nil {
			logger.Log.Errorw("failed to seed course", "course_id", course.CourseID, "error", err)
			return err
		}
	}

	for _, edge := range starterPrerequisites {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO prerequisites (course_id, prereq_id) VALUES ($1, $2)`,
			edge.CourseID, edge.PrereqID,
		)
		if err != nil {
			logger.Log.Errorw("failed to seed prerequisite", "course_id", edge.CourseID, "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Log.Infow("catalog seeded", "courses", len(starterCourses), "prerequisites", len(starterPrerequisites))
	return nil
}
