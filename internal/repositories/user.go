package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
)

// ErrUsernameTaken is returned when an insert hits the users primary key.
var ErrUsernameTaken = errors.New("username already taken")

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user record, or nil if no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A primary key conflict is reported as
// ErrUsernameTaken rather than a raw driver error.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
	`
	args := []any{username, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrUsernameTaken
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
