package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(50) PRIMARY KEY,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, "alice", "$2a$10$hashhashhash")
	assert.NoError(t, err)

	var user struct {
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT username, password_hash FROM users WHERE username=$1", "alice")
	assert.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$10$hashhashhash", user.PasswordHash)
}

func TestUserWriteRepository_SaveDuplicate(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, "bob", "hash1")
	assert.NoError(t, err)

	err = repo.Save(ctx, "bob", "hash2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The original hash survives the rejected insert.
	var passwordHash string
	err = db.Get(&passwordHash, "SELECT password_hash FROM users WHERE username=$1", "bob")
	assert.NoError(t, err)
	assert.Equal(t, "hash1", passwordHash)
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	writeRepo.Save(ctx, "charlie", "secret-hash")

	t.Run("Found", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "charlie")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
		assert.Equal(t, "secret-hash", user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
