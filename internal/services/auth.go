package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/cantord3/info465teamproject/internal/logger"
	"github.com/cantord3/info465teamproject/internal/models"
	"github.com/cantord3/info465teamproject/internal/repositories"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles account creation and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password.
// The plaintext password is never stored or logged.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("username already taken", "username", username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		// Save can still lose the race to a concurrent insert of the
		// same username; surface that as the same taken error.
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a session token.
// A missing user and a wrong password are indistinguishable to callers.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
