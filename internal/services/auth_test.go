package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/cantord3/info465teamproject/internal/models"
	"github.com/cantord3/info465teamproject/internal/repositories"
	"github.com/cantord3/info465teamproject/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "alice",
			password:     "pass123",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{Username: "bob"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:      "lost insert race",
			username:  "carol",
			password:  "pass123",
			writerErr: repositories.ErrUsernameTaken,
			wantErr:   services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "dave",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	const password = "plaintext-secret"
	var savedHash string

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) error {
			savedHash = hash
			return nil
		})

	err := svc.Register(context.Background(), "alice", password)
	assert.NoError(t, err)

	// The stored value is a verifiable bcrypt hash, never the plaintext
	assert.NotEqual(t, password, savedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte(password)))
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			username:  "alice",
			user:      &models.UserDB{Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			username:  "bob",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			username:  "carol",
			user:      &models.UserDB{Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			username:  "eve",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "token generation error",
			username:  "dan",
			user:      &models.UserDB{Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.username).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}
