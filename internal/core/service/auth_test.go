package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

func TestAuthService_LoginAndValidate(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)

	repo := new(MockQuerier)
	repo.On("GetAdminByUsername", mock.Anything, "admin").
		Return(postgres.Admin{ID: 7, Username: "admin", PasswordHash: hash}, nil)

	svc := NewAuthService(repo, "test-signing-key")

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	adminID, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), adminID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)

	repo := new(MockQuerier)
	repo.On("GetAdminByUsername", mock.Anything, "admin").
		Return(postgres.Admin{ID: 7, Username: "admin", PasswordHash: hash}, nil)

	svc := NewAuthService(repo, "test-signing-key")

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := new(MockQuerier)
	repo.On("GetAdminByUsername", mock.Anything, "ghost").
		Return(postgres.Admin{}, domain.ErrNotFound)

	svc := NewAuthService(repo, "test-signing-key")

	_, err := svc.Login(context.Background(), "ghost", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_WrongKey(t *testing.T) {
	repo := new(MockQuerier)
	hash, _ := HashPassword("s3cret")
	repo.On("GetAdminByUsername", mock.Anything, "admin").
		Return(postgres.Admin{ID: 7, Username: "admin", PasswordHash: hash}, nil)

	issuer := NewAuthService(repo, "key-one")
	verifier := NewAuthService(repo, "key-two")

	token, err := issuer.Login(context.Background(), "admin", "s3cret")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
