package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmobility/taxi-backend-go/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", 5*time.Second)
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthService(t)

	token, id, err := svc.Register(context.Background(), "dispatcher", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, id)

	loginToken, loginID, err := svc.Login(context.Background(), "dispatcher", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, id, loginID)

	claims, err := svc.ParseToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher", claims["username"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "dispatcher", "s3cret-pass")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "dispatcher", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "dispatcher", "s3cret-pass")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "dispatcher", "other-pass")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "ab", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.Register(context.Background(), "dispatcher", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	svc := newAuthService(t)
	other := newAuthService(t)

	token, _, err := svc.Register(context.Background(), "dispatcher", "s3cret-pass")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
