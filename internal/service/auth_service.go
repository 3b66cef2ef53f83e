package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbanmobility/taxi-backend-go/internal/repository"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit

	hashCost = 10

	tokenTTL = 24 * time.Hour
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidInput is returned when a registration field fails validation
	ErrInvalidInput = errors.New("invalid input")
)

// AuthService handles registration and login for dashboard accounts
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret []byte
	timeout   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(repo *repository.UserRepository, jwtSecret string, timeout time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		timeout:   timeout,
	}
}

// Register creates an account and returns a signed token for it
func (s *AuthService) Register(ctx context.Context, username, password string) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := validateCredentials(username, password); err != nil {
		return "", 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		return "", 0, err
	}

	token, err := s.signToken(id, username)
	if err != nil {
		return "", 0, err
	}

	return token, id, nil
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", 0, err
	}
	if user == nil {
		return "", 0, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID, user.Username)
	if err != nil {
		return "", 0, err
	}

	return token, user.ID, nil
}

// ParseToken validates a token string and returns its claims
func (s *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *AuthService) signToken(id int64, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  id,
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func validateCredentials(username, password string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLen, maxUsernameLen)
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password must be %d-%d characters", ErrInvalidInput, minPasswordLen, maxPasswordLen)
	}
	return nil
}
