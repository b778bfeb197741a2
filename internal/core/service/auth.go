package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates admin console users and issues bearer
// tokens for the admin API.
type AuthService struct {
	repo      postgres.Querier
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(repo postgres.Querier, jwtSecret string) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(admin.ID)
}

func (s *AuthService) generateToken(adminID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(adminID, 10),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the admin ID carried by a valid token.
func (s *AuthService) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	idStr, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// HashPassword is used by the seed tooling to store admin credentials.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
