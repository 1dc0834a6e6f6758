package services

import (
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService mints RS256 tokens for the four panel roles and records
// them in Redis so logout can invalidate a token before it expires.
type AuthService struct {
	users      ports.UserRepository
	privateKey *rsa.PrivateKey
	tokens     ports.TokenStore
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserRepository,
	privateKey *rsa.PrivateKey,
	tokens ports.TokenStore,
) *AuthService {
	return &AuthService{users: users, privateKey: privateKey, tokens: tokens}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", err
	}

	if err := s.tokens.Set(ctx, TokenKey(signed), user.ID, tokenTTL).Err(); err != nil {
		return "", err
	}
	return signed, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Del(ctx, TokenKey(token)).Err()
}

// TokenKey derives the Redis key for an issued token. The raw token never
// lands in Redis, only its hash.
func TokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "auth:token:" + hex.EncodeToString(sum[:])
}
