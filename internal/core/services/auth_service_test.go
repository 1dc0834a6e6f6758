package services_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
	"github.com/harshangowda84/Harish-sub000/test/mocks"
)

func newAuthFixture(t *testing.T) (*services.AuthService, *mocks.MockUserRepository, *mocks.MockRedisClient, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	users := mocks.NewMockUserRepository()
	tokens := mocks.NewMockRedisClient()
	return services.NewAuthService(users, key, tokens), users, tokens, key
}

func seedUser(t *testing.T, users *mocks.MockUserRepository, email, password string, role domain.Role) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := domain.User{
		ID:       "user-1",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	users.SeedUser(user)
	return user
}

func TestLogin_Success(t *testing.T) {
	svc, users, tokens, key := newAuthFixture(t)
	seedUser(t, users, "admin@buspass.local", "s3cret", domain.RoleAdmin)

	signed, err := svc.Login(context.Background(), "admin@buspass.local", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify against the signing key: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "user-1" || claims["role"] != string(domain.RoleAdmin) {
		t.Errorf("unexpected claims: %v", claims)
	}

	if !tokens.HasKey(services.TokenKey(signed)) {
		t.Errorf("login must record the token in the store")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)
	seedUser(t, users, "admin@buspass.local", "s3cret", domain.RoleAdmin)

	_, err := svc.Login(context.Background(), "admin@buspass.local", "wrong")
	if !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody@buspass.local", "s3cret")
	if !errors.Is(err, services.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogout_RemovesToken(t *testing.T) {
	svc, users, tokens, _ := newAuthFixture(t)
	seedUser(t, users, "conductor@buspass.local", "s3cret", domain.RoleConductor)

	signed, err := svc.Login(context.Background(), "conductor@buspass.local", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), signed); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if tokens.HasKey(services.TokenKey(signed)) {
		t.Errorf("logout must drop the token from the store")
	}
}
