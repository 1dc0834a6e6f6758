package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harshangowda84/Harish-sub000/internal/adapters/middleware"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
	"github.com/harshangowda84/Harish-sub000/test/mocks"
)

func generateTestKeys(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func createTestToken(t *testing.T, key *rsa.PrivateKey, userID, role string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(expiresIn).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireRole(t *testing.T) {
	key := generateTestKeys(t)
	otherKey := generateTestKeys(t)

	tests := []struct {
		name       string
		header     func(tokens *mocks.MockRedisClient) string
		roles      []string
		wantStatus int
	}{
		{
			name: "valid_admin_token",
			header: func(tokens *mocks.MockRedisClient) string {
				tok := createTestToken(t, key, "u1", "ADMIN", time.Hour)
				tokens.SetKey(services.TokenKey(tok), "u1", time.Hour)
				return "Bearer " + tok
			},
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusOK,
		},
		{
			name: "role_in_allowed_set",
			header: func(tokens *mocks.MockRedisClient) string {
				tok := createTestToken(t, key, "u1", "CONDUCTOR", time.Hour)
				tokens.SetKey(services.TokenKey(tok), "u1", time.Hour)
				return "Bearer " + tok
			},
			roles:      []string{"ADMIN", "CONDUCTOR"},
			wantStatus: http.StatusOK,
		},
		{
			name: "role_not_allowed",
			header: func(tokens *mocks.MockRedisClient) string {
				tok := createTestToken(t, key, "u1", "PASSENGER", time.Hour)
				tokens.SetKey(services.TokenKey(tok), "u1", time.Hour)
				return "Bearer " + tok
			},
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing_header",
			header:     func(tokens *mocks.MockRedisClient) string { return "" },
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_header",
			header:     func(tokens *mocks.MockRedisClient) string { return "Token abc" },
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired_token",
			header: func(tokens *mocks.MockRedisClient) string {
				tok := createTestToken(t, key, "u1", "ADMIN", -time.Hour)
				tokens.SetKey(services.TokenKey(tok), "u1", time.Hour)
				return "Bearer " + tok
			},
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong_signing_key",
			header: func(tokens *mocks.MockRedisClient) string {
				tok := createTestToken(t, otherKey, "u1", "ADMIN", time.Hour)
				tokens.SetKey(services.TokenKey(tok), "u1", time.Hour)
				return "Bearer " + tok
			},
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "revoked_token",
			header: func(tokens *mocks.MockRedisClient) string {
				// Signed and unexpired but no longer in the store: logged out.
				return "Bearer " + createTestToken(t, key, "u1", "ADMIN", time.Hour)
			},
			roles:      []string{"ADMIN"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mocks.NewMockRedisClient()
			mw := middleware.NewAuthMiddleware(&key.PublicKey, tokens)

			var gotUserID, gotRole any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = r.Context().Value(middleware.UserIDKey)
				gotRole = r.Context().Value(middleware.RoleKey)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/passes", nil)
			if h := tt.header(tokens); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()

			mw.RequireRole(tt.roles, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if gotUserID != "u1" {
					t.Errorf("user id not in context: %v", gotUserID)
				}
				if gotRole == nil || gotRole == "" {
					t.Errorf("role not in context")
				}
			}
		})
	}
}

func TestRequireRole_TokenStoreUnavailable(t *testing.T) {
	key := generateTestKeys(t)
	tokens := mocks.NewMockRedisClient()
	tokens.ExistsError = http.ErrHandlerTimeout
	mw := middleware.NewAuthMiddleware(&key.PublicKey, tokens)

	tok := createTestToken(t, key, "u1", "ADMIN", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/passes", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()

	mw.RequireRole([]string{"ADMIN"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler must not run when the token store is down")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
