package middleware

import (
	"context"
	"crypto/rsa"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
	"github.com/harshangowda84/Harish-sub000/internal/core/services"
)

type AuthMiddleware struct {
	publicKey *rsa.PublicKey
	tokens    ports.TokenStore
}

func NewAuthMiddleware(publicKey *rsa.PublicKey, tokens ports.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{publicKey: publicKey, tokens: tokens}
}

type contextKey string

const (
	UserIDKey contextKey = "userID"
	RoleKey   contextKey = "role"
)

// RequireRole validates the bearer token, checks it is still live in the
// token store (logout invalidates), enforces the allowed role set, and
// stashes the acting principal in the request context.
func (m *AuthMiddleware) RequireRole(roles []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "invalid authorization header", http.StatusUnauthorized)
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.publicKey, nil
		})
		if err != nil || !token.Valid {
			log.Printf("auth: token rejected: %v", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "invalid token claims", http.StatusUnauthorized)
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			http.Error(w, "invalid token: missing user ID", http.StatusUnauthorized)
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok || userRole == "" {
			http.Error(w, "invalid token: missing role", http.StatusUnauthorized)
			return
		}

		if m.tokens != nil {
			n, err := m.tokens.Exists(r.Context(), services.TokenKey(tokenString)).Result()
			if err != nil {
				log.Printf("auth: token store check failed: %v", err)
				http.Error(w, "authorization unavailable", http.StatusServiceUnavailable)
				return
			}
			if n == 0 {
				http.Error(w, "token revoked", http.StatusUnauthorized)
				return
			}
		}

		allowed := false
		for _, role := range roles {
			if userRole == role {
				allowed = true
				break
			}
		}
		if !allowed {
			log.Printf("auth: role %s not in %v", userRole, roles)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, RoleKey, userRole)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
