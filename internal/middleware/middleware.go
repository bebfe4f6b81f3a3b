package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the admin token set by the login endpoint.
	SessionCookie = "admin_session"

	adminRole = "admin"
	issuer    = "portfolio"
)

var ErrMissingSecret = errors.New("JWT secret is not configured")

// Authenticator issues and checks admin session tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl}, nil
}

func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}

// IssueToken signs an admin token valid for the configured TTL.
func (a *Authenticator) IssueToken(username string, now time.Time) (string, time.Time, error) {
	expires := now.Add(a.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": adminRole,
		"iss":  issuer,
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign token: %w", err)
	}
	return signed, expires, nil
}

// IsAuthenticated reports whether r carries a valid admin token, either in
// the session cookie or as a Bearer Authorization header.
func (a *Authenticator) IsAuthenticated(r *http.Request) bool {
	tokenString := bearerToken(r)
	if tokenString == "" {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			tokenString = cookie.Value
		}
	}
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == adminRole
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAdmin stops the request with 401 unless it is authenticated.
// Nothing downstream runs, so no database write can happen.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.IsAuthenticated(c.Request) {
			Unauthorized(c)
			return
		}
		c.Next()
	}
}

// Unauthorized writes the standard 401 payload and aborts the chain.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status": "error",
		"error":  "Unauthorized",
	})
}
