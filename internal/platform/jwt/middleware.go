package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"skillroots/internal/feature/auth/domain/entity"
)

// Keys set on the gin.Context by AuthRequired.
const (
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
	ContextSessionID = "sessionID"
)

// SessionFinder looks up a live session by ID.
type SessionFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Session, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to requests whose session is still alive.
func AuthRequired(secret string, sessions SessionFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 2. Parse and verify JWT signature (only HMAC allowed)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		email, _ := claims["sub"].(string)
		sid, _ := claims["sid"].(string)
		if email == "" || sid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. The session must still exist; logout revokes the token
		session, err := sessions.FindByID(c.Request.Context(), sid)
		if err != nil || session.IsExpired() || session.UserEmail != email {
			if err != nil {
				slog.Debug("session lookup failed", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(ContextUserEmail, session.UserEmail)
		c.Set(ContextUserName, session.UserName)
		c.Set(ContextSessionID, session.ID)
		c.Next()
	}
}

// UserEmail returns the authenticated user's email, or "" outside AuthRequired.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

// UserName returns the authenticated user's display name.
func UserName(c *gin.Context) string {
	return c.GetString(ContextUserName)
}

// SessionID returns the current session ID.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
