package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/session"
)

// Gin context keys populated by Authenticate.
const (
	sessionKey  = "session"
	usernameKey = "username"
	isAdminKey  = "isAdmin"
)

// Authenticate resolves the Authorization bearer token against the session
// manager and, when valid, stores the live session and identity in the Gin
// context. Requests without a token pass through anonymous; RequireAuth and
// RequireAdmin enforce presence further down the chain.
func Authenticate(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		sess, err := mgr.Lookup(token)
		if err != nil {
			code := "invalid_token"
			if errors.Is(err, session.ErrSessionNotFound) {
				code = "session_expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       code,
				"message":    "authentication failed",
			})
			return
		}

		c.Set(sessionKey, sess)
		c.Set(usernameKey, sess.User.Username)
		c.Set(isAdminKey, sess.User.IsAdmin)
		c.Next()
	}
}

// RequireAuth rejects requests that did not present a valid session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(sessionKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "unauthorized",
				"message":    "authentication required",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests from non-administrators.
// Chain it after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(isAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "forbidden",
				"message":    "administrator access required",
			})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the live session attached by Authenticate, or nil.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
