package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gdk/monitoring/internal/monitoring/model"
)

// Context keys populated by RequireAuth for downstream handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// TokenVerifier validates a raw bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (subject, role string, err error)
}

// RequireAuth gates a route group behind a valid bearer token. The role
// claim is stored in the context but not enforced: any valid token
// suffices for every endpoint.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if header == "" || !strings.HasPrefix(header, prefix) {
			abortUnauthorized(c)
			return
		}

		subject, role, err := tokens.Verify(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(CtxUsername, subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		model.NewError(model.ErrorCodeUnauthorized, "missing or invalid bearer token"))
}
