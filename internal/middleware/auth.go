package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/pkg/response"
)

// TokenChecker reports whether an access token JTI has been denylisted by a
// logout.
type TokenChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth validates the bearer token and stores the request principal
// (user_id, role, jti) in the gin context.
func Auth(jwt *jwtsvc.Service, tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
			c.Abort()
			return
		}

		if tokens != nil && claims.ID != "" {
			revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil || revoked {
				response.Error(c, http.StatusUnauthorized, "Unauthenticated.")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("jti", claims.ID)

		c.Next()
	}
}
