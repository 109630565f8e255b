package middleware

import (
	"net/http"
	"strings"

	"github.com/khs61254/app-caravan/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

// UserIDKey is the context key under which the authenticated user's id is
// stored for downstream handlers.
const UserIDKey = "userID"

func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing token"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token format"})
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
