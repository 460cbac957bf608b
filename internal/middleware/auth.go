package middleware

import (
	"strings"

	"pdb-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth verifies a bearer token when auth is enabled; otherwise it is a
// pass-through (the data served here is public).
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authEnabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		// Support both "Bearer <token>" and plain token
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if m.jwtManager == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if _, err := m.jwtManager.VerifyToken(tokenString); err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
