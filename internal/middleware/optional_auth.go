package middleware

import (
	"github.com/SscSPs/forex_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
)

// OptionalAuth attaches the caller identity on public routes when a valid bearer
// token is present. Requests without a token, or with a bad one, continue anonymously.
func OptionalAuth(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret, issuer)
		if err != nil || claims.Subject == "" {
			GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid token on public route")
			c.Next()
			return
		}

		withIdentity(c, claims.Subject, claims.Role)
		c.Next()
	}
}
