package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aura/pkg/utils"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller's user id
// on the context for controllers.
func JWTAuthMiddleware(verifier *utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := verifier.ValidateToken(tokenString)
		if err != nil {
			utils.LoggerFrom(c).Debug("rejected token", zap.Error(err))
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(utils.UserIDKey, claims.ResolvedUserID())
		c.Next()
	}
}
