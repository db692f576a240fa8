package middleware

import (
	"net/http"
	"strings"

	"github.com/developia-II/catalog-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ContextUserID = "userId"
	ContextEmail  = "email"
)

// TokenVerifier is satisfied by *utils.TokenService.
type TokenVerifier interface {
	VerifyToken(token string) (*utils.TokenClaims, error)
}

// AuthMiddleware answers 401 when no bearer token is presented and 403 when
// the presented token does not verify.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Authorization header is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse("Authorization header must be Bearer token"))
			return
		}

		claims, err := tokens.VerifyToken(strings.TrimSpace(parts[1]))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  c.FullPath(),
				"error": err,
			}).Warn("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
