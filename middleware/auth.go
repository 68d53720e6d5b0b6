// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutorhive/utils"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// jwtAuth validates the bearer token, checks the role claim and compares the
// token against the account's cached hash so revoked tokens stop working
// before their JWT expiry. On success the account ID is set in the context
// under contextKey.
func jwtAuth(role, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		subject, tokenRole, err := utils.ExtractClaims(tokenString)
		if err != nil || subject == "" {
			abortUnauthorized(c)
			return
		}
		if tokenRole != role {
			abortUnauthorized(c)
			return
		}

		ok, err := utils.CheckAuthToken(subject, tokenString)
		if err != nil || !ok {
			abortUnauthorized(c)
			return
		}

		c.Set(contextKey, subject)
		c.Next()
	}
}

// JWTAuthUserMiddleware protects student endpoints; sets "userID" in context.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return jwtAuth("user", "userID")
}

// JWTAuthTutorMiddleware protects tutor endpoints; sets "tutorID" in context.
func JWTAuthTutorMiddleware() gin.HandlerFunc {
	return jwtAuth("tutor", "tutorID")
}

// JWTAuthAdminMiddleware protects admin endpoints; sets "adminID" in context.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return jwtAuth("admin", "adminID")
}
