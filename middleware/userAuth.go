package middleware

import (
	"net/http"
	"strings"

	userRepo "bookly/database/repository/user"
	"bookly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the bearer token and checks its hash
// against the session hash stored on the user record, then exposes the
// caller as "userID" in the request context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The stored hash must match the presented token, so revoked or
		// superseded sessions fail even with a signature-valid token.
		account, err := users.GetByTokenHash(utils.HashToken(tokenString))
		if err != nil || account == nil || account.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or session revoked"})
			return
		}

		c.Set("userID", account.ID)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by JWTAuthUserMiddleware.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
