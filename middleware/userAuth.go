package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dojovcp/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const userIDKey = "userID"

// JWTAuthMiddleware authenticates requests with a Bearer token. Token hashes
// are cached in redis on first validation so repeated requests skip the
// signature check.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}

		ctx := context.Background()
		cache := utils.GetAuthCacheClient()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if userID, err := cache.Get(ctx, cacheKey).Result(); err == nil && userID != "" {
			c.Set(userIDKey, userID)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			// Cache down: fall through to full validation.
			utils.GetLogger().Warn("auth cache unavailable")
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}

		cache.Set(ctx, cacheKey, userID, time.Hour)
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuthMiddleware.
func UserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	s, _ := id.(string)
	return s
}
