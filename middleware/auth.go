package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"studiobook/utils"
)

// TokenVerifier verifies a Firebase ID token. *auth.Client satisfies this.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// cachedIdentity is the value stored in the auth cache, keyed by the
// SHA-256 hash of the ID token.
type cachedIdentity struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// FirebaseAuthMiddleware verifies the Bearer ID token and sets "userID" and
// "userName" in the request context. Verified tokens are cached by hash in
// Redis so repeat requests with the same token skip the verification round
// trip; a missing cache degrades to verification, never to rejection.
func FirebaseAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required. Please sign in.",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required. Please sign in.",
			})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				var identity cachedIdentity
				if json.Unmarshal([]byte(cached), &identity) == nil && identity.UID != "" {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", identity.UID)
					c.Set("userName", identity.Name)
					c.Next()
					return
				}
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to token verification.", err)
			}
		}

		decoded, err := verifier.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required. Please sign in.",
			})
			return
		}

		identity := cachedIdentity{UID: decoded.UID, Name: displayNameFromClaims(decoded.Claims)}
		if cacheEnabled {
			if data, err := json.Marshal(identity); err == nil {
				_ = authCache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
			}
		}

		c.Set("userID", identity.UID)
		c.Set("userName", identity.Name)
		c.Next()
	}
}

// displayNameFromClaims picks the best available human-readable name from
// the decoded token.
func displayNameFromClaims(claims map[string]interface{}) string {
	if name, ok := claims["name"].(string); ok && name != "" {
		return name
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	return "Anonymous"
}
