package middleware

import (
	"net/http"
	"strings"

	"github.com/JoWinner/car-rental/internal/auth"
	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey       = "current_user"
	ContextExternalIDKey = "external_id"
)

// Authenticate validates the bearer token and resolves the user profile,
// creating it lazily on the first authenticated request. Deactivated
// accounts are rejected.
func Authenticate(secret []byte, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.EnsureProfile(claims.Subject, claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve user profile"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextExternalIDKey, claims.Subject)
		c.Next()
	}
}

// OptionalAuthenticate resolves the profile when a valid token is present
// but lets anonymous requests through. Used by the sale-inquiry form.
func OptionalAuthenticate(secret []byte, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.Next()
			return
		}

		if user, err := users.EnsureProfile(claims.Subject, claims.Email); err == nil && user.IsActive {
			c.Set(ContextUserKey, user)
			c.Set(ContextExternalIDKey, claims.Subject)
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved profile is not an admin.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the profile resolved by Authenticate, or nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *models.UserProfile {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.UserProfile)
	if !ok {
		return nil
	}
	return user
}
