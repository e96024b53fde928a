package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"merobazar-backend/models"
	"merobazar-backend/repository"
	"merobazar-backend/token"
)

// currentUserKey is the gin context key the authenticated user is stored
// under.
const currentUserKey = "currentUser"

// Authenticate verifies the bearer token and attaches the referenced user
// to the request. A missing or malformed header is 401, a token that
// fails verification 403, a subject that no longer exists 404.
func Authenticate(maker *token.Maker, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token not found or invalid format"})
			return
		}

		payload, err := maker.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(payload.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "invalid token"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "no user with that token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated user's role is not in
// the allow-list. Must run after Authenticate.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "you don't have permission"})
	}
}

// CurrentUser returns the user Authenticate attached to the request, or
// nil on an unauthenticated route.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
