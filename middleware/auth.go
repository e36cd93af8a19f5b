package middleware

import (
	"strings"

	"taprobane/config"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// AuthMiddleware verifies the bearer token, reloads the user and optionally
// restricts to the given roles. The token carries only the user id; role and
// active status come from the store on every request.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.ParseToken(tokenString, []byte(config.App.JWTSecret))
		if err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil || !user.IsActive {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == user.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c, "")
				c.Abort()
				return
			}
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
