package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/services"
)

// AdminMiddleware restricts a route to staff accounts.
// This middleware should be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userId")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		user, err := services.GetUser(userID.(uint))
		if err != nil || !user.IsStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Staff access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
