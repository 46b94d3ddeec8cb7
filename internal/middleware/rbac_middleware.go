package middleware

import (
	"net/http"

	"go-salon/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so this package does not depend on the
// rbac service implementation.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id_validated")
		salonID := c.GetString("salon_id")

		if userID == "" || salonID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		req := rbac.EnforceRequest{
			UserID:   userID,
			SalonID:  salonID,
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
