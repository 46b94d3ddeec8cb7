package bonus

import (
	"go-salon/internal/middleware"
	"go-salon/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	bonuses := r.Group("/bonuses")
	bonuses.Use(middleware.AuthMiddleware())
	{
		bonuses.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "bonus", "read"), handler.GetByEmployeeMonth)
		if rdb != nil {
			bonuses.POST(
				"",
				middleware.Idempotency(rdb),
				middleware.RBACAuthorize(rbacService, "bonus", "create"),
				handler.Create,
			)
		} else {
			bonuses.POST("", middleware.RBACAuthorize(rbacService, "bonus", "create"), handler.Create)
		}
		bonuses.DELETE("/:id", middleware.RBACAuthorize(rbacService, "bonus", "delete"), handler.Delete)
	}
}
