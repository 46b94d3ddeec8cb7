package shift

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
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.GetAll)
		shifts.GET("/open", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.GetOpen)
		shifts.GET("/:id/close-preview", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.PreviewClose)
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shift", "open"), handler.Open)
		if rdb != nil {
			shifts.POST(
				"/:id/close",
				middleware.Idempotency(rdb),
				middleware.RBACAuthorize(rbacService, "shift", "close"),
				handler.Close,
			)
		} else {
			shifts.POST("/:id/close", middleware.RBACAuthorize(rbacService, "shift", "close"), handler.Close)
		}
	}
}
