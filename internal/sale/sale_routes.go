package sale

import (
	"go-salon/internal/middleware"
	"go-salon/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.POST("", middleware.RBACAuthorize(rbacService, "sale", "create"), handler.Create)
		sales.DELETE("/:id", middleware.RBACAuthorize(rbacService, "sale", "delete"), handler.Delete)
	}
}
