package expense

import (
	"go-salon/internal/middleware"
	"go-salon/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.POST("", middleware.RBACAuthorize(rbacService, "expense", "create"), handler.Create)
		expenses.DELETE("/:id", middleware.RBACAuthorize(rbacService, "expense", "delete"), handler.Delete)
	}
}
