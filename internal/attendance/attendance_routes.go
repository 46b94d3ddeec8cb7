package attendance

import (
	"go-salon/internal/middleware"
	"go-salon/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("", middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Create)
		attendances.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetByEmployeeMonth)
		attendances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "delete"), handler.Delete)
	}
}
