package payslip

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
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("/:employeeId/statement", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetStatement)
		payslips.GET("/:employeeId/document", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.DownloadDocument)
		if rdb != nil {
			payslips.POST(
				"/:employeeId/request",
				middleware.Idempotency(rdb),
				middleware.RBACAuthorize(rbacService, "payslip", "request"),
				handler.RequestDocument,
			)
		} else {
			payslips.POST("/:employeeId/request", middleware.RBACAuthorize(rbacService, "payslip", "request"), handler.RequestDocument)
		}
	}
}
