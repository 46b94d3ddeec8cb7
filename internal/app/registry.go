package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"go-salon/internal/attendance"
	"go-salon/internal/bonus"
	"go-salon/internal/employee"
	"go-salon/internal/expense"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/payslip"
	"go-salon/internal/rbac"
	"go-salon/internal/rbac/infra"
	"go-salon/internal/sale"
	"go-salon/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// employeeNameLookup adapts the employee repository to the narrow lookup the
// sale service snapshots names through.
type employeeNameLookup struct {
	repo employee.Repository
}

func (l employeeNameLookup) LookupName(ctx context.Context, salonID, employeeID string) (string, error) {
	emp, err := l.repo.FindByIDAndSalon(ctx, salonID, employeeID)
	if err != nil {
		return "", err
	}
	return emp.FullName, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	saleRepo := sale.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	payslipDocRepo := payslip.NewDocumentRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Remote payroll endpoint (optional) ---
	var remote payslip.RemoteSource
	if baseURL := os.Getenv("PAYROLL_REMOTE_URL"); baseURL != "" {
		remote = payslip.NewHTTPRemoteSource(baseURL, 5*time.Second)
	}

	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = filepath.Join("storage", "payslips")
	}

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	bonusService := bonus.NewService(db, bonusRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	expenseService := expense.NewService(db, expenseRepo)
	saleService := sale.NewService(db, saleRepo, employeeNameLookup{repo: employeeRepo})
	shiftService := shift.NewService(db, shiftRepo, saleRepo, expenseRepo, outboxRepo)
	payslipService := payslip.NewService(payslip.Deps{
		DB:         db,
		Employees:  employeeRepo,
		Attendance: attendanceRepo,
		Sales:      saleRepo,
		Bonuses:    bonusRepo,
		Remote:     remote,
		Documents:  payslipDocRepo,
		Outbox:     outboxRepo,
		StorageDir: storageDir,
	})

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	bonusHandler := bonus.NewHandler(bonusService)
	employeeHandler := employee.NewHandler(employeeService)
	expenseHandler := expense.NewHandler(expenseService)
	saleHandler := sale.NewHandler(saleService)
	shiftHandler := shift.NewHandler(shiftService)
	payslipHandler := payslip.NewHandler(payslipService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		bonus.RegisterRoutes(api, bonusHandler, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		expense.RegisterRoutes(api, expenseHandler, rbacService)
		sale.RegisterRoutes(api, saleHandler, rbacService)
		shift.RegisterRoutes(api, shiftHandler, rbacService, rdb)
		payslip.RegisterRoutes(api, payslipHandler, rbacService, rdb)
	}

	router.Static("/files/payslips", storageDir)

	return nil
}
