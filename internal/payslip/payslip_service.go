package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-salon/internal/attendance"
	"go-salon/internal/bonus"
	"go-salon/internal/employee"
	"go-salon/internal/events"
	"go-salon/internal/messaging/kafka"
	paysliperrors "go-salon/internal/payslip/errors"
	"go-salon/internal/sale"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Per-entity read sources. The concrete repositories satisfy these; the
// engine never learns about the wider repository surface.
type EmployeeSource interface {
	FindByIDAndSalon(ctx context.Context, salonID, id string) (*employee.Employee, error)
}

type AttendanceSource interface {
	FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]attendance.Attendance, error)
}

type SaleSource interface {
	FindBySpecialistAndMonth(ctx context.Context, salonID, specialistID string, month, year int) ([]sale.Sale, error)
}

type BonusSource interface {
	FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) ([]bonus.Bonus, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GetStatement(ctx context.Context, salonID, employeeID string, month, year int) (StatementResponse, error)
	RequestDocument(ctx context.Context, salonID, actorID, employeeID string, month, year int) error
	GenerateDocument(ctx context.Context, salonID, employeeID string, month, year int) (DocumentResponse, error)
	GetDocument(ctx context.Context, salonID, employeeID string, month, year int) (DocumentResponse, error)
}

type service struct {
	db         *sql.DB
	employees  EmployeeSource
	attendance AttendanceSource
	sales      SaleSource
	bonuses    BonusSource
	remote     RemoteSource
	docs       DocumentRepository
	outbox     kafka.OutboxRepository
	storageDir string
	logger     *zap.Logger

	sf singleflight.Group

	// fetchGen tracks the newest remote fetch per employee, so a slow
	// response for a previously selected month never overlays figures for
	// the month selected after it.
	mu       sync.Mutex
	fetchGen map[string]uint64
}

type Deps struct {
	DB         *sql.DB
	Employees  EmployeeSource
	Attendance AttendanceSource
	Sales      SaleSource
	Bonuses    BonusSource
	Remote     RemoteSource
	Documents  DocumentRepository
	Outbox     kafka.OutboxRepository
	StorageDir string
}

func NewService(deps Deps) Service {
	return &service{
		db:         deps.DB,
		employees:  deps.Employees,
		attendance: deps.Attendance,
		sales:      deps.Sales,
		bonuses:    deps.Bonuses,
		remote:     deps.Remote,
		docs:       deps.Documents,
		outbox:     deps.Outbox,
		storageDir: deps.StorageDir,
		logger:     zap.L().Named("payslip.service"),
		fetchGen:   make(map[string]uint64),
	}
}

func (s *service) GetStatement(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (StatementResponse, error) {
	if err := validatePeriod(employeeID, month, year); err != nil {
		return StatementResponse{}, err
	}

	// Statements are never cached: a bonus granted or an attendance record
	// corrected a second ago must show up on the very next read. Singleflight
	// only collapses identical renders that are in flight at the same moment.
	key := statementKey(salonID, employeeID, month, year)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.buildStatementResponse(ctx, salonID, employeeID, month, year)
	})
	if err != nil {
		return StatementResponse{}, err
	}

	return result.(StatementResponse), nil
}

func (s *service) buildStatementResponse(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (StatementResponse, error) {
	emp, err := s.employees.FindByIDAndSalon(ctx, salonID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, paysliperrors.ErrEmployeeNotFound
		}
		return StatementResponse{}, err
	}

	records, err := s.attendance.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return StatementResponse{}, err
	}
	summary := attendance.Summarize(records, emp.ShiftHours)

	var salesTotal float64
	if emp.CommissionRate > 0 {
		sales, err := s.sales.FindBySpecialistAndMonth(ctx, salonID, employeeID, month, year)
		if err != nil {
			return StatementResponse{}, err
		}
		salesTotal = sale.AttributedTotal(sales, employeeID)
	}

	earnings := ComputeEarnings(*emp, summary, salesTotal)
	deductions := ComputeDeductions(*emp, summary, records)

	local := Statement{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,

		BaseSalary:       earnings.BaseSalary,
		SalaryNote:       earnings.SalaryNote,
		Commission:       earnings.Commission,
		TotalSalesAmount: salesTotal,
		OvertimeHours:    summary.OvertimeHours,
		OvertimePay:      earnings.OvertimePay,
		TotalEarnings:    earnings.TotalEarnings,

		LateDeduction:   deductions.LateDeduction,
		AbsentDeduction: deductions.AbsentDeduction,
		CustomDeduction: deductions.CustomDeduction,
		Advances:        deductions.Advances,
		AdvanceDetails:  deductions.AdvanceDetails,
		TotalDeductions: deductions.TotalDeductions,

		PresentDays:      summary.PresentDays,
		LateDays:         summary.LateDays,
		AbsentDays:       summary.AbsentDays,
		LeaveDays:        summary.LeaveDays,
		TotalWorkHours:   summary.TotalWorkHours,
		TotalLateMinutes: summary.TotalLateMinutes,
	}

	remote := s.fetchRemote(ctx, salonID, employeeID, month, year)
	st := Reconcile(local, remote)

	bonuses, err := s.bonuses.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return StatementResponse{}, err
	}
	st = ApplyBonuses(st, bonus.MonthlyTotal(bonuses))

	return mapToStatementResponse(st, emp.FullName), nil
}

// fetchRemote asks the central endpoint for the authoritative figures. Any
// failure degrades to the local computation; a result that arrives after a
// newer fetch for the same employee started is discarded.
func (s *service) fetchRemote(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) *RemoteStatement {
	if s.remote == nil {
		return nil
	}

	gen := s.nextFetchGen(employeeID)

	remote, err := s.remote.FetchStatement(ctx, salonID, employeeID, month, year)
	if err != nil {
		s.logger.Warn("remote payslip fetch failed, using local figures",
			zap.String("employee_id", employeeID),
			zap.Int("month", month),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil
	}

	if !s.isCurrentFetchGen(employeeID, gen) {
		return nil
	}

	return remote
}

func (s *service) nextFetchGen(employeeID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchGen[employeeID]++
	return s.fetchGen[employeeID]
}

func (s *service) isCurrentFetchGen(employeeID string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchGen[employeeID] == gen
}

func (s *service) RequestDocument(
	ctx context.Context,
	salonID, actorID, employeeID string,
	month, year int,
) error {
	if err := validatePeriod(employeeID, month, year); err != nil {
		return err
	}

	if _, err := s.employees.FindByIDAndSalon(ctx, salonID, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paysliperrors.ErrEmployeeNotFound
		}
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	event := events.PayslipRequestedEvent{
		EventType:   "payslip.requested",
		SalonID:     salonID,
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		RequestedBy: actorID,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		SalonID:       salonID,
		AggregateType: "payslip",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.PayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GenerateDocument(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (DocumentResponse, error) {
	resp, err := s.buildStatementResponse(ctx, salonID, employeeID, month, year)
	if err != nil {
		return DocumentResponse{}, err
	}

	pdf, err := buildPayslipPDF(statementLines(resp))
	if err != nil {
		return DocumentResponse{}, err
	}

	fileName := fmt.Sprintf("payslip_%s_%d_%02d.pdf", employeeID, year, month)
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return DocumentResponse{}, err
	}
	if err := os.WriteFile(filepath.Join(s.storageDir, fileName), pdf, 0o644); err != nil {
		return DocumentResponse{}, err
	}

	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return DocumentResponse{}, paysliperrors.ErrInvalidEmployeeID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return DocumentResponse{}, paysliperrors.ErrInvalidEmployeeID
	}

	doc := &PayslipDocument{
		ID:          uuid.New(),
		SalonID:     salonUUID,
		EmployeeID:  employeeUUID,
		Month:       month,
		Year:        year,
		FileURL:     "/files/payslips/" + fileName,
		GeneratedAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	if err := s.docs.WithTx(tx).Upsert(ctx, doc); err != nil {
		return DocumentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DocumentResponse{}, err
	}

	return mapToDocumentResponse(*doc), nil
}

func (s *service) GetDocument(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (DocumentResponse, error) {
	if err := validatePeriod(employeeID, month, year); err != nil {
		return DocumentResponse{}, err
	}

	doc, err := s.docs.FindByEmployeeAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentResponse{}, paysliperrors.ErrDocumentNotFound
		}
		return DocumentResponse{}, err
	}

	return mapToDocumentResponse(*doc), nil
}

func validatePeriod(employeeID string, month, year int) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return paysliperrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 {
		return paysliperrors.ErrInvalidMonth
	}
	if year < 2000 || year > 2100 {
		return paysliperrors.ErrInvalidYear
	}
	return nil
}

func statementKey(salonID, employeeID string, month, year int) string {
	return fmt.Sprintf("payslip:statement:%s:%s:%d-%02d", salonID, employeeID, year, month)
}
