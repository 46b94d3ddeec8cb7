package payslip

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayslipDocument is the persisted pointer to a generated PDF snapshot. The
// statement itself is always derived fresh; only the rendered document is
// stored, one per employee and month.
type PayslipDocument struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalonID     uuid.UUID `gorm:"type:uuid;not null;index:idx_payslip_doc,unique"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_payslip_doc,unique"`
	Month       int       `gorm:"not null;index:idx_payslip_doc,unique"`
	Year        int       `gorm:"not null;index:idx_payslip_doc,unique"`
	FileURL     string    `gorm:"column:file_url;not null"`
	GeneratedAt time.Time `gorm:"column:generated_at;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PayslipDocument) TableName() string {
	return "payslip_documents"
}

//go:generate mockgen -source=payslip_document.go -destination=mock/payslip_document_mock.go -package=mock
type DocumentRepository interface {
	WithTx(tx *sql.Tx) DocumentRepository
	Upsert(ctx context.Context, doc *PayslipDocument) error
	FindByEmployeeAndMonth(ctx context.Context, salonID, employeeID string, month, year int) (*PayslipDocument, error)
}

type documentRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) WithTx(tx *sql.Tx) DocumentRepository {
	return &documentRepository{
		db: r.db,
		tx: tx,
	}
}

// Upsert replaces the previous document for the same employee and month, so
// regenerating a payslip never leaves two rows behind.
func (r *documentRepository) Upsert(ctx context.Context, doc *PayslipDocument) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "salon_id"}, {Name: "employee_id"}, {Name: "month"}, {Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"file_url", "generated_at", "updated_at"}),
		}).
		Create(doc).Error
}

func (r *documentRepository) FindByEmployeeAndMonth(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (*PayslipDocument, error) {
	var doc PayslipDocument
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(salonID)).
		Where("employee_id = ?", employeeID).
		Where("month = ? AND year = ?", month, year).
		First(&doc).Error
	return &doc, err
}
