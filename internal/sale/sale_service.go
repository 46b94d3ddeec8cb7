package sale

import (
	"context"
	"database/sql"
	"time"

	saleerrors "go-salon/internal/sale/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale_service.go -destination=mock/sale_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, salonID string, req CreateSaleRequest) (SaleResponse, error)
	GetAttributedTotal(ctx context.Context, salonID, employeeID string, month, year int) (float64, error)
	Delete(ctx context.Context, salonID, id string) error
}

// EmployeeNameLookup resolves the display-name snapshot stored on each sale.
type EmployeeNameLookup interface {
	LookupName(ctx context.Context, salonID, employeeID string) (string, error)
}

type service struct {
	db    *sql.DB
	repo  Repository
	names EmployeeNameLookup
}

func NewService(db *sql.DB, repo Repository, names EmployeeNameLookup) Service {
	return &service{db: db, repo: repo, names: names}
}

func (s *service) Create(
	ctx context.Context,
	salonID string,
	req CreateSaleRequest,
) (SaleResponse, error) {
	salonUUID, err := uuid.Parse(salonID)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidSpecialistID
	}

	saleDate, err := time.Parse(time.RFC3339, req.SaleDate)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidDateFormat
	}

	row := &Sale{
		ID:            uuid.New(),
		SalonID:       salonUUID,
		SaleDate:      saleDate,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}

	if req.ShiftID != nil {
		shiftUUID, err := uuid.Parse(*req.ShiftID)
		if err != nil {
			return SaleResponse{}, saleerrors.ErrInvalidSpecialistID
		}
		row.ShiftID = &shiftUUID
	}

	if req.SpecialistID != nil {
		specialistUUID, err := uuid.Parse(*req.SpecialistID)
		if err != nil {
			return SaleResponse{}, saleerrors.ErrInvalidSpecialistID
		}
		row.SpecialistID = &specialistUUID

		if s.names != nil {
			name, err := s.names.LookupName(ctx, salonID, *req.SpecialistID)
			if err != nil {
				return SaleResponse{}, err
			}
			row.SpecialistName = name
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaleResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return SaleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SaleResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAttributedTotal(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (float64, error) {
	sales, err := s.repo.FindBySpecialistAndMonth(ctx, salonID, employeeID, month, year)
	if err != nil {
		return 0, err
	}
	return AttributedTotal(sales, employeeID), nil
}

func (s *service) Delete(ctx context.Context, salonID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, salonID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(row Sale) SaleResponse {
	resp := SaleResponse{
		ID:             row.ID.String(),
		SalonID:        row.SalonID.String(),
		SpecialistName: row.SpecialistName,
		SaleDate:       row.SaleDate.Format(time.RFC3339),
		Subtotal:       row.Subtotal,
		Discount:       row.Discount,
		Amount:         row.Amount,
		PaymentMethod:  row.PaymentMethod,
		Description:    row.Description,
	}
	if row.ShiftID != nil {
		v := row.ShiftID.String()
		resp.ShiftID = &v
	}
	if row.SpecialistID != nil {
		v := row.SpecialistID.String()
		resp.SpecialistID = &v
	}
	return resp
}
