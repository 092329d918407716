package services

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

// MoveInInput carries the new tenant's details for a move-in.
type MoveInInput struct {
	Name        string
	PhoneNumber string
	Email       *string
	Address     *string
	MoveInDate  time.Time
}

// RecordPaymentInput carries one rent payment to be recorded.
type RecordPaymentInput struct {
	TenantID      int64
	UnitID        int64
	Amount        decimal.Decimal
	RentMonth     time.Time
	PaymentMethod *string
	Notes         *string
}

// TenancyService implements the tenancy lifecycle workflow: move-in,
// move-out and rent recording, plus the read-side helpers the dashboard
// uses. Every mutating operation runs in a single transaction with one
// wall-clock value captured per call.
type TenancyService struct {
	store *repositories.Store
	now   func() time.Time
}

func NewTenancyService(store *repositories.Store) *TenancyService {
	return &TenancyService{store: store, now: time.Now}
}

/* ---------- workflow ---------- */

// MoveIn creates the tenant, assigns it to the unit, and opens an occupancy
// record. The unit must exist and be vacant.
func (s *TenancyService) MoveIn(ctx context.Context, unitID int64, in MoveInInput, rentAmount decimal.Decimal) (*models.Tenant, error) {
	now := s.now()

	moveInDate := in.MoveInDate
	if moveInDate.IsZero() {
		moveInDate = now
	}

	var tenant *models.Tenant
	err := s.store.WithTx(ctx, func(tx *repositories.Store) error {
		unit, err := tx.Units.GetByID(ctx, unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Unit not found"}
		}
		if unit.IsOccupied() {
			return &utils.AppError{StatusCode: http.StatusConflict, Code: utils.ErrCodeUnitOccupied, Message: "Unit already has a current tenant", Err: utils.ErrUnitOccupied}
		}

		tenant = &models.Tenant{
			Name:        in.Name,
			PhoneNumber: in.PhoneNumber,
			Email:       in.Email,
			Address:     in.Address,
			MoveInDate:  moveInDate,
		}
		if err := tx.Tenants.Create(ctx, tenant); err != nil {
			return utils.WrapPgError(err, "Failed to create tenant")
		}

		if err := tx.Units.AssignTenant(ctx, unitID, tenant.ID, rentAmount); err != nil {
			return err
		}

		history := &models.TenantHistory{
			TenantID:   tenant.ID,
			UnitID:     unitID,
			MoveInDate: now,
		}
		return utils.WrapPgError(tx.Histories.Create(ctx, history), "Failed to create occupancy record")
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("Tenant %d moved into unit %d", tenant.ID, unitID)
	return tenant, nil
}

// MoveOut ends the unit's current tenancy. A vacant unit is a no-op.
func (s *TenancyService) MoveOut(ctx context.Context, unitID int64) error {
	now := s.now()

	return s.store.WithTx(ctx, func(tx *repositories.Store) error {
		unit, err := tx.Units.GetByID(ctx, unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Unit not found"}
		}
		if unit.CurrentTenantID == nil {
			return nil
		}
		tenantID := *unit.CurrentTenantID

		if err := tx.Tenants.SetMovedOut(ctx, tenantID, now); err != nil {
			return err
		}

		// Zero closed rows means the history was already inconsistent;
		// tolerated, the unit is still released below.
		closed, err := tx.Histories.CloseOpen(ctx, unitID, tenantID, now)
		if err != nil {
			return err
		}
		if closed == 0 {
			utils.Logger.Warnf("No open occupancy record for tenant %d in unit %d", tenantID, unitID)
		}

		if err := tx.Units.ClearTenant(ctx, unitID); err != nil {
			return err
		}

		utils.Logger.Infof("Tenant %d moved out of unit %d", tenantID, unitID)
		return nil
	})
}

// RecordRentPayment appends a receipt and updates the unit's last known
// rent. The rent month is normalized to the first day of its month.
func (s *TenancyService) RecordRentPayment(ctx context.Context, in RecordPaymentInput) (*models.RentReceipt, error) {
	now := s.now()

	receipt := &models.RentReceipt{
		TenantID:      in.TenantID,
		UnitID:        in.UnitID,
		PaymentDate:   now,
		RentMonth:     NormalizeRentMonth(in.RentMonth),
		AmountPaid:    in.Amount,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
	}

	err := s.store.WithTx(ctx, func(tx *repositories.Store) error {
		if err := tx.Receipts.Create(ctx, receipt); err != nil {
			return utils.WrapPgError(err, "Tenant or unit does not exist")
		}
		return tx.Units.SetLastRentAmount(ctx, in.UnitID, in.Amount)
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.Infof("Recorded rent payment of %s for tenant %d, unit %d", in.Amount, in.TenantID, in.UnitID)
	return receipt, nil
}

/* ---------- query facade ---------- */

func (s *TenancyService) GetVacantUnits(ctx context.Context) ([]*models.Unit, error) {
	return s.store.Units.ListVacant(ctx)
}

func (s *TenancyService) GetCurrentTenants(ctx context.Context) ([]*models.Tenant, error) {
	return s.store.Tenants.ListCurrent(ctx)
}

func (s *TenancyService) GetTenantRentHistory(ctx context.Context, tenantID int64) ([]*models.RentReceipt, error) {
	return s.store.Receipts.ListByTenantID(ctx, tenantID)
}

func (s *TenancyService) GetUnitRentHistory(ctx context.Context, unitID int64) ([]*models.RentReceipt, error) {
	return s.store.Receipts.ListByUnitID(ctx, unitID)
}

func (s *TenancyService) GetUnitOccupancyHistory(ctx context.Context, unitID int64) ([]*models.TenantHistory, error) {
	return s.store.Histories.ListByUnitID(ctx, unitID)
}

/* ---------- helpers ---------- */

// NormalizeRentMonth truncates a date to the first day of its month.
func NormalizeRentMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
