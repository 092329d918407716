package services

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

type UnitService struct {
	store *repositories.Store
}

func NewUnitService(store *repositories.Store) *UnitService {
	return &UnitService{store: store}
}

func (s *UnitService) Create(ctx context.Context, req dtos.CreateUnitRequest) (*dtos.Unit, error) {
	if req.LastRentAmount.IsNegative() {
		return nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Rent amount must not be negative"}
	}
	u := &models.Unit{
		BuildingID:     req.BuildingID,
		UnitNumber:     req.UnitNumber,
		Type:           req.Type,
		LastRentAmount: req.LastRentAmount,
	}
	if err := s.store.Units.Create(ctx, u); err != nil {
		return nil, utils.WrapPgError(err, "Building does not exist")
	}
	dto := dtos.NewUnitFromModel(u, nil, nil)
	return &dto, nil
}

func (s *UnitService) List(ctx context.Context) ([]dtos.UnitSummary, error) {
	units, err := s.store.Units.List(ctx)
	if err != nil {
		return nil, err
	}
	return summarizeUnits(units), nil
}

// GetByID returns the unit with its building and current tenant resolved
// through explicit lookups.
func (s *UnitService) GetByID(ctx context.Context, id int64) (*dtos.Unit, error) {
	u, err := s.store.Units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Unit not found"}
	}

	building, err := s.store.Buildings.GetByID(ctx, u.BuildingID)
	if err != nil {
		return nil, err
	}
	var tenant *models.Tenant
	if u.CurrentTenantID != nil {
		tenant, err = s.store.Tenants.GetByID(ctx, *u.CurrentTenantID)
		if err != nil {
			return nil, err
		}
	}

	dto := dtos.NewUnitFromModel(u, building, tenant)
	return &dto, nil
}

func (s *UnitService) Update(ctx context.Context, id int64, req dtos.UpdateUnitRequest) (*dtos.Unit, error) {
	if req.LastRentAmount.IsNegative() {
		return nil, &utils.AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Rent amount must not be negative"}
	}

	var updated *models.Unit
	err := s.store.Units.UpdateWithRetry(ctx, id, func(u *models.Unit) error {
		u.BuildingID = req.BuildingID
		u.UnitNumber = req.UnitNumber
		u.Type = req.Type
		u.LastRentAmount = req.LastRentAmount
		updated = u
		return nil
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Unit not found"}
		}
		return nil, utils.WrapPgError(err, "Building does not exist")
	}
	dto := dtos.NewUnitFromModel(updated, nil, nil)
	return &dto, nil
}

func (s *UnitService) Delete(ctx context.Context, id int64) error {
	err := s.store.Units.Delete(ctx, id)
	if err == pgx.ErrNoRows {
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Unit not found"}
	}
	return err
}

func summarizeUnits(units []*models.Unit) []dtos.UnitSummary {
	out := make([]dtos.UnitSummary, 0, len(units))
	for _, u := range units {
		out = append(out, dtos.NewUnitSummaryFromModel(u))
	}
	return out
}
