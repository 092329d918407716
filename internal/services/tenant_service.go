package services

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

type TenantService struct {
	store *repositories.Store
}

func NewTenantService(store *repositories.Store) *TenantService {
	return &TenantService{store: store}
}

// Create inserts a tenant directly, outside the move-in workflow.
func (s *TenantService) Create(ctx context.Context, req dtos.CreateTenantRequest) (*dtos.Tenant, error) {
	moveIn := req.MoveInDate
	if moveIn.IsZero() {
		moveIn = time.Now()
	}
	t := &models.Tenant{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		MoveInDate:  moveIn,
	}
	if err := s.store.Tenants.Create(ctx, t); err != nil {
		return nil, &utils.AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: "Failed to create tenant", Err: err}
	}
	dto := dtos.NewTenantFromModel(t, nil)
	return &dto, nil
}

func (s *TenantService) List(ctx context.Context) ([]dtos.Tenant, error) {
	tenants, err := s.store.Tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.Tenant, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, dtos.NewTenantFromModel(t, nil))
	}
	return out, nil
}

// GetByID returns the tenant with the units it currently occupies.
func (s *TenantService) GetByID(ctx context.Context, id int64) (*dtos.Tenant, error) {
	t, err := s.store.Tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Tenant not found"}
	}

	units, err := s.occupiedUnits(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := dtos.NewTenantFromModel(t, units)
	return &dto, nil
}

func (s *TenantService) Update(ctx context.Context, id int64, req dtos.UpdateTenantRequest) (*dtos.Tenant, error) {
	var updated *models.Tenant
	err := s.store.Tenants.UpdateWithRetry(ctx, id, func(t *models.Tenant) error {
		t.Name = req.Name
		t.PhoneNumber = req.PhoneNumber
		t.Email = req.Email
		t.Address = req.Address
		if !req.MoveInDate.IsZero() {
			t.MoveInDate = req.MoveInDate
		}
		t.MoveOutDate = req.MoveOutDate
		updated = t
		return nil
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Tenant not found"}
		}
		return nil, err
	}
	dto := dtos.NewTenantFromModel(updated, nil)
	return &dto, nil
}

// Delete removes the tenant. Receipts and histories cascade; any unit still
// pointing at the tenant is released by the store's SET NULL rule.
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	err := s.store.Tenants.Delete(ctx, id)
	if err == pgx.ErrNoRows {
		return &utils.AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Tenant not found"}
	}
	return err
}

func (s *TenantService) occupiedUnits(ctx context.Context, tenantID int64) ([]*models.Unit, error) {
	all, err := s.store.Units.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*models.Unit
	for _, u := range all {
		if u.CurrentTenantID != nil && *u.CurrentTenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}
