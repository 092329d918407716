package dtos

import (
	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
)

type CreateUnitRequest struct {
	BuildingID     int64           `json:"building_id" validate:"required"`
	UnitNumber     string          `json:"unit_number" validate:"required"`
	Type           models.UnitType `json:"type" validate:"required,oneof=Apartment Shop"`
	LastRentAmount decimal.Decimal `json:"last_rent_amount"`
}

type UpdateUnitRequest struct {
	BuildingID     int64           `json:"building_id" validate:"required"`
	UnitNumber     string          `json:"unit_number" validate:"required"`
	Type           models.UnitType `json:"type" validate:"required,oneof=Apartment Shop"`
	LastRentAmount decimal.Decimal `json:"last_rent_amount"`
}

/*──────────────────────────────────────────────────────────
  Unit DTOs
──────────────────────────────────────────────────────────*/

type UnitSummary struct {
	ID              int64           `json:"id"`
	UnitNumber      string          `json:"unit_number"`
	Type            models.UnitType `json:"type"`
	IsOccupied      bool            `json:"is_occupied"`
	CurrentTenantID *int64          `json:"current_tenant_id"`
	LastRentAmount  decimal.Decimal `json:"last_rent_amount"`
}

type Unit struct {
	ID              int64            `json:"id"`
	BuildingID      int64            `json:"building_id"`
	UnitNumber      string           `json:"unit_number"`
	Type            models.UnitType  `json:"type"`
	LastRentAmount  decimal.Decimal  `json:"last_rent_amount"`
	CurrentTenantID *int64           `json:"current_tenant_id"`
	Building        *BuildingSummary `json:"building,omitempty"`
	CurrentTenant   *TenantSummary   `json:"current_tenant,omitempty"`
}

func NewUnitSummaryFromModel(u *models.Unit) UnitSummary {
	return UnitSummary{
		ID:              u.ID,
		UnitNumber:      u.UnitNumber,
		Type:            u.Type,
		IsOccupied:      u.IsOccupied(),
		CurrentTenantID: u.CurrentTenantID,
		LastRentAmount:  u.LastRentAmount,
	}
}

// NewUnitFromModel composes the detail view; building and tenant are
// optional and fetched by the caller.
func NewUnitFromModel(u *models.Unit, b *models.Building, t *models.Tenant) Unit {
	out := Unit{
		ID:              u.ID,
		BuildingID:      u.BuildingID,
		UnitNumber:      u.UnitNumber,
		Type:            u.Type,
		LastRentAmount:  u.LastRentAmount,
		CurrentTenantID: u.CurrentTenantID,
	}
	if b != nil {
		s := NewBuildingSummaryFromModel(b)
		out.Building = &s
	}
	if t != nil {
		s := NewTenantSummaryFromModel(t)
		out.CurrentTenant = &s
	}
	return out
}
