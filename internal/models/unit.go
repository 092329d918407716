package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UnitType string

const (
	UnitTypeApartment UnitType = "Apartment"
	UnitTypeShop      UnitType = "Shop"
)

// ValidUnitType reports whether t is one of the known unit types.
func ValidUnitType(t UnitType) bool {
	return t == UnitTypeApartment || t == UnitTypeShop
}

// Unit represents a tenant-addressable space inside a specific building.
// CurrentTenantID == nil means the unit is vacant.
type Unit struct {
	Versioned
	ID              int64           `json:"id"`
	BuildingID      int64           `json:"building_id"`
	UnitNumber      string          `json:"unit_number"`
	Type            UnitType        `json:"type"`
	LastRentAmount  decimal.Decimal `json:"last_rent_amount"`
	CurrentTenantID *int64          `json:"current_tenant_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (u *Unit) GetID() int64 { return u.ID }

// IsOccupied reports whether the unit currently has a tenant.
func (u *Unit) IsOccupied() bool { return u.CurrentTenantID != nil }
