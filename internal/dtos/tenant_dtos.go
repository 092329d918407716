package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
)

type CreateTenantRequest struct {
	Name        string    `json:"name" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Address     *string   `json:"address"`
	MoveInDate  time.Time `json:"move_in_date"`
}

type UpdateTenantRequest struct {
	Name        string     `json:"name" validate:"required"`
	PhoneNumber string     `json:"phone_number" validate:"required"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	Address     *string    `json:"address"`
	MoveInDate  time.Time  `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
}

type MoveInRequest struct {
	UnitID     int64               `json:"unit_id" validate:"required"`
	Tenant     CreateTenantRequest `json:"tenant" validate:"required"`
	RentAmount decimal.Decimal     `json:"rent_amount"`
}

/*──────────────────────────────────────────────────────────
  Tenant DTOs – the detail view nests occupied units
──────────────────────────────────────────────────────────*/

type TenantSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email,omitempty"`
}

type Tenant struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Email       *string       `json:"email,omitempty"`
	Address     *string       `json:"address,omitempty"`
	MoveInDate  time.Time     `json:"move_in_date"`
	MoveOutDate *time.Time    `json:"move_out_date"`
	Units       []UnitSummary `json:"units,omitempty"`
}

func NewTenantSummaryFromModel(t *models.Tenant) TenantSummary {
	return TenantSummary{ID: t.ID, Name: t.Name, PhoneNumber: t.PhoneNumber, Email: t.Email}
}

func NewTenantFromModel(t *models.Tenant, units []*models.Unit) Tenant {
	out := Tenant{
		ID:          t.ID,
		Name:        t.Name,
		PhoneNumber: t.PhoneNumber,
		Email:       t.Email,
		Address:     t.Address,
		MoveInDate:  t.MoveInDate,
		MoveOutDate: t.MoveOutDate,
	}
	for _, u := range units {
		out.Units = append(out.Units, NewUnitSummaryFromModel(u))
	}
	return out
}
