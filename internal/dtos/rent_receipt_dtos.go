package dtos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
)

// CreateRentReceiptRequest back-fills a receipt directly, outside the
// workflow.
type CreateRentReceiptRequest struct {
	TenantID      int64           `json:"tenant_id" validate:"required"`
	UnitID        int64           `json:"unit_id" validate:"required"`
	PaymentDate   time.Time       `json:"payment_date"`
	RentMonth     time.Time       `json:"rent_month" validate:"required"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
}

type UpdateRentReceiptRequest = CreateRentReceiptRequest

type RecordPaymentRequest struct {
	TenantID      int64           `json:"tenant_id" validate:"required"`
	UnitID        int64           `json:"unit_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	RentMonth     time.Time       `json:"rent_month" validate:"required"`
	PaymentMethod *string         `json:"payment_method"`
	Notes         *string         `json:"notes"`
}

/*──────────────────────────────────────────────────────────
  RentReceipt / TenantHistory DTOs
──────────────────────────────────────────────────────────*/

type RentReceipt struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenant_id"`
	UnitID        int64           `json:"unit_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	RentMonth     time.Time       `json:"rent_month"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

type TenantHistory struct {
	ID          int64      `json:"id"`
	TenantID    int64      `json:"tenant_id"`
	UnitID      int64      `json:"unit_id"`
	MoveInDate  time.Time  `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
}

func NewRentReceiptFromModel(rr *models.RentReceipt) RentReceipt {
	return RentReceipt{
		ID:            rr.ID,
		TenantID:      rr.TenantID,
		UnitID:        rr.UnitID,
		PaymentDate:   rr.PaymentDate,
		RentMonth:     rr.RentMonth,
		AmountPaid:    rr.AmountPaid,
		PaymentMethod: rr.PaymentMethod,
		Notes:         rr.Notes,
	}
}

func NewRentReceiptListFromModels(list []*models.RentReceipt) []RentReceipt {
	out := make([]RentReceipt, 0, len(list))
	for _, rr := range list {
		out = append(out, NewRentReceiptFromModel(rr))
	}
	return out
}

func NewTenantHistoryFromModel(th *models.TenantHistory) TenantHistory {
	return TenantHistory{
		ID:          th.ID,
		TenantID:    th.TenantID,
		UnitID:      th.UnitID,
		MoveInDate:  th.MoveInDate,
		MoveOutDate: th.MoveOutDate,
	}
}

func NewTenantHistoryListFromModels(list []*models.TenantHistory) []TenantHistory {
	out := make([]TenantHistory, 0, len(list))
	for _, th := range list {
		out = append(out, NewTenantHistoryFromModel(th))
	}
	return out
}
