package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentReceipt records one rent payment. RentMonth is always stored
// normalized to the first day of its month.
type RentReceipt struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenant_id"`
	UnitID        int64           `json:"unit_id"`
	PaymentDate   time.Time       `json:"payment_date"`
	RentMonth     time.Time       `json:"rent_month"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
