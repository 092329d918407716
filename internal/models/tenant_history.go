package models

import "time"

// TenantHistory is one discrete occupancy interval of a tenant in a unit.
// MoveOutDate == nil marks the open occupancy record; the store allows at
// most one open record per unit.
type TenantHistory struct {
	ID          int64      `json:"id"`
	TenantID    int64      `json:"tenant_id"`
	UnitID      int64      `json:"unit_id"`
	MoveInDate  time.Time  `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
	CreatedAt   time.Time  `json:"created_at"`
}
