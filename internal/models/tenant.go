package models

import "time"

// Tenant is a renter. MoveOutDate == nil is the authoritative definition of
// "current tenant".
type Tenant struct {
	Versioned
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phone_number"`
	Email       *string    `json:"email,omitempty"`
	Address     *string    `json:"address,omitempty"`
	MoveInDate  time.Time  `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Tenant) GetID() int64 { return t.ID }
