package models

import "time"

// Building owns a collection of units. Deleting a building cascades to its
// units at the store level.
type Building struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	LayoutMap   *string   `json:"layout_map,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
