package dtos

import (
	"github.com/HIMK322/TENET/internal/models"
)

type CreateBuildingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	LayoutMap   *string `json:"layout_map"`
	Description *string `json:"description"`
}

type UpdateBuildingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	LayoutMap   *string `json:"layout_map"`
	Description *string `json:"description"`
}

/*──────────────────────────────────────────────────────────
  Building DTOs – the detail view nests its units
──────────────────────────────────────────────────────────*/

type BuildingSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Building struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	LayoutMap   *string       `json:"layout_map,omitempty"`
	Description *string       `json:"description,omitempty"`
	Units       []UnitSummary `json:"units,omitempty"`
}

func NewBuildingSummaryFromModel(b *models.Building) BuildingSummary {
	return BuildingSummary{ID: b.ID, Name: b.Name, Address: b.Address}
}

func NewBuildingFromModel(b *models.Building, units []*models.Unit) Building {
	out := Building{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		LayoutMap:   b.LayoutMap,
		Description: b.Description,
	}
	for _, u := range units {
		out.Units = append(out.Units, NewUnitSummaryFromModel(u))
	}
	return out
}
