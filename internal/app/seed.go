package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

// SeedDemoData inserts a demo building with a few units. It is a no-op when
// the store already holds any building.
func SeedDemoData(ctx context.Context, store *repositories.Store) error {
	existing, err := store.Buildings.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		utils.Logger.Debug("Demo seed skipped, buildings already present")
		return nil
	}

	desc := "Mixed-use demo building"
	building := &models.Building{
		Name:        "Al-Noor Plaza",
		Address:     "14 Market Street",
		Description: &desc,
	}
	if err := store.Buildings.Create(ctx, building); err != nil {
		return err
	}

	units := []*models.Unit{
		{BuildingID: building.ID, UnitNumber: "101", Type: models.UnitTypeApartment, LastRentAmount: decimal.NewFromInt(750)},
		{BuildingID: building.ID, UnitNumber: "102", Type: models.UnitTypeApartment, LastRentAmount: decimal.NewFromInt(800)},
		{BuildingID: building.ID, UnitNumber: "G-1", Type: models.UnitTypeShop, LastRentAmount: decimal.NewFromInt(1200)},
	}
	for _, u := range units {
		if err := store.Units.Create(ctx, u); err != nil {
			return err
		}
	}

	utils.Logger.Infof("Seeded demo building %d with %d units", building.ID, len(units))
	return nil
}
