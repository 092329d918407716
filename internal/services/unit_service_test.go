package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/utils"
)

func TestUnitCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewUnitService(store)

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))

	created, err := svc.Create(ctx, dtos.CreateUnitRequest{
		BuildingID:     b.ID,
		UnitNumber:     "101",
		Type:           models.UnitTypeApartment,
		LastRentAmount: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "101", got.UnitNumber)
	require.NotNil(t, got.Building)
	require.Equal(t, b.ID, got.Building.ID)
	require.Nil(t, got.CurrentTenant)

	updated, err := svc.Update(ctx, created.ID, dtos.UpdateUnitRequest{
		BuildingID:     b.ID,
		UnitNumber:     "101-A",
		Type:           models.UnitTypeShop,
		LastRentAmount: decimal.NewFromInt(1100),
	})
	require.NoError(t, err)
	require.Equal(t, "101-A", updated.UnitNumber)
	require.Equal(t, models.UnitTypeShop, updated.Type)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestUnitCreateRejectsNegativeRent(t *testing.T) {
	ctx := context.Background()
	svc := NewUnitService(newTestStore())

	_, err := svc.Create(ctx, dtos.CreateUnitRequest{
		BuildingID:     1,
		UnitNumber:     "101",
		Type:           models.UnitTypeApartment,
		LastRentAmount: decimal.NewFromInt(-1),
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestUnitGetByIDResolvesCurrentTenant(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewUnitService(store)
	tenancy := NewTenancyService(store)

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))
	u := &models.Unit{BuildingID: b.ID, UnitNumber: "101", Type: models.UnitTypeApartment}
	require.NoError(t, store.Units.Create(ctx, u))

	tenant, err := tenancy.MoveIn(ctx, u.ID, MoveInInput{
		Name:        "Amira Khalil",
		PhoneNumber: "0770-555-0101",
	}, decimal.NewFromInt(900))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentTenant)
	require.Equal(t, tenant.ID, got.CurrentTenant.ID)
	require.True(t, got.LastRentAmount.Equal(decimal.NewFromInt(900)))
}
