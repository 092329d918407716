package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/utils"
)

func TestTenantCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewTenantService(store)

	email := "amira@example.com"
	created, err := svc.Create(ctx, dtos.CreateTenantRequest{
		Name:        "Amira Khalil",
		PhoneNumber: "0770-555-0101",
		Email:       &email,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.MoveInDate.IsZero())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Amira Khalil", got.Name)
	require.Empty(t, got.Units)

	moveOut := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, created.ID, dtos.UpdateTenantRequest{
		Name:        "Amira K.",
		PhoneNumber: "0770-555-0102",
		MoveOutDate: &moveOut,
	})
	require.NoError(t, err)
	require.Equal(t, "Amira K.", updated.Name)
	require.NotNil(t, updated.MoveOutDate)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestTenantGetByIDIncludesOccupiedUnits(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewTenantService(store)
	tenancy := NewTenancyService(store)

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))
	u := &models.Unit{BuildingID: b.ID, UnitNumber: "101", Type: models.UnitTypeApartment}
	require.NoError(t, store.Units.Create(ctx, u))

	tenant, err := tenancy.MoveIn(ctx, u.ID, MoveInInput{
		Name:        "Omar Saleh",
		PhoneNumber: "0770-555-0103",
	}, decimal.NewFromInt(750))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, got.Units, 1)
	require.Equal(t, u.ID, got.Units[0].ID)
	require.True(t, got.Units[0].IsOccupied)
}

func TestTenantUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewTenantService(newTestStore())

	_, err := svc.Update(ctx, 404, dtos.UpdateTenantRequest{
		Name:        "Nobody",
		PhoneNumber: "0770-555-0000",
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}
