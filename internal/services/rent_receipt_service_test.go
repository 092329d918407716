package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HIMK322/TENET/internal/dtos"
	"github.com/HIMK322/TENET/internal/utils"
)

func TestRentReceiptCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	svc := NewRentReceiptService(store)

	created, err := svc.Create(ctx, dtos.CreateRentReceiptRequest{
		TenantID:   1,
		UnitID:     1,
		RentMonth:  time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC),
		AmountPaid: decimal.NewFromInt(850),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), created.RentMonth)
	require.False(t, created.PaymentDate.IsZero())

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.AmountPaid.Equal(decimal.NewFromInt(850)))

	method := "cash"
	updated, err := svc.Update(ctx, created.ID, dtos.UpdateRentReceiptRequest{
		TenantID:      1,
		UnitID:        1,
		RentMonth:     time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC),
		AmountPaid:    decimal.NewFromInt(900),
		PaymentMethod: &method,
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), updated.RentMonth)
	require.NotNil(t, updated.PaymentMethod)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestRentReceiptRejectsNegativeAmount(t *testing.T) {
	ctx := context.Background()
	svc := NewRentReceiptService(newTestStore())

	_, err := svc.Create(ctx, dtos.CreateRentReceiptRequest{
		TenantID:   1,
		UnitID:     1,
		RentMonth:  time.Now(),
		AmountPaid: decimal.NewFromInt(-50),
	})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}
