package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/utils"
)

var testClock = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestTenancyService() (*TenancyService, *repositories.Store) {
	store := newTestStore()
	svc := NewTenancyService(store)
	svc.now = func() time.Time { return testClock }
	return svc, store
}

func seedUnit(t *testing.T, store *repositories.Store) *models.Unit {
	t.Helper()
	ctx := context.Background()

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))

	u := &models.Unit{
		BuildingID: b.ID,
		UnitNumber: "101",
		Type:       models.UnitTypeApartment,
	}
	require.NoError(t, store.Units.Create(ctx, u))
	return u
}

func moveInSomeone(t *testing.T, svc *TenancyService, unitID int64) *models.Tenant {
	t.Helper()
	tenant, err := svc.MoveIn(context.Background(), unitID, MoveInInput{
		Name:        "Amira Khalil",
		PhoneNumber: "0770-555-0101",
	}, decimal.NewFromInt(900))
	require.NoError(t, err)
	return tenant
}

func TestMoveIn(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)

	tenant := moveInSomeone(t, svc, unit.ID)
	require.NotZero(t, tenant.ID)
	require.Equal(t, "Amira Khalil", tenant.Name)
	require.Nil(t, tenant.MoveOutDate)
	require.Equal(t, testClock, tenant.MoveInDate)

	got, err := store.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentTenantID)
	require.Equal(t, tenant.ID, *got.CurrentTenantID)
	require.True(t, got.LastRentAmount.Equal(decimal.NewFromInt(900)))

	histories, err := store.Histories.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, tenant.ID, histories[0].TenantID)
	require.Equal(t, testClock, histories[0].MoveInDate)
	require.Nil(t, histories[0].MoveOutDate)
}

func TestMoveInKeepsProvidedMoveInDate(t *testing.T) {
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)

	moveIn := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	tenant, err := svc.MoveIn(context.Background(), unit.ID, MoveInInput{
		Name:        "Omar Saleh",
		PhoneNumber: "0770-555-0102",
		MoveInDate:  moveIn,
	}, decimal.NewFromInt(700))
	require.NoError(t, err)
	require.Equal(t, moveIn, tenant.MoveInDate)
}

func TestMoveInUnitNotFound(t *testing.T) {
	svc, _ := newTestTenancyService()

	_, err := svc.MoveIn(context.Background(), 999, MoveInInput{
		Name:        "Nobody",
		PhoneNumber: "0770-555-0000",
	}, decimal.Zero)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestMoveInOccupiedUnit(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	first := moveInSomeone(t, svc, unit.ID)

	_, err := svc.MoveIn(ctx, unit.ID, MoveInInput{
		Name:        "Second Tenant",
		PhoneNumber: "0770-555-0103",
	}, decimal.NewFromInt(950))

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)
	require.Equal(t, utils.ErrCodeUnitOccupied, appErr.Code)

	// First tenancy untouched.
	got, err := store.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, *got.CurrentTenantID)

	tenants, err := store.Tenants.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 1)

	histories, err := store.Histories.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
}

func TestMoveOut(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	tenant := moveInSomeone(t, svc, unit.ID)

	moveOutClock := testClock.Add(30 * 24 * time.Hour)
	svc.now = func() time.Time { return moveOutClock }

	require.NoError(t, svc.MoveOut(ctx, unit.ID))

	got, err := store.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Nil(t, got.CurrentTenantID)

	movedOut, err := store.Tenants.GetByID(ctx, tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, movedOut.MoveOutDate)
	require.Equal(t, moveOutClock, *movedOut.MoveOutDate)

	histories, err := store.Histories.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.NotNil(t, histories[0].MoveOutDate)
	require.Equal(t, moveOutClock, *histories[0].MoveOutDate)
}

func TestMoveOutVacantUnitIsNoOp(t *testing.T) {
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)

	require.NoError(t, svc.MoveOut(context.Background(), unit.ID))
}

func TestMoveOutUnitNotFound(t *testing.T) {
	svc, _ := newTestTenancyService()

	err := svc.MoveOut(context.Background(), 42)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestMoveOutThenMoveInAgain(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)

	moveInSomeone(t, svc, unit.ID)
	require.NoError(t, svc.MoveOut(ctx, unit.ID))

	second, err := svc.MoveIn(ctx, unit.ID, MoveInInput{
		Name:        "Layla Hassan",
		PhoneNumber: "0770-555-0104",
	}, decimal.NewFromInt(1000))
	require.NoError(t, err)

	histories, err := store.Histories.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, histories, 2)

	var open int
	for _, h := range histories {
		if h.MoveOutDate == nil {
			open++
			require.Equal(t, second.ID, h.TenantID)
		}
	}
	require.Equal(t, 1, open)
}

func TestRecordRentPayment(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	tenant := moveInSomeone(t, svc, unit.ID)

	receipt, err := svc.RecordRentPayment(ctx, RecordPaymentInput{
		TenantID:  tenant.ID,
		UnitID:    unit.ID,
		Amount:    decimal.NewFromInt(950),
		RentMonth: time.Date(2025, 6, 17, 13, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, receipt.ID)
	require.Equal(t, testClock, receipt.PaymentDate)
	require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), receipt.RentMonth)

	// Last known rent follows the most recent payment.
	got, err := store.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.True(t, got.LastRentAmount.Equal(decimal.NewFromInt(950)))
}

func TestRecordRentPaymentOverwritesLastRent(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	tenant := moveInSomeone(t, svc, unit.ID)

	for _, amount := range []int64{900, 925, 880} {
		_, err := svc.RecordRentPayment(ctx, RecordPaymentInput{
			TenantID:  tenant.ID,
			UnitID:    unit.ID,
			Amount:    decimal.NewFromInt(amount),
			RentMonth: testClock,
		})
		require.NoError(t, err)
	}

	got, err := store.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.True(t, got.LastRentAmount.Equal(decimal.NewFromInt(880)))

	receipts, err := store.Receipts.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
}

func TestGetVacantUnits(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))

	occupied := &models.Unit{BuildingID: b.ID, UnitNumber: "101", Type: models.UnitTypeApartment}
	vacant := &models.Unit{BuildingID: b.ID, UnitNumber: "102", Type: models.UnitTypeShop}
	require.NoError(t, store.Units.Create(ctx, occupied))
	require.NoError(t, store.Units.Create(ctx, vacant))
	moveInSomeone(t, svc, occupied.ID)

	units, err := svc.GetVacantUnits(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.Equal(t, vacant.ID, units[0].ID)
}

func TestGetCurrentTenants(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()

	b := &models.Building{Name: "Riverside", Address: "1 Quay Lane"}
	require.NoError(t, store.Buildings.Create(ctx, b))

	u1 := &models.Unit{BuildingID: b.ID, UnitNumber: "101", Type: models.UnitTypeApartment}
	u2 := &models.Unit{BuildingID: b.ID, UnitNumber: "102", Type: models.UnitTypeApartment}
	require.NoError(t, store.Units.Create(ctx, u1))
	require.NoError(t, store.Units.Create(ctx, u2))

	staying := moveInSomeone(t, svc, u1.ID)
	_, err := svc.MoveIn(ctx, u2.ID, MoveInInput{
		Name:        "Short Stay",
		PhoneNumber: "0770-555-0105",
	}, decimal.NewFromInt(600))
	require.NoError(t, err)
	require.NoError(t, svc.MoveOut(ctx, u2.ID))

	current, err := svc.GetCurrentTenants(ctx)
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, staying.ID, current[0].ID)
}

func TestGetTenantRentHistory(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	tenant := moveInSomeone(t, svc, unit.ID)

	_, err := svc.RecordRentPayment(ctx, RecordPaymentInput{
		TenantID:  tenant.ID,
		UnitID:    unit.ID,
		Amount:    decimal.NewFromInt(900),
		RentMonth: testClock,
	})
	require.NoError(t, err)

	receipts, err := svc.GetTenantRentHistory(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	require.Equal(t, tenant.ID, receipts[0].TenantID)

	none, err := svc.GetTenantRentHistory(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestRentHistoryOrderedByRentMonthDesc(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)
	tenant := moveInSomeone(t, svc, unit.ID)

	for _, month := range []time.Month{time.June, time.March, time.April} {
		_, err := svc.RecordRentPayment(ctx, RecordPaymentInput{
			TenantID:  tenant.ID,
			UnitID:    unit.ID,
			Amount:    decimal.NewFromInt(900),
			RentMonth: time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	byTenant, err := svc.GetTenantRentHistory(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, byTenant, 3)
	require.Equal(t, time.June, byTenant[0].RentMonth.Month())
	require.Equal(t, time.April, byTenant[1].RentMonth.Month())
	require.Equal(t, time.March, byTenant[2].RentMonth.Month())

	byUnit, err := svc.GetUnitRentHistory(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, byUnit, 3)
	require.Equal(t, time.June, byUnit[0].RentMonth.Month())
	require.Equal(t, time.March, byUnit[2].RentMonth.Month())
}

func TestOccupancyHistoryOrderedByMoveInDesc(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestTenancyService()
	unit := seedUnit(t, store)

	first := moveInSomeone(t, svc, unit.ID)
	require.NoError(t, svc.MoveOut(ctx, unit.ID))

	svc.now = func() time.Time { return testClock.Add(60 * 24 * time.Hour) }
	second, err := svc.MoveIn(ctx, unit.ID, MoveInInput{
		Name:        "Layla Hassan",
		PhoneNumber: "0770-555-0104",
	}, decimal.NewFromInt(1000))
	require.NoError(t, err)

	histories, err := svc.GetUnitOccupancyHistory(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, histories, 2)
	require.Equal(t, second.ID, histories[0].TenantID)
	require.Equal(t, first.ID, histories[1].TenantID)
}

func TestNormalizeRentMonth(t *testing.T) {
	in := time.Date(2024, 3, 17, 9, 12, 33, 0, time.UTC)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), NormalizeRentMonth(in))

	first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, first, NormalizeRentMonth(first))
}
