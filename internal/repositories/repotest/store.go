package repotest

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/repositories"
)

// NewStore returns a Store backed by in-memory repositories. Its WithTx
// falls through, so services exercise the full workflow without a DB.
func NewStore() *repositories.Store {
	return &repositories.Store{
		Buildings: &fakeBuildingRepo{buildings: map[int64]*models.Building{}},
		Units:     &fakeUnitRepo{units: map[int64]*models.Unit{}},
		Tenants:   &fakeTenantRepo{tenants: map[int64]*models.Tenant{}},
		Receipts:  &fakeRentReceiptRepo{receipts: map[int64]*models.RentReceipt{}},
		Histories: &fakeTenantHistoryRepo{histories: map[int64]*models.TenantHistory{}},
	}
}

/* ---------- buildings ---------- */

type fakeBuildingRepo struct {
	buildings map[int64]*models.Building
	nextID    int64
}

func (f *fakeBuildingRepo) Create(_ context.Context, b *models.Building) error {
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.buildings[b.ID] = b
	return nil
}

func (f *fakeBuildingRepo) GetByID(_ context.Context, id int64) (*models.Building, error) {
	return f.buildings[id], nil
}

func (f *fakeBuildingRepo) List(_ context.Context) ([]*models.Building, error) {
	out := make([]*models.Building, 0, len(f.buildings))
	for _, b := range f.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBuildingRepo) Update(_ context.Context, b *models.Building) error {
	if _, ok := f.buildings[b.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.buildings[b.ID] = b
	return nil
}

func (f *fakeBuildingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.buildings[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.buildings, id)
	return nil
}

/* ---------- units ---------- */

type fakeUnitRepo struct {
	units  map[int64]*models.Unit
	nextID int64
}

func (f *fakeUnitRepo) Create(_ context.Context, u *models.Unit) error {
	f.nextID++
	u.ID = f.nextID
	u.RowVersion = 1
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.units[u.ID] = u
	return nil
}

func (f *fakeUnitRepo) GetByID(_ context.Context, id int64) (*models.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUnitRepo) List(_ context.Context) ([]*models.Unit, error) {
	out := make([]*models.Unit, 0, len(f.units))
	for _, u := range f.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUnitRepo) ListByBuildingID(_ context.Context, buildingID int64) ([]*models.Unit, error) {
	var out []*models.Unit
	for _, u := range f.units {
		if u.BuildingID == buildingID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUnitRepo) ListVacant(_ context.Context) ([]*models.Unit, error) {
	var out []*models.Unit
	for _, u := range f.units {
		if u.CurrentTenantID == nil {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUnitRepo) Update(_ context.Context, u *models.Unit) error {
	if _, ok := f.units[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *u
	f.units[u.ID] = &cp
	return nil
}

func (f *fakeUnitRepo) UpdateIfVersion(_ context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
	cur, ok := f.units[u.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *u
	cp.RowVersion = expected + 1
	f.units[u.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeUnitRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Unit) error) error {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return pgx.ErrNoRows
	}
	if err := mutate(u); err != nil {
		return err
	}
	f.units[id] = u
	return nil
}

func (f *fakeUnitRepo) AssignTenant(_ context.Context, unitID, tenantID int64, rentAmount decimal.Decimal) error {
	u, ok := f.units[unitID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.CurrentTenantID = &tenantID
	u.LastRentAmount = rentAmount
	return nil
}

func (f *fakeUnitRepo) ClearTenant(_ context.Context, unitID int64) error {
	u, ok := f.units[unitID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.CurrentTenantID = nil
	return nil
}

func (f *fakeUnitRepo) SetLastRentAmount(_ context.Context, unitID int64, amount decimal.Decimal) error {
	u, ok := f.units[unitID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.LastRentAmount = amount
	return nil
}

func (f *fakeUnitRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.units[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.units, id)
	return nil
}

/* ---------- tenants ---------- */

type fakeTenantRepo struct {
	tenants map[int64]*models.Tenant
	nextID  int64
}

func (f *fakeTenantRepo) Create(_ context.Context, t *models.Tenant) error {
	f.nextID++
	t.ID = f.nextID
	t.RowVersion = 1
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.tenants[t.ID] = t
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id int64) (*models.Tenant, error) {
	t, ok := f.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTenantRepo) List(_ context.Context) ([]*models.Tenant, error) {
	out := make([]*models.Tenant, 0, len(f.tenants))
	for _, t := range f.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTenantRepo) ListCurrent(_ context.Context) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for _, t := range f.tenants {
		if t.MoveOutDate == nil {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTenantRepo) Update(_ context.Context, t *models.Tenant) error {
	if _, ok := f.tenants[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *t
	f.tenants[t.ID] = &cp
	return nil
}

func (f *fakeTenantRepo) UpdateIfVersion(_ context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error) {
	cur, ok := f.tenants[t.ID]
	if !ok || cur.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := *t
	cp.RowVersion = expected + 1
	f.tenants[t.ID] = &cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeTenantRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Tenant) error) error {
	t, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return pgx.ErrNoRows
	}
	if err := mutate(t); err != nil {
		return err
	}
	f.tenants[id] = t
	return nil
}

func (f *fakeTenantRepo) SetMovedOut(_ context.Context, tenantID int64, at time.Time) error {
	t, ok := f.tenants[tenantID]
	if !ok {
		return pgx.ErrNoRows
	}
	t.MoveOutDate = &at
	return nil
}

func (f *fakeTenantRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tenants[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.tenants, id)
	return nil
}

/* ---------- rent receipts ---------- */

type fakeRentReceiptRepo struct {
	receipts map[int64]*models.RentReceipt
	nextID   int64
}

func (f *fakeRentReceiptRepo) Create(_ context.Context, rr *models.RentReceipt) error {
	f.nextID++
	rr.ID = f.nextID
	rr.CreatedAt = time.Now()
	cp := *rr
	f.receipts[rr.ID] = &cp
	return nil
}

func (f *fakeRentReceiptRepo) GetByID(_ context.Context, id int64) (*models.RentReceipt, error) {
	rr, ok := f.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rr
	return &cp, nil
}

// Receipt lists mirror the SQL ordering: List by payment_date descending,
// the filtered lists by rent_month descending.
func (f *fakeRentReceiptRepo) List(_ context.Context) ([]*models.RentReceipt, error) {
	out := make([]*models.RentReceipt, 0, len(f.receipts))
	for _, rr := range f.receipts {
		out = append(out, rr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return out, nil
}

func (f *fakeRentReceiptRepo) ListByTenantID(_ context.Context, tenantID int64) ([]*models.RentReceipt, error) {
	var out []*models.RentReceipt
	for _, rr := range f.receipts {
		if rr.TenantID == tenantID {
			out = append(out, rr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RentMonth.After(out[j].RentMonth) })
	return out, nil
}

func (f *fakeRentReceiptRepo) ListByUnitID(_ context.Context, unitID int64) ([]*models.RentReceipt, error) {
	var out []*models.RentReceipt
	for _, rr := range f.receipts {
		if rr.UnitID == unitID {
			out = append(out, rr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RentMonth.After(out[j].RentMonth) })
	return out, nil
}

func (f *fakeRentReceiptRepo) Update(_ context.Context, rr *models.RentReceipt) error {
	if _, ok := f.receipts[rr.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *rr
	f.receipts[rr.ID] = &cp
	return nil
}

func (f *fakeRentReceiptRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.receipts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.receipts, id)
	return nil
}

/* ---------- tenant histories ---------- */

type fakeTenantHistoryRepo struct {
	histories map[int64]*models.TenantHistory
	nextID    int64
}

func (f *fakeTenantHistoryRepo) Create(_ context.Context, th *models.TenantHistory) error {
	f.nextID++
	th.ID = f.nextID
	th.CreatedAt = time.Now()
	cp := *th
	f.histories[th.ID] = &cp
	return nil
}

func (f *fakeTenantHistoryRepo) GetByID(_ context.Context, id int64) (*models.TenantHistory, error) {
	th, ok := f.histories[id]
	if !ok {
		return nil, nil
	}
	cp := *th
	return &cp, nil
}

// History lists mirror the SQL ordering: move_in_date descending.
func (f *fakeTenantHistoryRepo) ListByUnitID(_ context.Context, unitID int64) ([]*models.TenantHistory, error) {
	var out []*models.TenantHistory
	for _, th := range f.histories {
		if th.UnitID == unitID {
			out = append(out, th)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MoveInDate.After(out[j].MoveInDate) })
	return out, nil
}

func (f *fakeTenantHistoryRepo) ListByTenantID(_ context.Context, tenantID int64) ([]*models.TenantHistory, error) {
	var out []*models.TenantHistory
	for _, th := range f.histories {
		if th.TenantID == tenantID {
			out = append(out, th)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MoveInDate.After(out[j].MoveInDate) })
	return out, nil
}

func (f *fakeTenantHistoryRepo) CloseOpen(_ context.Context, unitID, tenantID int64, at time.Time) (int64, error) {
	var closed int64
	for _, th := range f.histories {
		if th.UnitID == unitID && th.TenantID == tenantID && th.MoveOutDate == nil {
			ts := at
			th.MoveOutDate = &ts
			closed++
		}
	}
	return closed, nil
}

func (f *fakeTenantHistoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.histories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.histories, id)
	return nil
}
