package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/models"
)

/* ───────────── public interface ───────────── */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id int64) (*models.Tenant, error)
	List(ctx context.Context) ([]*models.Tenant, error)
	ListCurrent(ctx context.Context) ([]*models.Tenant, error)

	Update(ctx context.Context, t *models.Tenant) error
	UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Tenant) error) error
	SetMovedOut(ctx context.Context, tenantID int64, at time.Time) error

	Delete(ctx context.Context, id int64) error
}

/* ───────────── implementation ───────────── */

type tenantRepo struct {
	*BaseVersionedRepo[*models.Tenant]
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	r := &tenantRepo{db: db}
	selectStmt := baseSelectTenant() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanTenant)
	return r
}

/* ---------- create ---------- */

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tenants (
			name, phone_number, email, address, move_in_date, move_out_date, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,1)
		RETURNING id, row_version, created_at, updated_at
	`, t.Name, t.PhoneNumber, t.Email, t.Address, t.MoveInDate, t.MoveOutDate)
	return row.Scan(&t.ID, &t.RowVersion, &t.CreatedAt, &t.UpdatedAt)
}

/* ---------- reads ---------- */

func (r *tenantRepo) GetByID(ctx context.Context, id int64) (*models.Tenant, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id)
}

func (r *tenantRepo) List(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) ListCurrent(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" WHERE move_out_date IS NULL ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

/* ---------- update / delete ---------- */

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.update(ctx, t, false, 0)
	return err
}

func (r *tenantRepo) UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, t, true, expected)
}

func (r *tenantRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Tenant) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id, mutate, r.UpdateIfVersion)
}

func (r *tenantRepo) update(ctx context.Context, t *models.Tenant, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE tenants
		SET name=$1, phone_number=$2, email=$3, address=$4,
		    move_in_date=$5, move_out_date=$6, updated_at=NOW()
	`
	args := []any{t.Name, t.PhoneNumber, t.Email, t.Address, t.MoveInDate, t.MoveOutDate}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$7 AND row_version=$8`
		args = append(args, t.ID, expected)
	} else {
		sql += ` WHERE id=$7`
		args = append(args, t.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *tenantRepo) SetMovedOut(ctx context.Context, tenantID int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenants SET move_out_date=$1, updated_at=NOW() WHERE id=$2
	`, at, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectTenant() string {
	return `
		SELECT id,name,phone_number,email,address,move_in_date,move_out_date,
		created_at, updated_at, row_version
		FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(
		&t.ID, &t.Name, &t.PhoneNumber, &t.Email, &t.Address,
		&t.MoveInDate, &t.MoveOutDate,
		&t.CreatedAt, &t.UpdatedAt, &t.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
