package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/HIMK322/TENET/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error

	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context) ([]*models.Unit, error)
	ListByBuildingID(ctx context.Context, buildingID int64) ([]*models.Unit, error)
	ListVacant(ctx context.Context) ([]*models.Unit, error)

	Update(ctx context.Context, u *models.Unit) error
	UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Unit) error) error

	AssignTenant(ctx context.Context, unitID, tenantID int64, rentAmount decimal.Decimal) error
	ClearTenant(ctx context.Context, unitID int64) error
	SetLastRentAmount(ctx context.Context, unitID int64, amount decimal.Decimal) error

	Delete(ctx context.Context, id int64) error
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	*BaseVersionedRepo[*models.Unit]
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	r := &unitRepo{db: db}
	selectStmt := baseSelectUnit() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanUnit)
	return r
}

/* ---------- create ---------- */

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO units (
			building_id, unit_number, unit_type, last_rent_amount,
			current_tenant_id, row_version
		) VALUES ($1,$2,$3,$4,$5,1)
		RETURNING id, row_version, created_at, updated_at
	`, u.BuildingID, u.UnitNumber, u.Type, u.LastRentAmount, u.CurrentTenantID)
	return row.Scan(&u.ID, &u.RowVersion, &u.CreatedAt, &u.UpdatedAt)
}

/* ---------- reads ---------- */

func (r *unitRepo) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id)
}

func (r *unitRepo) List(ctx context.Context) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" ORDER BY building_id, unit_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) ListByBuildingID(ctx context.Context, buildingID int64) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE building_id=$1 ORDER BY unit_number", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) ListVacant(ctx context.Context) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE current_tenant_id IS NULL ORDER BY building_id, unit_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

/* ---------- update / delete ---------- */

func (r *unitRepo) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.update(ctx, u, false, 0)
	return err
}

func (r *unitRepo) UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, u, true, expected)
}

func (r *unitRepo) UpdateWithRetry(ctx context.Context, id int64, mutate func(*models.Unit) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id, mutate, r.UpdateIfVersion)
}

func (r *unitRepo) update(ctx context.Context, u *models.Unit, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE units
		SET building_id=$1, unit_number=$2, unit_type=$3,
		    last_rent_amount=$4, current_tenant_id=$5, updated_at=NOW()
	`
	args := []any{u.BuildingID, u.UnitNumber, u.Type, u.LastRentAmount, u.CurrentTenantID}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$6 AND row_version=$7`
		args = append(args, u.ID, expected)
	} else {
		sql += ` WHERE id=$6`
		args = append(args, u.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *unitRepo) AssignTenant(ctx context.Context, unitID, tenantID int64, rentAmount decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE units
		SET current_tenant_id=$1, last_rent_amount=$2, updated_at=NOW()
		WHERE id=$3
	`, tenantID, rentAmount, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *unitRepo) ClearTenant(ctx context.Context, unitID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE units SET current_tenant_id=NULL, updated_at=NOW() WHERE id=$1
	`, unitID)
	return err
}

func (r *unitRepo) SetLastRentAmount(ctx context.Context, unitID int64, amount decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE units SET last_rent_amount=$1, updated_at=NOW() WHERE id=$2
	`, amount, unitID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *unitRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM units WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectUnit() string {
	return `
		SELECT id,building_id,unit_number,unit_type,last_rent_amount,
		current_tenant_id, created_at, updated_at, row_version
		FROM units`
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(
		&u.ID, &u.BuildingID, &u.UnitNumber, &u.Type, &u.LastRentAmount,
		&u.CurrentTenantID, &u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func scanUnits(rows pgx.Rows) ([]*models.Unit, error) {
	var out []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
