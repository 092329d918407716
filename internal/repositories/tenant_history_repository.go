package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TenantHistoryRepository interface {
	Create(ctx context.Context, th *models.TenantHistory) error

	GetByID(ctx context.Context, id int64) (*models.TenantHistory, error)
	ListByUnitID(ctx context.Context, unitID int64) ([]*models.TenantHistory, error)
	ListByTenantID(ctx context.Context, tenantID int64) ([]*models.TenantHistory, error)

	// CloseOpen stamps move_out_date on every open occupancy record for the
	// (tenant, unit) pair and returns how many rows were closed.
	CloseOpen(ctx context.Context, unitID, tenantID int64, at time.Time) (int64, error)

	Delete(ctx context.Context, id int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantHistoryRepo struct{ db DB }

func NewTenantHistoryRepository(db DB) TenantHistoryRepository {
	return &tenantHistoryRepo{db: db}
}

/* ---------- Create ---------- */

func (r *tenantHistoryRepo) Create(ctx context.Context, th *models.TenantHistory) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tenant_histories (tenant_id, unit_id, move_in_date, move_out_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, th.TenantID, th.UnitID, th.MoveInDate, th.MoveOutDate)
	return row.Scan(&th.ID, &th.CreatedAt)
}

/* ---------- Reads ---------- */

func (r *tenantHistoryRepo) GetByID(ctx context.Context, id int64) (*models.TenantHistory, error) {
	row := r.db.QueryRow(ctx, baseSelectHistory()+" WHERE id=$1", id)
	return scanHistory(row)
}

func (r *tenantHistoryRepo) ListByUnitID(ctx context.Context, unitID int64) ([]*models.TenantHistory, error) {
	rows, err := r.db.Query(ctx, baseSelectHistory()+" WHERE unit_id=$1 ORDER BY move_in_date DESC", unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistories(rows)
}

func (r *tenantHistoryRepo) ListByTenantID(ctx context.Context, tenantID int64) ([]*models.TenantHistory, error) {
	rows, err := r.db.Query(ctx, baseSelectHistory()+" WHERE tenant_id=$1 ORDER BY move_in_date DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistories(rows)
}

/* ---------- Close / Delete ---------- */

func (r *tenantHistoryRepo) CloseOpen(ctx context.Context, unitID, tenantID int64, at time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenant_histories SET move_out_date=$1
		WHERE unit_id=$2 AND tenant_id=$3 AND move_out_date IS NULL
	`, at, unitID, tenantID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *tenantHistoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenant_histories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectHistory() string {
	return `
		SELECT id,tenant_id,unit_id,move_in_date,move_out_date,created_at
		FROM tenant_histories`
}

func scanHistory(row pgx.Row) (*models.TenantHistory, error) {
	var th models.TenantHistory
	if err := row.Scan(
		&th.ID, &th.TenantID, &th.UnitID, &th.MoveInDate, &th.MoveOutDate, &th.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &th, nil
}

func scanHistories(rows pgx.Rows) ([]*models.TenantHistory, error) {
	var out []*models.TenantHistory
	for rows.Next() {
		th, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, th)
	}
	return out, rows.Err()
}
