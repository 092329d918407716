package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type RentReceiptRepository interface {
	Create(ctx context.Context, rr *models.RentReceipt) error

	GetByID(ctx context.Context, id int64) (*models.RentReceipt, error)
	List(ctx context.Context) ([]*models.RentReceipt, error)
	ListByTenantID(ctx context.Context, tenantID int64) ([]*models.RentReceipt, error)
	ListByUnitID(ctx context.Context, unitID int64) ([]*models.RentReceipt, error)

	Update(ctx context.Context, rr *models.RentReceipt) error
	Delete(ctx context.Context, id int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type rentReceiptRepo struct{ db DB }

func NewRentReceiptRepository(db DB) RentReceiptRepository {
	return &rentReceiptRepo{db: db}
}

/* ---------- Create ---------- */

func (r *rentReceiptRepo) Create(ctx context.Context, rr *models.RentReceipt) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO rent_receipts (
			tenant_id, unit_id, payment_date, rent_month,
			amount_paid, payment_method, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at
	`, rr.TenantID, rr.UnitID, rr.PaymentDate, rr.RentMonth,
		rr.AmountPaid, rr.PaymentMethod, rr.Notes)
	return row.Scan(&rr.ID, &rr.CreatedAt)
}

/* ---------- Reads ---------- */

func (r *rentReceiptRepo) GetByID(ctx context.Context, id int64) (*models.RentReceipt, error) {
	row := r.db.QueryRow(ctx, baseSelectReceipt()+" WHERE id=$1", id)
	return scanReceipt(row)
}

func (r *rentReceiptRepo) List(ctx context.Context) ([]*models.RentReceipt, error) {
	rows, err := r.db.Query(ctx, baseSelectReceipt()+" ORDER BY payment_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReceipts(rows)
}

func (r *rentReceiptRepo) ListByTenantID(ctx context.Context, tenantID int64) ([]*models.RentReceipt, error) {
	rows, err := r.db.Query(ctx, baseSelectReceipt()+" WHERE tenant_id=$1 ORDER BY rent_month DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReceipts(rows)
}

func (r *rentReceiptRepo) ListByUnitID(ctx context.Context, unitID int64) ([]*models.RentReceipt, error) {
	rows, err := r.db.Query(ctx, baseSelectReceipt()+" WHERE unit_id=$1 ORDER BY rent_month DESC", unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReceipts(rows)
}

/* ---------- Update / Delete ---------- */

func (r *rentReceiptRepo) Update(ctx context.Context, rr *models.RentReceipt) error {
	_, err := r.db.Exec(ctx, `
		UPDATE rent_receipts SET
		      tenant_id=$1, unit_id=$2, payment_date=$3, rent_month=$4,
		      amount_paid=$5, payment_method=$6, notes=$7
		WHERE id=$8
	`, rr.TenantID, rr.UnitID, rr.PaymentDate, rr.RentMonth,
		rr.AmountPaid, rr.PaymentMethod, rr.Notes, rr.ID)
	return err
}

func (r *rentReceiptRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rent_receipts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectReceipt() string {
	return `
		SELECT id,tenant_id,unit_id,payment_date,rent_month,
		amount_paid,payment_method,notes,created_at
		FROM rent_receipts`
}

func scanReceipt(row pgx.Row) (*models.RentReceipt, error) {
	var rr models.RentReceipt
	if err := row.Scan(
		&rr.ID, &rr.TenantID, &rr.UnitID, &rr.PaymentDate, &rr.RentMonth,
		&rr.AmountPaid, &rr.PaymentMethod, &rr.Notes, &rr.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rr, nil
}

func scanReceipts(rows pgx.Rows) ([]*models.RentReceipt, error) {
	var out []*models.RentReceipt
	for rows.Next() {
		rr, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
