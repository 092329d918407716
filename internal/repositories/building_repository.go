package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/HIMK322/TENET/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BuildingRepository interface {
	Create(ctx context.Context, b *models.Building) error

	GetByID(ctx context.Context, id int64) (*models.Building, error)
	List(ctx context.Context) ([]*models.Building, error)

	Update(ctx context.Context, b *models.Building) error
	Delete(ctx context.Context, id int64) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type buildingRepo struct{ db DB }

func NewBuildingRepository(db DB) BuildingRepository {
	return &buildingRepo{db: db}
}

/* ---------- Create ---------- */

func (r *buildingRepo) Create(ctx context.Context, b *models.Building) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO buildings (name, address, layout_map, description)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at
	`, b.Name, b.Address, b.LayoutMap, b.Description)
	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

/* ---------- Reads ---------- */

func (r *buildingRepo) GetByID(ctx context.Context, id int64) (*models.Building, error) {
	row := r.db.QueryRow(ctx, baseSelectBuilding()+" WHERE id=$1", id)
	return scanBuilding(row)
}

func (r *buildingRepo) List(ctx context.Context) ([]*models.Building, error) {
	rows, err := r.db.Query(ctx, baseSelectBuilding()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

/* ---------- Update / Delete ---------- */

func (r *buildingRepo) Update(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
		UPDATE buildings SET
		      name=$1,address=$2,layout_map=$3,description=$4,updated_at=NOW()
		WHERE id=$5
	`, b.Name, b.Address, b.LayoutMap, b.Description, b.ID)
	return err
}

func (r *buildingRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buildings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectBuilding() string {
	return `
		SELECT id,name,address,layout_map,description,created_at,updated_at
		FROM buildings`
}

func scanBuilding(row pgx.Row) (*models.Building, error) {
	var b models.Building
	if err := row.Scan(
		&b.ID, &b.Name, &b.Address, &b.LayoutMap, &b.Description,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
