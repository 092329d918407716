package repositories

import (
	"context"
)

// Store bundles the per-entity repositories over one DB handle, so services
// take a single dependency instead of five.
type Store struct {
	Buildings BuildingRepository
	Units     UnitRepository
	Tenants   TenantRepository
	Receipts  RentReceiptRepository
	Histories TenantHistoryRepository

	db DB
}

func NewStore(db DB) *Store {
	return &Store{
		Buildings: NewBuildingRepository(db),
		Units:     NewUnitRepository(db),
		Tenants:   NewTenantRepository(db),
		Receipts:  NewRentReceiptRepository(db),
		Histories: NewTenantHistoryRepository(db),
		db:        db,
	}
}

// WithTx runs fn against a transaction-scoped copy of the store, committing
// on success and rolling back on error. A store whose DB cannot begin
// transactions (fakes in tests) is passed through unchanged.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	beginner, ok := s.db.(TxBeginner)
	if !ok {
		return fn(s)
	}

	tx, err := beginner.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(NewStore(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
