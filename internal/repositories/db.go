package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DB is the slice of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository works unchanged inside or outside a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
}
