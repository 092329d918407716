package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Columns each repository inserts, selects or scans. Keeping this list in
// step with the repositories guards the embedded schema against drift.
var tableColumns = map[string][]string{
	"buildings": {
		"id", "name", "address", "layout_map", "description",
		"created_at", "updated_at",
	},
	"tenants": {
		"id", "name", "phone_number", "email", "address",
		"move_in_date", "move_out_date", "row_version", "created_at", "updated_at",
	},
	"units": {
		"id", "building_id", "unit_number", "unit_type", "last_rent_amount",
		"current_tenant_id", "row_version", "created_at", "updated_at",
	},
	"rent_receipts": {
		"id", "tenant_id", "unit_id", "payment_date", "rent_month",
		"amount_paid", "payment_method", "notes", "created_at",
	},
	"tenant_histories": {
		"id", "tenant_id", "unit_id", "move_in_date", "move_out_date",
		"created_at",
	},
}

func createTableBlock(t *testing.T, sql, table string) string {
	t.Helper()
	start := strings.Index(sql, "CREATE TABLE "+table+" (")
	require.NotEqual(t, -1, start, "missing CREATE TABLE for %s", table)
	end := strings.Index(sql[start:], ");")
	require.NotEqual(t, -1, end)
	return sql[start : start+end]
}

func TestInitMigrationCoversRepositoryColumns(t *testing.T) {
	raw, err := embedMigrations.ReadFile("migrations/00001_init.sql")
	require.NoError(t, err)
	sql := string(raw)

	for table, columns := range tableColumns {
		block := createTableBlock(t, sql, table)
		for _, col := range columns {
			require.Contains(t, block, col, "table %s lacks column %s", table, col)
		}
	}
}

func TestInitMigrationConstraints(t *testing.T) {
	raw, err := embedMigrations.ReadFile("migrations/00001_init.sql")
	require.NoError(t, err)
	sql := string(raw)

	// Cascade rules.
	units := createTableBlock(t, sql, "units")
	require.Contains(t, units, "REFERENCES buildings(id) ON DELETE CASCADE")
	require.Contains(t, units, "REFERENCES tenants(id) ON DELETE SET NULL")

	receipts := createTableBlock(t, sql, "rent_receipts")
	require.Contains(t, receipts, "REFERENCES tenants(id) ON DELETE CASCADE")
	require.Contains(t, receipts, "REFERENCES units(id) ON DELETE CASCADE")

	histories := createTableBlock(t, sql, "tenant_histories")
	require.Contains(t, histories, "REFERENCES tenants(id) ON DELETE CASCADE")
	require.Contains(t, histories, "REFERENCES units(id) ON DELETE CASCADE")

	// One open occupancy per unit.
	require.Contains(t, sql, "CREATE UNIQUE INDEX tenant_histories_open_unit_idx")
	require.Contains(t, sql, "WHERE move_out_date IS NULL")
}
