package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/HIMK322/TENET/internal/models"
	"github.com/HIMK322/TENET/internal/utils"
)

func TestWithRetrySucceedsAfterStaleRead(t *testing.T) {
	ctx := context.Background()
	version := int64(1)

	getByID := func(_ context.Context, id int64) (*models.Unit, error) {
		u := &models.Unit{ID: id, UnitNumber: "101"}
		u.SetRowVersion(version)
		return u, nil
	}

	attempts := 0
	updateIfVersion := func(_ context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
		attempts++
		if attempts == 1 {
			// Concurrent writer got there first.
			version = 2
			return pgconn.CommandTag("UPDATE 0"), nil
		}
		return pgconn.CommandTag("UPDATE 1"), nil
	}

	mutated := 0
	err := WithRetry(ctx, 3, 7, getByID, updateIfVersion, func(u *models.Unit) error {
		mutated++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, attempts)
	require.Equal(t, 2, mutated)
}

func TestWithRetryReportsVersionConflictWhenExhausted(t *testing.T) {
	ctx := context.Background()

	getByID := func(_ context.Context, id int64) (*models.Unit, error) {
		u := &models.Unit{ID: id, UnitNumber: "101"}
		u.SetRowVersion(1)
		return u, nil
	}
	alwaysStale := func(_ context.Context, _ *models.Unit, _ int64) (pgconn.CommandTag, error) {
		return pgconn.CommandTag("UPDATE 0"), nil
	}

	err := WithRetry(ctx, 3, 7, getByID, alwaysStale, func(*models.Unit) error { return nil })
	require.ErrorIs(t, err, utils.ErrRowVersionConflict)
}
