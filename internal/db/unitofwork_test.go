package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoWTestDB(t *testing.T) (*SQLiteUnitOfWork, func() int) {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	count := func() int {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
		return n
	}
	return NewSQLiteUnitOfWork(database), count
}

func insertSession(ctx context.Context, tx DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (thread_id, plan_json, created_at, updated_at) VALUES (?, NULL, 'now', 'now')`, id)
	return err
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	uow, count := newUoWTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return insertSession(ctx, tx, "t1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow, count := newUoWTestDB(t)
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if err := insertSession(ctx, tx, "t1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, count())
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow, count := newUoWTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			if err := insertSession(ctx, tx, "t1"); err != nil {
				return err
			}
			panic("mid-transaction failure")
		})
	})
	assert.Zero(t, count())
}
