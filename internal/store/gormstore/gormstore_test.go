package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/store/storetest"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	s := New(db)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestGormstoreSQLite(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestYearPattern(t *testing.T) {
	require.Equal(t, "2025-%", yearPattern(2025))
}
