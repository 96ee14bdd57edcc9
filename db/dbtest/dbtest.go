// Package dbtest opens isolated in-memory sqlite databases with the
// production schema for repository and service tests.
package dbtest

import (
	"fmt"
	"testing"

	"movie_tracker/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func NewDatabase(t testing.TB) *db.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	d, err := db.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	// one connection keeps the in-memory database alive and serializes writers
	sqlDB, err := d.GetDB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, d.Migrate())
	t.Cleanup(d.Close)
	return d
}
