package repomanager

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dir.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteRunMigrations_CreatesUsersTable(t *testing.T) {
	db := openSQLite(t)
	m := &SQLiteRepositoryManager{}

	require.NoError(t, m.RunMigrations(context.Background(), db))
	assert.True(t, tableExists(t, db, "users"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestSQLiteRunMigrations_IsIdempotent(t *testing.T) {
	db := openSQLite(t)
	m := &SQLiteRepositoryManager{}

	require.NoError(t, m.RunMigrations(context.Background(), db))
	require.NoError(t, m.RunMigrations(context.Background(), db))
}

func TestSQLiteUsers_WorksAfterMigration(t *testing.T) {
	db := openSQLite(t)
	m := &SQLiteRepositoryManager{}
	require.NoError(t, m.RunMigrations(context.Background(), db))

	repo := m.Users(db)
	assert.IsType(t, &users.SQLiteRepository{}, repo)

	u, err := repo.Create(context.Background(), &models.User{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
}
