package migrations

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_daily.sql": {Data: []byte("CREATE TABLE b ();")},
		"001_users.sql": {Data: []byte("CREATE TABLE a ();")},
		"README.md":     {Data: []byte("ignored")},
		"notes.sql":     {Data: []byte("ignored: no version")},
		"010_index.sql": {Data: []byte("CREATE INDEX c ON a (x);")},
		"sub/003_x.sql": {Data: []byte("nested files are ignored")},
	}

	got, err := ReadMigrationFiles(fsys)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, Migration{Version: 1, Name: "users", SQL: "CREATE TABLE a ();"}, got[0])
	assert.Equal(t, 2, got[1].Version)
	assert.Equal(t, "daily", got[1].Name)
	assert.Equal(t, 10, got[2].Version)
}

func TestReadMigrationFiles_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("")},
		"001_b.sql": {Data: []byte("")},
	}

	_, err := ReadMigrationFiles(fsys)
	assert.ErrorContains(t, err, "001")
}

func TestEmbeddedMigrations(t *testing.T) {
	sub, err := fs.Sub(embedded, "sql")
	require.NoError(t, err)

	got, err := ReadMigrationFiles(sub)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "create_users", got[0].Name)
	assert.Equal(t, "create_daily_color", got[1].Name)
	assert.Contains(t, got[1].SQL, "daily_color")
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}
	got := Pending(all, map[int]bool{1: true, 3: true})
	assert.Equal(t, []Migration{{Version: 2}}, got)
	assert.Len(t, Pending(all, nil), 3)
}
