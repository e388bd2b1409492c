package pg

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrationName(t *testing.T) {
	version, name, err := parseMigrationName("0001_chat_turns.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, "chat_turns", name)

	for _, bad := range []string{"chat.sql", "abc_chat.sql", "0000_zero.sql", "0003_.sql"} {
		_, _, err := parseMigrationName(bad)
		assert.Errorf(t, err, "expected error for %s", bad)
	}
}

func TestEmbeddedMigrationsSorted(t *testing.T) {
	migrations, err := loadMigrations(migrationsFS, "migrations")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(migrations), 2)
	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Contains(t, migrations[0].Content, "CREATE TABLE IF NOT EXISTS chat_turns")
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestLoadMigrationsRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0001_a.sql": {Data: []byte("SELECT 1")},
		"m/001_b.sql":  {Data: []byte("SELECT 2")},
		"m/README.md":  {Data: []byte("ignored")},
	}
	_, err := loadMigrations(fsys, "m")
	assert.Error(t, err)
}

func TestMaxVersion(t *testing.T) {
	assert.Equal(t, int64(5), maxVersion([]migration{{Version: 2}, {Version: 5}}, 3))
	assert.Equal(t, int64(7), maxVersion([]migration{{Version: 2}}, 7))
	assert.Equal(t, int64(0), maxVersion(nil, 0))
}
