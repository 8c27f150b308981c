package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/safercmd/shellcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under t.TempDir for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/srv/ops")

		Log(Entry{
			Source:   "template:fill",
			Action:   "fill",
			Template: "grep",
			Names:    []string{"file", "pattern"},
			Success:  true,
		})

		db := openDB(t)
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, template, names, project string
		var success int
		err := db.QueryRow("SELECT source, action, template, names, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &template, &names, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "template:fill", source)
		assert.Equal(t, "fill", action)
		assert.Equal(t, "grep", template)
		assert.Equal(t, "file,pattern", names)
		assert.Equal(t, hash("/srv/ops"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "template:check",
			Action:  "check",
			Success: false,
			Error:   "bad replacements",
		})

		var success int
		var errMsg string
		err := openDB(t).QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "bad replacements", errMsg)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/srv/ops")
	h2 := hash("/srv/ops")
	h3 := hash("/srv/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".safercmd", "log", "safercmd-log.db"), DBPath())
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("replacements are hashed", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("template:fill", "fill").
			Template("grep").
			Replacements(shellcmd.Replacements{"pattern": "s3cr3t", "file": "notes"}).
			Write(nil)

		var template, names, detail string
		var success int
		err := openDB(t).QueryRow("SELECT template, names, detail, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&template, &names, &detail, &success)
		require.NoError(t, err)
		assert.Equal(t, "grep", template)
		assert.Equal(t, "file,pattern", names)
		assert.Equal(t, 1, success)
		assert.NotContains(t, detail, "s3cr3t")
		assert.Contains(t, detail, hash("s3cr3t"))
	})

	t.Run("error is recorded", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		testErr := errors.New("value for \"switch\" rejected")
		Event("template:validate", "validate").
			Template("grep").
			Value("value", "-x").
			Write(testErr)

		var success int
		var errMsg, detail string
		err := openDB(t).QueryRow("SELECT success, error, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &detail)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
		assert.Contains(t, detail, hash("-x"))
	})

	t.Run("detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("template:ls", "list").
			Detail("count", 42).
			Write(nil)

		var detail string
		err := openDB(t).QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "42")
	})
}

func TestRecent(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Event("template:fill", "fill").Template("grep").Replacements(shellcmd.Replacements{"file": "a"}).Write(nil)
	Event("template:fill", "fill").Template("scp").Write(errors.New("bad replacements"))
	Event("template:check", "check").Template("grep").Write(nil)

	all, err := Recent(Query{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "check", all[0].Action)
	assert.Equal(t, []string{"file"}, all[2].Names)
	assert.Contains(t, all[2].Detail, "values")

	grep, err := Recent(Query{Template: "grep", Limit: 1})
	require.NoError(t, err)
	require.Len(t, grep, 1)
	assert.Equal(t, "check", grep[0].Action)

	failed, err := Recent(Query{Failed: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "scp", failed[0].Template)
	assert.Equal(t, "bad replacements", failed[0].Error)
	assert.False(t, failed[0].Success)
}

func TestPrune(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Log(Entry{Source: "test", Action: "old", Start: 100, End: 100, Success: true})
	Log(Entry{Source: "test", Action: "new", Start: 300, End: 300, Success: true})

	n, err := Prune(200, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = Prune(200, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := Recent(Query{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "new", left[0].Action)
}

func TestQueryClosed(t *testing.T) {
	Close()

	_, err := Recent(Query{})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = Prune(0, true)
	assert.ErrorIs(t, err, ErrClosed)
}
