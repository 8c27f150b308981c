// Package log provides centralised audit logging for safercmd operations.
// Logs are stored in ~/.safercmd/log/safercmd-log.db and track every
// validation and fill made through the CLI or the MCP server.
//
// Replacement values are untrusted input and are never stored as given.
// Each value is recorded as a short blake2b digest, which is enough to
// correlate repeated inputs without keeping a copy of them.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("template:fill", "fill").
//		Template(name).
//		Replacements(r).
//		Write(err)
//
//	log.Event("mcp:check", "check").
//		Template(name).
//		Detail("count", len(r)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/jpl-au/safercmd/shellcmd"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source   string   // e.g., "template:fill", "mcp:safercmd_fill"
	Action   string   // verb: validate, check, fill, list, etc.
	Template string   // catalog template name
	Names    []string // placeholder names supplied, sorted

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "template:fill")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:safercmd_fill")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Template sets the catalog template this operation used.
func (b *Builder) Template(name string) *Builder {
	b.entry.Template = name
	return b
}

// Replacements records which names were supplied and a digest of each value.
// Values themselves are not kept.
func (b *Builder) Replacements(r shellcmd.Replacements) *Builder {
	b.entry.Names = slices.Sorted(maps.Keys(r))
	digests := make(map[string]string, len(r))
	for name, value := range r {
		digests[name] = hash(value)
	}
	return b.Detail("values", digests)
}

// Value records the digest of a single value under key.
func (b *Builder) Value(key, value string) *Builder {
	return b.Detail(key, hash(value))
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
