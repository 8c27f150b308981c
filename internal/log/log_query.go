// log_query.go reads back and prunes the audit log for "safercmd audit".

package log

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
)

// ErrClosed is returned by queries when the logger is not open, which is
// the case when audit.enabled is false.
var ErrClosed = errors.New("audit log not open")

// Record is a stored log entry.
type Record struct {
	ID       int64          `json:"id"`
	Start    int64          `json:"start"`
	End      int64          `json:"end"`
	Source   string         `json:"source"`
	Action   string         `json:"action"`
	Template string         `json:"template,omitempty"`
	Names    []string       `json:"names,omitempty"`
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// Query selects log records.
type Query struct {
	Limit    int    // Most recent N; zero means 20
	Template string // Only this template
	Failed   bool   // Only failed operations
}

func current() (*Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil, ErrClosed
	}
	return global, nil
}

// Recent returns matching records, newest first.
func Recent(q Query) ([]Record, error) {
	l, err := current()
	if err != nil {
		return nil, err
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}

	var where []string
	var args []any
	if q.Template != "" {
		where = append(where, "template = ?")
		args = append(args, q.Template)
	}
	if q.Failed {
		where = append(where, "success = 0")
	}
	query := `SELECT id, start, end, source, action, template, names, success, error, detail FROM log`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, q.Limit)

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var template, names, errMsg, detail sql.NullString
		var success int
		if err := rows.Scan(&r.ID, &r.Start, &r.End, &r.Source, &r.Action,
			&template, &names, &success, &errMsg, &detail); err != nil {
			return nil, err
		}
		r.Template = template.String
		if names.String != "" {
			r.Names = strings.Split(names.String, ",")
		}
		r.Success = success == 1
		r.Error = errMsg.String
		if detail.String != "" {
			// Detail is written by this package; a row that fails to
			// decode keeps its other fields.
			_ = json.Unmarshal([]byte(detail.String), &r.Detail)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Prune deletes entries that started before the unix time cutoff and
// returns how many there were. With dryRun nothing is deleted.
func Prune(cutoff int64, dryRun bool) (int64, error) {
	l, err := current()
	if err != nil {
		return 0, err
	}
	if dryRun {
		var n int64
		err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff).Scan(&n)
		return n, err
	}
	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
