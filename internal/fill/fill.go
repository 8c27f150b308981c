// Package fill runs the validate, check and fill operations against a
// catalog template. The CLI and the MCP server both go through here so they
// report the same results and reasons.
package fill

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/safercmd/internal/catalog"
	"github.com/jpl-au/safercmd/internal/diff"
	"github.com/jpl-au/safercmd/shellcmd"
)

var (
	// ErrBadArgument is returned for a replacement argument that is not name=value.
	ErrBadArgument = errors.New("bad replacement argument")
	// ErrDuplicateName is returned when a name is given more than once.
	ErrDuplicateName = errors.New("duplicate replacement name")
	// ErrRejected is returned when a single value fails validation.
	ErrRejected = errors.New("value rejected")
)

// ParseArgs turns name=value arguments into replacements. The value is
// everything after the first '='; it may be empty or contain further '='.
// A malformed argument is reported by its 1-based position only, since its
// text may be a value and errors end up in the audit log.
func ParseArgs(args []string) (shellcmd.Replacements, error) {
	r := make(shellcmd.Replacements, len(args))
	for i, a := range args {
		name, value, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: argument %d is not name=value", ErrBadArgument, i+1)
		}
		if _, dup := r[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		r[name] = value
	}
	return r, nil
}

// ValidateResult is the outcome of checking one value.
type ValidateResult struct {
	Template string `json:"template"`
	Name     string `json:"name"`
	Known    bool   `json:"known"`
	Valid    bool   `json:"valid"`
}

// Validate checks a single value for one placeholder of the named template
// and writes "valid" or "rejected" to w. A rejected value returns ErrRejected
// alongside the result.
func Validate(w io.Writer, cat *catalog.Catalog, tmplName, name, value string) (ValidateResult, error) {
	result := ValidateResult{Template: tmplName, Name: name}

	tmpl, err := cat.Template(tmplName)
	if err != nil {
		return result, err
	}
	_, result.Known = tmpl.Slot(name)
	result.Valid = tmpl.ValidateOne(name, value)

	if !result.Valid {
		if !result.Known {
			err = fmt.Errorf("%w: %q is not a placeholder of %q", ErrRejected, name, tmplName)
		} else {
			err = fmt.Errorf("%w: %q", ErrRejected, name)
		}
		_, _ = fmt.Fprintln(w, "rejected")
		return result, err
	}
	_, err = fmt.Fprintln(w, "valid")
	return result, err
}

// CheckResult is the outcome of checking a whole replacement set.
type CheckResult struct {
	Template string `json:"template"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
}

// Check validates a complete replacement set. When the set is invalid the
// returned error wraps shellcmd.ErrInvalidReplacements and Reason holds its
// message.
func Check(w io.Writer, cat *catalog.Catalog, tmplName string, r shellcmd.Replacements) (CheckResult, error) {
	result := CheckResult{Template: tmplName}

	tmpl, err := cat.Template(tmplName)
	if err != nil {
		return result, err
	}
	if err := tmpl.Check(r); err != nil {
		result.Reason = err.Error()
		return result, err
	}
	result.Valid = true
	_, err = fmt.Fprintln(w, "ok")
	return result, err
}

// Options configures a fill operation.
type Options struct {
	Line    bool // Write the joined command line instead of one token per line
	Preview bool // Write a skeleton vs filled diff
	Colour  bool // Colourise the preview
}

// Result contains the outcome of a fill.
type Result struct {
	Template    string   `json:"template"`
	Tokens      []string `json:"tokens"`
	CommandLine string   `json:"command_line"`
	Preview     string   `json:"preview,omitempty"`
}

// Run fills the named template and writes the result to w. Nothing is
// written when validation fails.
func Run(w io.Writer, cat *catalog.Catalog, tmplName string, r shellcmd.Replacements, opts Options) (Result, error) {
	result := Result{Template: tmplName}

	tmpl, err := cat.Template(tmplName)
	if err != nil {
		return result, err
	}
	tokens, err := tmpl.Fill(r)
	if err != nil {
		return result, err
	}
	result.Tokens = tokens
	result.CommandLine = shellcmd.JoinCommandLine(tokens)

	if opts.Preview {
		d := diff.Arguments(tmpl.Display(), tokens, tmplName, "filled")
		result.Preview = d.Diff
		_, err = fmt.Fprint(w, d.Format(opts.Colour))
		return result, err
	}

	if opts.Line {
		_, err = fmt.Fprintln(w, result.CommandLine)
		return result, err
	}
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return result, err
		}
	}
	return result, nil
}
