// Package ls lists the templates in a catalog.
//
// The CLI and the MCP server both call Run so that the two surfaces agree on
// ordering, filtering and what a template summary contains.
package ls

import (
	"fmt"
	"io"

	"github.com/jpl-au/safercmd/internal/catalog"
	"github.com/jpl-au/safercmd/internal/glob"
)

// Options configures a list operation.
type Options struct {
	Filter string // Name prefix, or a glob such as "git-*"
	Long   bool   // Include the skeleton rendering
}

// Summary describes one catalog template.
type Summary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Skeleton    string   `json:"skeleton"`
	Names       []string `json:"names"`
}

// Result contains the outcome of a list operation.
type Result struct {
	Templates []Summary
}

// Count returns the number of templates in the result.
func (r Result) Count() int {
	return len(r.Templates)
}

// ToJSON converts the result to JSON-serializable format.
func (r Result) ToJSON() any {
	if r.Templates == nil {
		return []Summary{}
	}
	return r.Templates
}

// Run lists catalog templates in name order and writes one line per
// template to w. A template that fails to build is reported as an error
// rather than skipped, since every later fill of it would fail too.
func Run(w io.Writer, cat *catalog.Catalog, opts Options) (Result, error) {
	var result Result

	if err := glob.Valid(opts.Filter); err != nil {
		return result, fmt.Errorf("filter %q: %w", opts.Filter, err)
	}
	for _, name := range cat.Names() {
		if ok, _ := glob.Match(opts.Filter, name); !ok {
			continue
		}
		entry, err := cat.Entry(name)
		if err != nil {
			return result, err
		}
		tmpl, err := cat.Template(name)
		if err != nil {
			return result, err
		}
		result.Templates = append(result.Templates, Summary{
			Name:        name,
			Description: entry.Description,
			Skeleton:    tmpl.String(),
			Names:       tmpl.Names(),
		})
	}

	for _, s := range result.Templates {
		var err error
		switch {
		case opts.Long:
			_, err = fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Skeleton)
		case s.Description != "":
			_, err = fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
		default:
			_, err = fmt.Fprintln(w, s.Name)
		}
		if err != nil {
			return result, err
		}
	}

	return result, nil
}
