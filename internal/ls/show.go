package ls

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/safercmd/internal/catalog"
)

// Slot describes one placeholder name of a template.
type Slot struct {
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Synonyms []string `json:"synonyms,omitempty"`
	Explicit bool     `json:"explicit"` // false means the fallback validator applies
}

// Detail describes a template's placeholders.
type Detail struct {
	Summary
	Slots []Slot `json:"slots"`
}

// Show writes the placeholders of the named template, one name per line
// in name order, with the position each fills and which validator applies.
func Show(w io.Writer, cat *catalog.Catalog, name string) (Detail, error) {
	entry, err := cat.Entry(name)
	if err != nil {
		return Detail{}, err
	}
	tmpl, err := cat.Template(name)
	if err != nil {
		return Detail{}, err
	}

	d := Detail{
		Summary: Summary{
			Name:        name,
			Description: entry.Description,
			Skeleton:    tmpl.String(),
			Names:       tmpl.Names(),
		},
		Slots: []Slot{},
	}
	for _, n := range d.Names {
		pos, _ := tmpl.Slot(n)
		var syn []string
		for _, s := range tmpl.Synonyms(n) {
			if s != n {
				syn = append(syn, s)
			}
		}
		d.Slots = append(d.Slots, Slot{
			Name:     n,
			Position: pos,
			Synonyms: syn,
			Explicit: tmpl.HasValidator(n),
		})
	}

	if _, err := fmt.Fprintln(w, d.Skeleton); err != nil {
		return d, err
	}
	if d.Description != "" {
		if _, err := fmt.Fprintln(w, d.Description); err != nil {
			return d, err
		}
	}
	for _, s := range d.Slots {
		rule := "fallback"
		if s.Explicit {
			rule = "rules"
		}
		line := fmt.Sprintf("  %-12s %2d  %s", s.Name, s.Position, rule)
		if len(s.Synonyms) > 0 {
			line += "  (same as " + strings.Join(s.Synonyms, ", ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return d, err
		}
	}
	return d, nil
}
