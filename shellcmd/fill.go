// fill.go implements replacement validation and template filling.
//
// Validation fails closed: an unknown name, a rejected value, two synonyms
// for one slot, or a missing slot all reject the whole replacement set.

package shellcmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ValidateOne reports whether value is acceptable for the placeholder
// called name. Unknown names are never acceptable.
func (t *Template) ValidateOne(name, value string) bool {
	if _, ok := t.slots[name]; !ok {
		return false
	}
	return t.validatorFor(name).Valid(value)
}

// ValidateAll reports whether r is a complete, valid replacement set: every
// value passes its validator, no position is named twice, and every
// placeholder position is covered.
func (t *Template) ValidateAll(r Replacements) bool {
	return t.Check(r) == nil
}

// Check is ValidateAll with a reason. The returned error wraps
// ErrInvalidReplacements. Names are checked in sorted order so the reported
// reason does not depend on map iteration.
func (t *Template) Check(r Replacements) error {
	filled := make(map[int]string, len(r))
	for _, name := range slices.Sorted(maps.Keys(r)) {
		i, ok := t.slots[name]
		if !ok {
			return fmt.Errorf("%w: unknown placeholder %q", ErrInvalidReplacements, name)
		}
		if !t.validatorFor(name).Valid(r[name]) {
			return fmt.Errorf("%w: value for %q rejected", ErrInvalidReplacements, name)
		}
		if prev, dup := filled[i]; dup {
			return fmt.Errorf("%w: %q and %q fill the same position %d", ErrInvalidReplacements, prev, name, i)
		}
		filled[i] = name
	}

	if len(filled) != len(t.targets) {
		var missing []string
		for _, i := range t.Targets() {
			if _, ok := filled[i]; !ok {
				missing = append(missing, "{"+strings.Join(t.namesAt(i), "|")+"}")
			}
		}
		return fmt.Errorf("%w: missing %s", ErrInvalidReplacements, strings.Join(missing, ", "))
	}
	return nil
}

// Fill validates r and returns the skeleton with every placeholder replaced.
// The result is a new slice the same length as the skeleton; fixed tokens
// keep their positions.
func (t *Template) Fill(r Replacements) ([]string, error) {
	if err := t.Check(r); err != nil {
		return nil, err
	}
	out := slices.Clone(t.skeleton)
	for name, value := range r {
		out[t.slots[name]] = value
	}
	return out, nil
}

// FillCommandLine fills the template and joins the result with single
// spaces. Values are not quoted; see JoinCommandLine.
func (t *Template) FillCommandLine(r Replacements) (string, error) {
	tokens, err := t.Fill(r)
	if err != nil {
		return "", err
	}
	return JoinCommandLine(tokens), nil
}

// JoinCommandLine joins tokens with a single space. No quoting or escaping
// is done, so the result is only as safe as the tokens themselves.
func JoinCommandLine(tokens []string) string {
	return strings.Join(tokens, " ")
}
