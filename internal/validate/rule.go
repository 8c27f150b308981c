// rule.go implements the declarative rule form used by template catalogs.
//
// A Rule is one YAML mapping. Every key set in it adds a predicate, and all
// predicates from all rules in a list must pass. An empty mapping is an
// error rather than "accept anything": a catalog author who wants no checks
// has to say so by not listing the slot at all, which gets the fallback.

package validate

import (
	"fmt"

	"github.com/jpl-au/safercmd/shellcmd"
)

// Rule is a declarative slot check.
type Rule struct {
	OneOf   []string `yaml:"one_of,omitempty" json:"one_of,omitempty"`
	Pattern string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Prefix  string   `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	MaxLen  int      `yaml:"max_len,omitempty" json:"max_len,omitempty"`
	Token   bool     `yaml:"token,omitempty" json:"token,omitempty"`
	Path    bool     `yaml:"path,omitempty" json:"path,omitempty"`
	NoFlag  bool     `yaml:"no_flag,omitempty" json:"no_flag,omitempty"`
}

// Predicates returns the predicates the rule declares, in a fixed order:
// one_of, prefix, no_flag, token, path, pattern, max_len.
func (r Rule) Predicates() ([]shellcmd.Predicate, error) {
	var ps []shellcmd.Predicate
	if r.OneOf != nil {
		if len(r.OneOf) == 0 {
			return nil, fmt.Errorf("%w: one_of needs at least one value", ErrInvalidRule)
		}
		ps = append(ps, OneOf(r.OneOf...))
	}
	if r.Prefix != "" {
		ps = append(ps, Prefix(r.Prefix))
	}
	if r.NoFlag {
		ps = append(ps, NoFlag)
	}
	if r.Token {
		ps = append(ps, shellcmd.Token)
	}
	if r.Path {
		ps = append(ps, RelPath)
	}
	if r.Pattern != "" {
		p, err := Pattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if r.MaxLen != 0 {
		p, err := MaxLen(r.MaxLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w: rule sets no checks", ErrInvalidRule)
	}
	return ps, nil
}

// Compile turns a list of rules into a validator requiring every rule.
func Compile(rules []Rule) (shellcmd.Validator, error) {
	if len(rules) == 0 {
		return shellcmd.Validator{}, ErrEmptyRules
	}
	var all []shellcmd.Predicate
	for i, r := range rules {
		ps, err := r.Predicates()
		if err != nil {
			return shellcmd.Validator{}, fmt.Errorf("rule %d: %w", i+1, err)
		}
		all = append(all, ps...)
	}
	return shellcmd.All(all...), nil
}
