package shellcmd

import "regexp"

// Predicate reports whether a candidate replacement value is acceptable.
type Predicate func(value string) bool

// Validator checks a replacement value. It is either a single predicate or
// an ordered list of predicates which must all pass.
type Validator struct {
	preds []Predicate
	all   bool
}

// Single returns a validator backed by one predicate.
func Single(p Predicate) Validator {
	return Validator{preds: []Predicate{p}}
}

// All returns a validator that accepts a value only if every predicate
// does. Predicates run in order and stop at the first rejection. All with
// no predicates accepts everything.
func All(preds ...Predicate) Validator {
	ps := make([]Predicate, len(preds))
	copy(ps, preds)
	return Validator{preds: ps, all: true}
}

// Valid reports whether value passes the validator. A malformed validator
// rejects everything.
func (v Validator) Valid(value string) bool {
	if !v.wellFormed() {
		return false
	}
	for _, p := range v.preds {
		if !p(value) {
			return false
		}
	}
	return true
}

// wellFormed is false for the zero Validator and for any nil predicate.
func (v Validator) wellFormed() bool {
	if !v.all && len(v.preds) != 1 {
		return false
	}
	for _, p := range v.preds {
		if p == nil {
			return false
		}
	}
	return true
}

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Token is the default fallback predicate. It accepts a non-empty value
// starting with an ASCII letter or digit and continuing with letters,
// digits, underscores or hyphens.
func Token(value string) bool {
	return tokenPattern.MatchString(value)
}
