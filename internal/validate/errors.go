// errors.go defines sentinel errors for rule compilation.
//
// Predicates themselves never fail - they return false. Only turning a
// declarative Rule into predicates can go wrong, and those failures are
// reported by wrapping these sentinels with fmt.Errorf.

package validate

import "errors"

var (
	ErrInvalidRule  = errors.New("invalid rule")
	ErrEmptyRules   = errors.New("no rules given")
	ErrInvalidLimit = errors.New("invalid limit")
)
