// content.go implements predicates over raw value content.
//
// Separated from the structural predicates because these checks apply to
// every slot regardless of what the template declares: the catalog adds
// NoNullByte and MaxLen to each slot on top of its own rules.

package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jpl-au/safercmd/shellcmd"
)

// NoNullByte rejects values containing a NUL byte. A NUL truncates the
// argument at the exec boundary, so the process would see something other
// than what was validated.
func NoNullByte(v string) bool {
	return !strings.ContainsRune(v, 0)
}

// MaxLen returns a predicate accepting values of at most n bytes.
// Returns ErrInvalidLimit if n is not positive.
func MaxLen(n int) (shellcmd.Predicate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidLimit, n)
	}
	return func(v string) bool {
		return len(v) <= n
	}, nil
}

// UTF8 rejects values that are not valid UTF-8.
func UTF8(v string) bool {
	return utf8.ValidString(v)
}
