package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jpl-au/safercmd/shellcmd"
)

// OneOf returns a predicate accepting exactly the listed values.
func OneOf(allowed ...string) shellcmd.Predicate {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

// Pattern returns a predicate accepting values the expression matches in
// full. The expression is anchored at both ends, so "[a-z]+" means
// "^(?:[a-z]+)$".
func Pattern(expr string) (shellcmd.Predicate, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %w", ErrInvalidRule, expr, err)
	}
	return re.MatchString, nil
}

// Prefix returns a predicate accepting values that start with p.
func Prefix(p string) shellcmd.Predicate {
	return func(v string) bool {
		return strings.HasPrefix(v, p)
	}
}

// NoFlag rejects values that start with "-" and would be read as options.
func NoFlag(v string) bool {
	return !strings.HasPrefix(v, "-")
}
