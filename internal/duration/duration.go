// Package duration parses the short retention periods used by
// "safercmd audit prune --older-than": 12h, 7d, 4w, 3m, 1y.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid is returned for a string that is not a number followed by a unit.
var ErrInvalid = errors.New("invalid duration")

var durationRe = regexp.MustCompile(`^(\d+)([hdwmy])$`)

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
	"y": 365 * day,
}

// Parse parses a duration such as "7d". Months are 30 days and years 365.
func Parse(s string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use 12h, 7d, 4w, 3m or 1y)", ErrInvalid, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalid, s, err)
	}
	return time.Duration(n) * units[m[2]], nil
}
