package app

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadMenuChoice parses a raw menu input and checks it against [min, max]
func ReadMenuChoice(raw string, min, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%w: %d (expected %d-%d)", ErrOutOfRange, n, min, max)
	}
	return n, nil
}

// parseIndex parses a 1-based listing index token against the current
// event count
func parseIndex(raw string, count int) (int, error) {
	raw = strings.TrimSpace(raw)
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	if i < 1 || i > count {
		return 0, fmt.Errorf("%w: %d (have %d events)", ErrOutOfRange, i, count)
	}
	return i, nil
}
