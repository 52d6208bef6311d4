package utils

import (
	"strconv"
	"strings"
)

// ParseInt parses a signed decimal integer that must fit in 32 bits.
// A leading '+' is accepted.
func ParseInt(raw string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
