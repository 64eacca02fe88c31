// Package format turns raw upstream values into display text and cards.
package format

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCount is returned for count strings that are not non-negative decimal integers.
//
// Malformed counts are rejected, never clamped: callers drop the value they were about to show.
var ErrInvalidCount = errors.New("invalid count")

const (
	yi  = 100_000_000
	wan = 10_000
	qia = 1_000
)

// Count abbreviates a decimal count by its digit length using integer division only:
// up to 3 digits unchanged, 4 digits in 千, 5 to 8 digits in 万, more in 亿.
func Count(s string) (string, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}

	switch l := len(s); {
	case l <= 3:
		return s, nil
	case l > 8:
		return strconv.FormatUint(n/yi, 10) + "亿", nil
	case l > 4:
		return strconv.FormatUint(n/wan, 10) + "万", nil
	default:
		return strconv.FormatUint(n/qia, 10) + "千", nil
	}
}

// CountInt abbreviates an already parsed count.
func CountInt(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return Count(strconv.FormatInt(n, 10))
}
