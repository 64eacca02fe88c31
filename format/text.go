package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Duration renders seconds as m:ss, or h:mm:ss from one hour on.
// Fractions of a second are truncated.
func Duration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	total := int64(seconds)
	h, m, s := total/3600, total/60%60, total%60
	if h == 0 {
		return fmt.Sprintf("%d:%02d", m, s)
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Score parses a rating such as "8.7".
func Score(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", s, err)
	}
	return f, nil
}

// Fallback returns s, or placeholder when s is blank.
func Fallback(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
