package strut

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Strftime formats a Unix timestamp with C strftime conversions, in
// local time. Fractional seconds are kept to nanosecond precision for
// patterns that use them.
func Strftime(pattern string, sec float64) string {
	s, frac := math.Modf(sec)
	return strftime.Format(pattern, time.Unix(int64(s), int64(frac*1e9)))
}

// StrftimeMilli is Strftime for millisecond timestamps.
func StrftimeMilli(pattern string, msec float64) string {
	return Strftime(pattern, msec/1000)
}

// ParseTimestamp converts a decimal string to a Unix timestamp for
// Strftime.
func ParseTimestamp(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return v, nil
}
