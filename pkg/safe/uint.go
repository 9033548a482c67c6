// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// ParseUint32 parses a base-10 string into a uint32.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return Uint32(v)
}

// ParseUint32List parses a comma separated list of base-10 values. Empty
// elements are skipped.
func ParseUint32List(s string) ([]uint32, error) {
	var values []uint32
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParseUint32(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
