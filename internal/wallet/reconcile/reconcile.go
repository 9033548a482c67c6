// Package reconcile merges two observations of the same field into one value.
package reconcile

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// ErrInconsistent reports two observations that cannot be reconciled.
var ErrInconsistent = errors.New("inconsistent observations")

// InconsistentError names the field and the two values that disagree.
type InconsistentError struct {
	Field string
	A     any
	B     any
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("%s: field %q: %v != %v", ErrInconsistent, e.Field, e.A, e.B)
}

// Is makes errors.Is(err, ErrInconsistent) match.
func (e *InconsistentError) Is(target error) bool {
	return target == ErrInconsistent
}

// BoolResolution decides between two differing booleans.
type BoolResolution uint8

const (
	// BoolStrict rejects differing booleans.
	BoolStrict BoolResolution = iota
	// PreferTrue resolves differing booleans to true.
	PreferTrue
	// PreferFalse resolves differing booleans to false.
	PreferFalse
)

// NumberResolution decides between two differing numbers.
type NumberResolution uint8

const (
	// NumberStrict rejects differing numbers.
	NumberStrict NumberResolution = iota
	// PreferMax keeps the larger number.
	PreferMax
	// PreferMin keeps the smaller number.
	PreferMin
)

// Policy configures how differing observations are resolved. The zero value
// resolves to the defined side and is strict otherwise.
type Policy struct {
	KeepUndefined bool
	Bool          BoolResolution
	Number        NumberResolution
}

// Value reconciles two optional values of the same field.
func Value[T comparable](field string, a, b *T, p Policy) (*T, error) {
	if a == b {
		return a, nil
	}
	if a == nil || b == nil {
		if p.KeepUndefined {
			return nil, nil
		}
		if a == nil {
			return b, nil
		}
		return a, nil
	}
	if *a == *b {
		return a, nil
	}

	if p.Bool != BoolStrict {
		if _, ok := any(*a).(bool); ok {
			v, _ := any(p.Bool == PreferTrue).(T)
			return &v, nil
		}
	}
	if p.Number != NumberStrict {
		if keepA, ok := pickNumber(*a, *b, p.Number == PreferMax); ok {
			if keepA {
				return a, nil
			}
			return b, nil
		}
	}
	return nil, &InconsistentError{Field: field, A: *a, B: *b}
}

// Slice reconciles two optional slices; nil means undefined.
func Slice[T comparable](field string, a, b []T, p Policy) ([]T, error) {
	if a == nil || b == nil {
		if p.KeepUndefined {
			return nil, nil
		}
		if a == nil {
			return b, nil
		}
		return a, nil
	}
	if slices.Equal(a, b) {
		return a, nil
	}
	return nil, &InconsistentError{Field: field, A: a, B: b}
}

// Set reconciles *dst with v and stores the result in *dst.
func Set[T comparable](field string, dst **T, v *T, p Policy) error {
	resolved, err := Value(field, *dst, v, p)
	if err != nil {
		return err
	}
	*dst = resolved
	return nil
}

// SetSlice is Set for slices.
func SetSlice[T comparable](field string, dst *[]T, v []T, p Policy) error {
	resolved, err := Slice(field, *dst, v, p)
	if err != nil {
		return err
	}
	*dst = resolved
	return nil
}

// pickNumber reports whether a wins over b and whether T has a numeric kind.
func pickNumber[T comparable](a, b T, preferMax bool) (bool, bool) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return greater(av.Int(), bv.Int(), preferMax), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return greater(av.Uint(), bv.Uint(), preferMax), true
	case reflect.Float32, reflect.Float64:
		return greater(av.Float(), bv.Float(), preferMax), true
	default:
		return false, false
	}
}

func greater[N int64 | uint64 | float64](a, b N, preferMax bool) bool {
	if preferMax {
		return a > b
	}
	return a < b
}
