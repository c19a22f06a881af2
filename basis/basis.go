// Package basis: canned scalar Type descriptors.
package basis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/f8n-ai/semdag/morph"
)

// ErrNotMember indicates a candidate value is outside the descriptor's
// shape. Rejections wrap it with the shape name and the candidate's
// Go type.
var ErrNotMember = errors.New("basis: candidate outside type")

// reject builds the standard rejection error for a shape.
func reject(shape string, candidate any) error {
	return fmt.Errorf("%w: %s: got %T", ErrNotMember, shape, candidate)
}

// String returns a fresh String descriptor: accepts string, identity
// equality.
func String() *morph.Type[string] {
	return morph.NewType("String",
		func(candidate any) (string, error) {
			s, ok := candidate.(string)
			if !ok {
				return "", reject("String", candidate)
			}

			return s, nil
		},
		func(a, b string) bool { return a == b },
	)
}

// Int returns a fresh Int descriptor. Accepts int directly, and
// coerces int64 and integral float64 literals when they fit; rejects
// fractional, non-finite, and out-of-range values.
func Int() *morph.Type[int] {
	return morph.NewType("Int",
		func(candidate any) (int, error) {
			switch v := candidate.(type) {
			case int:
				return v, nil
			case int64:
				if int64(int(v)) != v {
					return 0, reject("Int", candidate)
				}

				return int(v), nil
			case float64:
				// math.MaxInt rounds up to 2^63 as a float64, so the
				// high bound must be exclusive.
				if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
					v < math.MinInt || v >= math.MaxInt {
					return 0, reject("Int", candidate)
				}

				return int(v), nil
			default:
				return 0, reject("Int", candidate)
			}
		},
		func(a, b int) bool { return a == b },
	)
}

// Float64 returns a fresh Float64 descriptor whose equality is
// approximate: values within the absolute tolerance compare equal
// (semantic, not structural, equality). A tolerance of 0 degrades to
// exact comparison. Accepts float64 directly and widens int/int64
// literals. Panics on negative or NaN tolerance.
func Float64(tolerance float64) *morph.Type[float64] {
	if tolerance < 0 || math.IsNaN(tolerance) {
		panic("basis: Float64: tolerance must be a non-negative number")
	}
	opts := cmpopts.EquateApprox(0, tolerance)

	return morph.NewType("Float64",
		func(candidate any) (float64, error) {
			switch v := candidate.(type) {
			case float64:
				return v, nil
			case int:
				return float64(v), nil
			case int64:
				return float64(v), nil
			default:
				return 0, reject("Float64", candidate)
			}
		},
		func(a, b float64) bool { return cmp.Equal(a, b, opts) },
	)
}

// Bool returns a fresh Bool descriptor: accepts bool, identity
// equality.
func Bool() *morph.Type[bool] {
	return morph.NewType("Bool",
		func(candidate any) (bool, error) {
			b, ok := candidate.(bool)
			if !ok {
				return false, reject("Bool", candidate)
			}

			return b, nil
		},
		func(a, b bool) bool { return a == b },
	)
}

// Time returns a fresh Time descriptor. Accepts time.Time directly and
// parses RFC 3339 strings (with or without fractional seconds).
// Equality compares instants via time.Time.Equal, so the same moment
// in different zones is one value.
func Time() *morph.Type[time.Time] {
	return morph.NewType("Time",
		func(candidate any) (time.Time, error) {
			switch v := candidate.(type) {
			case time.Time:
				return v, nil
			case string:
				ts, err := time.Parse(time.RFC3339Nano, v)
				if err != nil {
					return time.Time{}, fmt.Errorf("%w: Time: %v", ErrNotMember, err)
				}

				return ts, nil
			default:
				return time.Time{}, reject("Time", candidate)
			}
		},
		func(a, b time.Time) bool { return a.Equal(b) },
	)
}
