package morph

import "fmt"

// Reverse recovers the original input of m from a transformed value.
//
// Dispatch by variant:
//   - reversible: applies the declared inverse; always succeeds.
//   - basic: fails with ErrNotReversible, naming source->target.
//   - composed: unwinds right-to-left through the components' own
//     reversal, recursively — a composed-of-composed chain whose
//     transitive leaves are all reversible reverses successfully. A
//     non-reversible component short-circuits the failure, naming the
//     side of the composition that lacks an inverse.
//   - anything else (zero value, foreign tag): ErrUnknownKind.
//
// Failures come back as errors, never panics: whether a given morphism
// reverses is a runtime property of the chain, for callers to branch on
// with errors.Is. Complexity: bounded by chain depth.
func Reverse[A, B any](m *Morphism[A, B], value B) (A, error) {
	var zero A
	if m == nil {
		return zero, fmt.Errorf("reverse: nil morphism: %w", ErrUnknownKind)
	}

	switch m.kind {
	case KindReversible:
		return m.inv(value), nil
	case KindBasic:
		return zero, fmt.Errorf("reverse %s: %w", m.label(), ErrNotReversible)
	case KindComposed:
		return m.rev(value)
	default:
		return zero, fmt.Errorf("reverse %s: kind %d: %w", m.label(), m.kind, ErrUnknownKind)
	}
}

// CanReverse reports whether Reverse can succeed for m: true for the
// reversible variant and for composed chains whose transitive leaves
// are all reversible. This is the transitive counterpart of the
// shallow IsReversible tag check.
func CanReverse[A, B any](m *Morphism[A, B]) bool {
	return m != nil && m.revOK
}

// CheckRoundTrip probes the round-trip law for one value: maps
// testValue forward, applies the declared inverse, and compares the
// result to testValue under the source descriptor's equality.
//
// Only a directly reversible morphism can pass: composed morphisms
// report false even when truly invertible, per the InverseOf contract.
// This verifies exactly the one probed value; it is evidence, not a
// proof that backward inverts forward everywhere.
func CheckRoundTrip[A, B any](m *Morphism[A, B], testValue A) bool {
	inv := InverseOf(m)
	if inv == nil {
		return false
	}

	return m.src.eq(testValue, inv(m.fwd(testValue)))
}

// CheckRoundTripAll probes the round-trip law for each value in turn,
// reporting whether every probe passed. Vacuously true for no values.
func CheckRoundTripAll[A, B any](m *Morphism[A, B], values ...A) bool {
	for _, v := range values {
		if !CheckRoundTrip(m, v) {
			return false
		}
	}

	return true
}
