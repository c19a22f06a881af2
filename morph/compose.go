package morph

import "fmt"

// Compose combines two morphisms end-to-end into one.
//
// Precondition: first.Target() and second.Source() must be the SAME
// Type descriptor by pointer identity. Name or structural equality is
// not enough: identity matching is the cheap guard that catches two
// morphisms wired over same-shaped but independently declared types.
// On violation Compose panics with a message naming both morphisms —
// a miswired pipeline is a programming error, not a runtime condition.
//
// On success the composed morphism maps a through first then second,
// inherits first's source and second's target, and captures both
// components for later reversal. The intermediate shape X is erased
// from the result's type: only the closures remember it. Inputs are
// never mutated; the result references, not copies, its components.
// Complexity: O(1) construction; Map costs first.Map + second.Map.
func Compose[A, X, B any](first *Morphism[A, X], second *Morphism[X, B]) *Morphism[A, B] {
	if first == nil || second == nil {
		panic("morph: Compose: nil morphism")
	}
	if first.dst != second.src {
		panic(fmt.Sprintf(
			"morph: Compose(%s, %s): target %q and source %q are distinct Type descriptors",
			first.label(), second.label(), first.dst.name, second.src.name,
		))
	}

	label := first.src.name + "->" + second.dst.name

	return &Morphism[A, B]{
		kind: KindComposed,
		src:  first.src,
		dst:  second.dst,
		fwd: func(a A) B {
			return second.fwd(first.fwd(a))
		},
		rev: func(b B) (A, error) {
			// Right-to-left: undo second, then first.
			x, err := Reverse(second, b)
			if err != nil {
				var zero A

				return zero, fmt.Errorf("reverse %s: second component: %w", label, err)
			}
			a, err := Reverse(first, x)
			if err != nil {
				var zero A

				return zero, fmt.Errorf("reverse %s: first component: %w", label, err)
			}

			return a, nil
		},
		revOK: first.revOK && second.revOK,
	}
}
