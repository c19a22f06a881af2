// Package morph: morphism variants and constructors.
//
// This file declares Kind, Morphism, the New/NewReversible/Identity
// constructors, and the variant predicates IsReversible and InverseOf.
package morph

// Kind tags the morphism variant a Morphism was constructed as.
type Kind uint8

const (
	// KindBasic is a forward-only morphism; no inverse available.
	KindBasic Kind = iota + 1

	// KindReversible is a morphism carrying a declared inverse.
	KindReversible

	// KindComposed is a morphism built by Compose from two components.
	KindComposed
)

// String returns the lowercase variant name, or "unknown" for
// unrecognized tags (including the zero Kind).
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindReversible:
		return "reversible"
	case KindComposed:
		return "composed"
	default:
		return "unknown"
	}
}

// Morphism is a directional transformation from shape A to shape B.
//
// A Morphism is an immutable value object: constructed once by New,
// NewReversible, Identity, or Compose, then shared freely. The zero
// Morphism is malformed; Reverse reports it as ErrUnknownKind and Map
// on it panics (nil forward). Always use the constructors.
//
// Map applies the forward transformation without consulting either
// schema: forward is trusted to produce values acceptable to the
// target descriptor, and validation stays an explicit Parse call.
type Morphism[A, B any] struct {
	kind Kind
	src  *Type[A]
	dst  *Type[B]
	fwd  func(A) B

	// inv is set for the reversible variant only.
	inv func(B) A

	// rev is set for the composed variant only: right-to-left reversal
	// through the captured components.
	rev func(B) (A, error)

	// revOK: every transitive leaf carries an inverse.
	revOK bool
}

// New constructs a basic (forward-only) morphism from source to target.
//
// No agreement between forward's behavior and the two schemas is
// enforced here or on Map: the caller is responsible for forward
// producing values the target schema accepts.
// Panics on nil source, target, or forward. Complexity: O(1).
func New[A, B any](source *Type[A], target *Type[B], forward func(A) B) *Morphism[A, B] {
	if source == nil || target == nil {
		panic("morph: New: nil Type descriptor")
	}
	if forward == nil {
		panic("morph: New(" + source.name + "->" + target.name + "): nil forward")
	}

	return &Morphism[A, B]{kind: KindBasic, src: source, dst: target, fwd: forward}
}

// NewReversible constructs a reversible morphism carrying a declared
// inverse.
//
// backward is trusted as a structural inverse candidate: no round-trip
// verification happens at construction. Correctness is the caller's
// responsibility, checkable per value via CheckRoundTrip.
// Panics on nil source, target, forward, or backward. Complexity: O(1).
func NewReversible[A, B any](source *Type[A], target *Type[B], forward func(A) B, backward func(B) A) *Morphism[A, B] {
	if source == nil || target == nil {
		panic("morph: NewReversible: nil Type descriptor")
	}
	if forward == nil || backward == nil {
		panic("morph: NewReversible(" + source.name + "->" + target.name + "): nil forward or backward")
	}

	return &Morphism[A, B]{
		kind:  KindReversible,
		src:   source,
		dst:   target,
		fwd:   forward,
		inv:   backward,
		revOK: true,
	}
}

// Identity returns the reversible identity morphism on t.
// Panics on nil t. Complexity: O(1).
func Identity[T any](t *Type[T]) *Morphism[T, T] {
	if t == nil {
		panic("morph: Identity: nil Type descriptor")
	}
	id := func(v T) T { return v }

	return NewReversible(t, t, id, id)
}

// Kind returns the variant tag this morphism was constructed as.
func (m *Morphism[A, B]) Kind() Kind { return m.kind }

// Source returns the source Type descriptor.
func (m *Morphism[A, B]) Source() *Type[A] { return m.src }

// Target returns the target Type descriptor.
func (m *Morphism[A, B]) Target() *Type[B] { return m.dst }

// Map applies the forward transformation to a. No schema validation
// occurs; see Type.Parse for the explicit capability.
func (m *Morphism[A, B]) Map(a A) B { return m.fwd(a) }

// label renders source->target names for diagnostics.
func (m *Morphism[A, B]) label() string {
	if m.src == nil || m.dst == nil {
		return "?->?"
	}

	return m.src.name + "->" + m.dst.name
}

// IsReversible reports whether m is directly the reversible variant.
//
// This is a shallow tag check: a composed morphism is never reported
// reversible here, even when every transitive component carries an
// inverse. Use CanReverse for the transitive question.
func IsReversible[A, B any](m *Morphism[A, B]) bool {
	return m != nil && m.kind == KindReversible
}

// InverseOf returns the declared inverse of a reversible morphism, or
// nil for every other variant — including composed morphisms whose
// chain is in fact invertible end-to-end (reverse those via Reverse).
func InverseOf[A, B any](m *Morphism[A, B]) func(B) A {
	if m == nil || m.kind != KindReversible {
		return nil
	}

	return m.inv
}
