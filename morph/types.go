// Package morph: Type descriptor primitives.
//
// This file declares Schema, Type, the NewType constructor, and the
// descriptor's explicit validation capability (Parse/Accepts/Equal).
package morph

import (
	"errors"
)

// Sentinel errors for reversal. Callers branch with errors.Is;
// reversal failures wrap these with the morphism's source->target names.
var (
	// ErrNotReversible indicates a reversal was attempted on a morphism
	// (or a composed component) that carries no inverse.
	ErrNotReversible = errors.New("morph: morphism is not reversible")

	// ErrUnknownKind indicates a morphism with an unrecognized variant
	// tag, e.g. a zero-valued Morphism that crossed a serialization
	// boundary. Defensive fallback; never produced by the constructors.
	ErrUnknownKind = errors.New("morph: unknown morphism kind")
)

// Schema is a runtime validator/parser for values of shape T.
//
// A Schema deterministically accepts or rejects a candidate value and,
// on acceptance, yields a canonicalized T. Parsing may coerce (e.g.
// widen an integral float64 literal to int); rejection returns a
// descriptive error. Schemas must be pure: no side effects, same
// verdict for the same candidate.
type Schema[T any] func(candidate any) (T, error)

// Type describes one data shape: a diagnostic name, a runtime Schema,
// and a semantic equality predicate over accepted values.
//
// A Type is immutable after construction and carries no identity beyond
// its pointer: Compose matches descriptors by reference, so a pipeline
// must construct each Type once and reuse that reference throughout.
//
// The schema and equality predicate must agree on membership: Equal is
// only meaningful for values that pass the schema. Equal must be a
// valid equivalence relation (reflexive, symmetric, transitive) over
// accepted values; violating this invalidates CheckRoundTrip.
type Type[T any] struct {
	name   string
	schema Schema[T]
	eq     func(a, b T) bool
}

// NewType constructs an immutable Type descriptor.
//
// name is used only for diagnostics and compatibility messages.
// Panics on empty name or nil schema/equals: a malformed descriptor is
// a programmer error, surfaced at construction, never at use.
// Complexity: O(1).
func NewType[T any](name string, schema Schema[T], equals func(a, b T) bool) *Type[T] {
	if name == "" {
		panic("morph: NewType: empty type name")
	}
	if schema == nil {
		panic("morph: NewType(" + name + "): nil schema")
	}
	if equals == nil {
		panic("morph: NewType(" + name + "): nil equals")
	}

	return &Type[T]{name: name, schema: schema, eq: equals}
}

// Name returns the descriptor's diagnostic name.
func (t *Type[T]) Name() string { return t.name }

// Parse runs the descriptor's schema against a candidate value,
// returning the canonicalized T on acceptance.
//
// Validation is opt-in: Morphism.Map never calls Parse implicitly.
// Callers wanting strict runtime guarantees validate at the boundary.
func (t *Type[T]) Parse(candidate any) (T, error) { return t.schema(candidate) }

// Accepts reports whether the schema accepts the candidate value.
func (t *Type[T]) Accepts(candidate any) bool {
	_, err := t.schema(candidate)

	return err == nil
}

// Equal reports semantic equality of two accepted values. Semantic may
// differ from structural: a Float64 descriptor can equate values within
// a tolerance, a Time descriptor can equate instants across zones.
func (t *Type[T]) Equal(a, b T) bool { return t.eq(a, b) }
