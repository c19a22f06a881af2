// Package morph provides a small algebra of typed, validated,
// optionally-reversible transformations between described data shapes.
//
// 🚀 What is a morphism?
//
//	A morphism is a directional transformation between two Type
//	descriptors: a forward map from values of the source shape to
//	values of the target shape, optionally paired with an inverse.
//	Morphisms are the building blocks for converting data between
//	representations — DTOs, entities, wire formats, state snapshots —
//	without letting incompatible conversions chain up silently.
//
// ✨ Key features:
//   - Type descriptors: a named runtime schema plus a semantic
//     equality predicate, constructed once and reused by reference
//   - Three morphism variants: basic (forward-only), reversible
//     (declared inverse), and composed (built by Compose)
//   - Compose validates source/target compatibility by descriptor
//     identity, failing fast on miswired pipelines
//   - Reverse unwinds composed chains right-to-left through their
//     components' inverses
//   - CheckRoundTrip probes the round-trip law for one value
//
// ⚙️ Usage:
//
//	str := basis.String()
//	upper := morph.NewReversible(str, str, strings.ToUpper, strings.ToLower)
//	prefix := morph.NewReversible(str, str,
//	    func(s string) string { return "PRE_" + s },
//	    func(s string) string { return s[4:] },
//	)
//
//	chain := morph.Compose(upper, prefix)
//	chain.Map("hello")                  // "PRE_HELLO"
//	morph.Reverse(chain, "PRE_HELLO")   // "hello", nil
//
// Design notes:
//   - Types and Morphisms are immutable after construction and safe to
//     share across goroutines without coordination.
//   - Map never validates its input against the source schema; schema
//     checking is an explicit capability of the Type descriptor
//     (Parse/Accepts), kept off the hot path on purpose.
//   - Compose compares Type descriptors by pointer identity, not by
//     structure or name. Two independently constructed descriptors of
//     the same shape are distinct types; a pipeline must reuse one
//     descriptor reference end to end.
//
// See examples in example_test.go.
package morph
