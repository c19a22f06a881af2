// Package semdag is a small algebra of typed, validated, optionally-
// reversible data transformations between described data shapes.
//
// 🚀 What is semdag?
//
//	A library for code that converts data between representations —
//	DTOs, entities, wire formats, state snapshots — with three
//	guarantees: values can be checked against a declared shape on
//	demand, transformations that claim an inverse can be probed for
//	the round-trip law, and chains of transformations cannot silently
//	compose across incompatible types.
//
// ✨ Why choose semdag?
//
//   - Minimal API - descriptors, three morphism variants, Compose, Reverse
//   - Fail-fast wiring - miswired pipelines panic at construction, not in production
//   - Pure and immutable - every object is safe to share without coordination
//   - Cheap hot path - Map never validates; schema checks are explicit and opt-in
//
// Everything is organized under three subpackages:
//
//	morph/  — Type descriptors, morphism variants, composition & reversal
//	schema/ — JSON Schema backed descriptors for object shapes
//	basis/  — ready-made scalar descriptors (String, Int, Float64, Bool, Time)
//
// Quick sketch:
//
//	str := basis.String()
//	upper := morph.NewReversible(str, str, strings.ToUpper, strings.ToLower)
//	prefix := morph.NewReversible(str, str, addPrefix, stripPrefix)
//
//	chain := morph.Compose(upper, prefix)
//	chain.Map("hello")                 // "PRE_HELLO"
//	morph.Reverse(chain, "PRE_HELLO")  // "hello", nil
//
// Every operation is synchronous and completes within the calling
// frame: no goroutines, no suspension, no retries. Reversal depth is
// bounded only by the composed chain you built.
//
//	go get github.com/f8n-ai/semdag
package semdag
