// Package basis ships ready-made Type descriptors for common scalar
// shapes: String, Int, Float64, Bool, Time.
//
// Each constructor returns a FRESH descriptor. Descriptors compare by
// identity in morph.Compose, so a pipeline must call a constructor
// once and thread that one reference through every morphism in the
// chain; two separate basis.String() calls are two distinct types and
// will not compose across each other. That is deliberate: it is the
// same guard that keeps two same-shaped but semantically different
// types from chaining by accident.
//
// ⚙️ Usage:
//
//	str := basis.String()                 // one descriptor...
//	upper := morph.NewReversible(str, str, strings.ToUpper, strings.ToLower)
//	quote := morph.New(str, str, strconv.Quote)
//	chain := morph.Compose(upper, quote)  // ...reused end to end
//
// Schemas here coerce the way JSON literals widen: Int accepts
// integral int64/float64 literals, Float64 accepts int literals, Time
// accepts RFC 3339 strings. Equality is semantic where the shape calls
// for it: Float64 equates within a caller-chosen tolerance, Time
// equates instants regardless of zone representation.
package basis
