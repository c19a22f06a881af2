// Package schema builds morph Schema validators and Type descriptors
// from JSON Schema documents.
//
// The morph core treats validation as an opaque capability supplied by
// the caller; this package is the batteries-included supplier for
// object shapes, backed by github.com/xeipuuv/gojsonschema.
//
// ⚙️ Usage:
//
//	doc := []byte(`{
//	  "type": "object",
//	  "properties": {"id": {"type": "string"}},
//	  "required": ["id"]
//	}`)
//
//	entity, err := schema.ObjectType("Entity", doc)
//	if err != nil { ... }
//
//	v, err := entity.Parse(map[string]any{"id": "e-1"})
//
// Candidates are canonicalized through a JSON round-trip before
// validation, so any JSON-marshalable value (a struct, a map with
// typed values) parses to a plain map[string]any on acceptance. This
// is the coercion step of the Schema contract: the accepted value is
// the canonical JSON object form, not the candidate as given.
//
// Equality on ObjectType descriptors is deep semantic comparison via
// github.com/google/go-cmp, so two canonical maps with the same
// content are equal regardless of construction order.
package schema
