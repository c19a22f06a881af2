// Package schema: JSON Schema compilation and candidate validation.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/f8n-ai/semdag/morph"
)

// Sentinel errors for schema compilation and validation.
var (
	// ErrBadSchema indicates the schema document itself does not parse
	// or compile.
	ErrBadSchema = errors.New("schema: schema document does not compile")

	// ErrBadCandidate indicates the candidate value cannot be
	// represented as JSON at all (e.g. contains a channel or func).
	ErrBadCandidate = errors.New("schema: candidate is not JSON-representable")

	// ErrRejected indicates the candidate is JSON-representable but
	// fails the schema: not an object, or invalid against it.
	ErrRejected = errors.New("schema: candidate rejected")
)

// dumpCfg renders rejected candidates compactly for diagnostics.
var dumpCfg = spew.ConfigState{Indent: " ", SortKeys: true, DisableMethods: true}

// Compile compiles a JSON Schema document into a morph.Schema for
// object shapes.
//
// The returned Schema is pure and deterministic: it canonicalizes the
// candidate through a JSON round-trip into map[string]any, validates
// the canonical form against the compiled schema, and returns either
// the canonical map or an error aggregating every schema violation.
// Compilation happens once, here; per-candidate work is the round-trip
// plus validation.
func Compile(schemaJSON []byte) (morph.Schema[map[string]any], error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchema, err)
	}

	return func(candidate any) (map[string]any, error) {
		canon, err := canonicalize(candidate)
		if err != nil {
			return nil, err
		}

		result, err := compiled.Validate(gojsonschema.NewGoLoader(canon))
		if err != nil {
			return nil, fmt.Errorf("schema: validate: %w", err)
		}
		if !result.Valid() {
			violations := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				violations = append(violations, e.String())
			}

			return nil, fmt.Errorf("%w: %s: candidate %s",
				ErrRejected, strings.Join(violations, "; "), dumpCfg.Sprintf("%v", candidate))
		}

		return canon, nil
	}, nil
}

// CompileYAML is Compile for a schema document written in YAML.
// The document is converted to JSON before compilation.
func CompileYAML(schemaYAML []byte) (morph.Schema[map[string]any], error) {
	var doc map[string]any
	if err := yaml.Unmarshal(schemaYAML, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrBadSchema, err)
	}

	schemaJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchema, err)
	}

	return Compile(schemaJSON)
}

// ObjectType builds a full morph.Type descriptor for an object shape:
// the compiled schema plus deep semantic equality over canonical maps.
//
// As with every Type, the returned descriptor is a fresh identity:
// construct it once per pipeline and reuse the reference, or Compose
// will reject the chain.
func ObjectType(name string, schemaJSON []byte) (*morph.Type[map[string]any], error) {
	s, err := Compile(schemaJSON)
	if err != nil {
		return nil, err
	}

	return morph.NewType(name, s, func(a, b map[string]any) bool {
		return cmp.Equal(a, b)
	}), nil
}

// canonicalize reduces a candidate to its canonical JSON object form.
func canonicalize(candidate any) (map[string]any, error) {
	raw, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCandidate, err)
	}

	var canon map[string]any
	if err := json.Unmarshal(raw, &canon); err != nil || canon == nil {
		return nil, fmt.Errorf("%w: not a JSON object: %s",
			ErrRejected, dumpCfg.Sprintf("%v", candidate))
	}

	return canon, nil
}
