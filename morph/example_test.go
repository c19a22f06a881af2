package morph_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f8n-ai/semdag/morph"
)

// newStringType builds a String descriptor for the examples.
func newStringType() *morph.Type[string] {
	return morph.NewType("String",
		func(candidate any) (string, error) {
			s, ok := candidate.(string)
			if !ok {
				return "", fmt.Errorf("not a string: %T", candidate)
			}

			return s, nil
		},
		func(a, b string) bool { return a == b },
	)
}

// ExampleCompose demonstrates the canonical pipeline: uppercase, then
// prefix, composed over one shared String descriptor, mapped forward
// and reversed back.
//
// Scenario:
//
//	upper:  s -> UPPER(s)        inverse: lowercase
//	prefix: s -> "PRE_" + s      inverse: strip 4 leading bytes
//
// Complexity: Map and Reverse are O(chain length) dispatches.
func ExampleCompose() {
	str := newStringType()

	upper := morph.NewReversible(str, str, strings.ToUpper, strings.ToLower)
	prefix := morph.NewReversible(str, str,
		func(s string) string { return "PRE_" + s },
		func(s string) string { return s[4:] },
	)

	chain := morph.Compose(upper, prefix)

	fmt.Println(chain.Map("hello"))

	back, err := morph.Reverse(chain, "PRE_HELLO")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(back)
	// Output:
	// PRE_HELLO
	// hello
}

// ExampleReverse_notReversible shows how a forward-only leg surfaces:
// a Result-style (value, error) pair the caller branches on, never a
// panic.
func ExampleReverse_notReversible() {
	str := newStringType()

	redact := morph.New(str, str, func(s string) string {
		return strings.Repeat("*", len(s))
	})

	_, err := morph.Reverse(redact, "*****")
	fmt.Println(errors.Is(err, morph.ErrNotReversible))
	// Output:
	// true
}

// ExampleCheckRoundTrip probes the round-trip law for single values.
func ExampleCheckRoundTrip() {
	str := newStringType()
	upper := morph.NewReversible(str, str, strings.ToUpper, strings.ToLower)

	fmt.Println(morph.CheckRoundTrip(upper, "hello"))
	fmt.Println(morph.CheckRoundTrip(upper, "Hello"))
	// Output:
	// true
	// false
}
