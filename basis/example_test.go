package basis_test

import (
	"fmt"
	"strconv"

	"github.com/f8n-ai/semdag/basis"
	"github.com/f8n-ai/semdag/morph"
)

// ExampleInt demonstrates literal widening: integral JSON-style
// literals parse, fractional ones do not.
func ExampleInt() {
	num := basis.Int()

	v, _ := num.Parse(float64(12))
	fmt.Println(v)
	fmt.Println(num.Accepts(12.5))
	// Output:
	// 12
	// false
}

// ExampleString wires two basis descriptors into a reversible
// String<->Int pipeline.
func ExampleString() {
	str := basis.String()
	num := basis.Int()

	parse := morph.NewReversible(str, num,
		func(s string) int { n, _ := strconv.Atoi(s); return n },
		strconv.Itoa,
	)

	fmt.Println(parse.Map("42"))
	fmt.Println(morph.CheckRoundTrip(parse, "42"))
	// Output:
	// 42
	// true
}
