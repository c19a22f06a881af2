package morph_test

import (
	"strings"
	"testing"

	"github.com/f8n-ai/semdag/morph"
)

// benchChain composes depth reversible legs over one shared descriptor.
func benchChain(depth int) *morph.Morphism[string, string] {
	str := stringType("String")
	leg := func() *morph.Morphism[string, string] {
		return morph.NewReversible(str, str,
			func(s string) string { return s + "x" },
			func(s string) string { return strings.TrimSuffix(s, "x") },
		)
	}

	chain := leg()
	for i := 1; i < depth; i++ {
		chain = morph.Compose(chain, leg())
	}

	return chain
}

// BenchmarkMap_Basic measures a single forward application.
func BenchmarkMap_Basic(b *testing.B) {
	str := stringType("String")
	up := morph.New(str, str, strings.ToUpper)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = up.Map("hello")
	}
}

// BenchmarkMap_Composed8 measures forward application through an
// eight-leg composed chain.
func BenchmarkMap_Composed8(b *testing.B) {
	chain := benchChain(8)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = chain.Map("seed")
	}
}

// BenchmarkReverse_Composed8 measures recursive reversal through an
// eight-leg composed chain.
func BenchmarkReverse_Composed8(b *testing.B) {
	chain := benchChain(8)
	forward := chain.Map("seed")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = morph.Reverse(chain, forward)
	}
}
