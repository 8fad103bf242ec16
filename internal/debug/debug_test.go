package debug_test

import (
	"testing"

	"github.com/elliptic1174/elligator/internal/debug"
)

func BenchmarkLogStatic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		debug.Log("static string")
	}
}

func BenchmarkLogFormatted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		debug.Log("reduced %d chunks to regime %d", 16, 2)
	}
}
