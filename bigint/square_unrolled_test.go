package bigint_test

import (
	"math/big"
	"testing"

	"github.com/elliptic1174/elligator/bigint"
)

// hexOfChunks returns a hex string with exactly n chunks (8 hex digits per
// 32-bit chunk), leading digit nonzero so the resulting BigInt's size is
// exactly n after construction.
func hexOfChunks(n int) string {
	digits := "123456789abcdef0fedcba9876543210"
	s := ""
	for len(s) < n*8 {
		s += digits
	}
	s = s[:n*8]
	// Force a nonzero leading nibble.
	return "f" + s[1:]
}

// TestSquareUnrolledAgainstMathBig exercises square1..square8 by size,
// checking each result Square dispatches to the unrolled variant against
// math/big.
func TestSquareUnrolledAgainstMathBig(t *testing.T) {
	for n := 1; n <= 8; n++ {
		hv := hexOfChunks(n)
		a := mustHex(t, hv)
		if a.Size() != n {
			t.Fatalf("test vector for n=%d has size %d, want %d", n, a.Size(), n)
		}

		var z bigint.BigInt
		z.Square(&a)

		want := new(big.Int).Mul(toBig(&a), toBig(&a))
		if toBig(&z).Cmp(want) != 0 {
			t.Errorf("Square at size %d = %s, want %s", n, toBig(&z), want)
		}
	}
}

// TestSquareUnrolledZeroChunks checks squareN's carry-safe accumulation on
// operands whose chunks alternate between all-ones and zero, top chunk
// nonzero, so every size from 2 up has zero chunks below the top, not just
// the densely-packed case above.
func TestSquareUnrolledZeroChunks(t *testing.T) {
	for n := 1; n <= 8; n++ {
		var hv string
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				hv += "ffffffff"
			} else {
				hv += "00000000"
			}
		}
		a := mustHex(t, hv)

		var z bigint.BigInt
		z.Square(&a)

		want := new(big.Int).Mul(toBig(&a), toBig(&a))
		if toBig(&z).Cmp(want) != 0 {
			t.Errorf("Square with interior zero chunks at size %d = %s, want %s", n, toBig(&z), want)
		}
	}
}

// TestSquareUnrolledAllOnes checks the maximum-magnitude case at each
// unrolled size, where every pairwise product is as large as possible and
// every positional column accumulates the most carries it ever will.
func TestSquareUnrolledAllOnes(t *testing.T) {
	for n := 1; n <= 8; n++ {
		hv := ""
		for i := 0; i < n; i++ {
			hv += "ffffffff"
		}
		a := mustHex(t, hv)

		var z bigint.BigInt
		z.Square(&a)

		want := new(big.Int).Mul(toBig(&a), toBig(&a))
		if toBig(&z).Cmp(want) != 0 {
			t.Errorf("Square of all-ones at size %d = %s, want %s", n, toBig(&z), want)
		}
	}
}
