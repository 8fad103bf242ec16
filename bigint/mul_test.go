package bigint_test

import (
	"math/big"
	"testing"

	"github.com/elliptic1174/elligator/bigint"
)

func TestMulAgainstMathBig(t *testing.T) {
	vals := []string{
		"0", "1", "-1", "2", "-2", "ffffffff", "-ffffffff",
		"100000000", "123456789abcdef0", "-123456789abcdef0",
		"ffffffffffffffffffffffffffffffff",
	}
	for _, av := range vals {
		for _, bv := range vals {
			a, b := mustHex(t, av), mustHex(t, bv)
			var z bigint.BigInt
			z.Mul(&a, &b)

			want := new(big.Int).Mul(toBig(&a), toBig(&b))
			if toBig(&z).Cmp(want) != 0 {
				t.Errorf("Mul(%s, %s) = %s, want %s", av, bv, toBig(&z), want)
			}
		}
	}
}

func TestMulForbidsAliasing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Mul to panic when z aliases an operand")
		}
	}()
	a := mustHex(t, "3")
	a.Mul(&a, &a)
}

func TestMul8ChunkDispatch(t *testing.T) {
	// Both operands span exactly 8 chunks, so Mul routes through mul8
	// rather than mulGeneric; confirm the unrolled path agrees with
	// math/big across a few distinct 8-chunk magnitudes.
	avals := []string{
		"f123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"f000000000000000000000000000000000000000000000000000000000000001",
	}
	bvals := []string{
		"fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210",
		"f000000000000000000000000000000000000000000000000000000000000001",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}
	for i := range avals {
		a, b := mustHex(t, avals[i]), mustHex(t, bvals[i])
		if a.Size() != 8 || b.Size() != 8 {
			t.Fatalf("test vector %d not 8 chunks: a=%d b=%d", i, a.Size(), b.Size())
		}

		var z bigint.BigInt
		z.Mul(&a, &b)

		want := new(big.Int).Mul(toBig(&a), toBig(&b))
		if toBig(&z).Cmp(want) != 0 {
			t.Errorf("mul8(%s, %s) = %s, want %s", avals[i], bvals[i], toBig(&z), want)
		}
	}
}

func TestMulCurve1174Scale(t *testing.T) {
	// Two values close to the 251-bit field size, the largest single
	// products this engine's reduction layer ever has to fold back down.
	a := mustHex(t, "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff5")
	b := mustHex(t, "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff5")
	var z bigint.BigInt
	z.Mul(&a, &b)

	want := new(big.Int).Mul(toBig(&a), toBig(&b))
	if toBig(&z).Cmp(want) != 0 {
		t.Fatalf("Mul at field scale mismatched math/big")
	}
}
