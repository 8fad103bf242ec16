package bigint_test

import (
	"math/big"
	"testing"

	"github.com/elliptic1174/elligator/bigint"
)

// toBig cross-checks a BigInt against the standard library's arbitrary
// precision type; it lives only in this test file so the main package
// never needs to import math/big.
func toBig(z *bigint.BigInt) *big.Int {
	out := new(big.Int)
	base := new(big.Int).SetUint64(uint64(1) << bigint.ChunkBits)
	for i := z.Size() - 1; i >= 0; i-- {
		out.Mul(out, base)
		out.Add(out, new(big.Int).SetUint64(uint64(z.Chunk(i))))
	}
	if z.Sign() < 0 {
		out.Neg(out)
	}
	return out
}

func TestFromHexRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"ff", "255"},
		{"100000000", "4294967296"},
		{"-2540be400", "-10000000000"},
	}
	for _, c := range cases {
		z, err := bigint.FromHex(c.in)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", c.in, err)
		}
		got := toBig(&z).String()
		if got != c.want {
			t.Errorf("FromHex(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFromHexErrors(t *testing.T) {
	cases := []string{"", "-", "xyz", "1" + stringsRepeat("f", 200)}
	for _, c := range cases {
		if _, err := bigint.FromHex(c); err == nil {
			t.Errorf("FromHex(%q): expected error, got none", c)
		}
	}
}

func stringsRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestIsZeroSignIndependent(t *testing.T) {
	pos, _ := bigint.FromHex("0")
	neg, _ := bigint.FromHex("-0")
	if !pos.IsZero() || !neg.IsZero() {
		t.Fatalf("expected both +0 and -0 to report IsZero")
	}
	if pos.Sign() != 0 || neg.Sign() != 0 {
		t.Fatalf("expected Sign() == 0 for both +0 and -0")
	}
}

func TestCopy(t *testing.T) {
	a, _ := bigint.FromHex("deadbeef")
	var b bigint.BigInt
	b.Copy(&a)
	if toBig(&b).Cmp(toBig(&a)) != 0 {
		t.Fatalf("Copy produced a different value")
	}
}

func TestRandomRespectsBounds(t *testing.T) {
	for _, n := range []int{-5, 0, 1, 8, bigint.Capacity, bigint.Capacity + 10} {
		z := bigint.Random(n)
		if z.Size() < 1 || z.Size() > bigint.Capacity {
			t.Fatalf("Random(%d): size %d out of bounds", n, z.Size())
		}
	}
}
