package curve1174_test

import (
	"testing"

	"github.com/elliptic1174/elligator/bigint"
)

func TestPowQm1d2SquaresToOne(t *testing.T) {
	cur := mustCurve(t)
	one := mustHex(t, "1")
	for _, av := range []string{"2", "3", "12345", "deadbeefcafef00d"} {
		a := mustHex(t, av)
		p := cur.PowQm1d2(&a)
		var squared bigint.BigInt
		cur.SquareMod(&squared, &p)
		if bigint.Compare(&squared, &one) != 0 {
			t.Errorf("PowQm1d2(%s)^2 = %s, want 1 (Fermat's little theorem)", av, squared.String())
		}
	}
}

func TestPowQp1d4FourthPowerIsSquare(t *testing.T) {
	cur := mustCurve(t)
	for _, av := range []string{"2", "3", "98765"} {
		a := mustHex(t, av)
		root := cur.PowQp1d4(&a)

		var rootSq, rootFourth bigint.BigInt
		cur.SquareMod(&rootSq, &root)
		cur.SquareMod(&rootFourth, &rootSq)

		var aSquared bigint.BigInt
		cur.SquareMod(&aSquared, &a)

		if bigint.Compare(&rootFourth, &aSquared) != 0 {
			t.Errorf("PowQp1d4(%s)^4 = %s, want a^2 = %s", av, rootFourth.String(), aSquared.String())
		}
	}
}

func TestPowQm2IsInverse(t *testing.T) {
	cur := mustCurve(t)
	one := mustHex(t, "1")
	for _, av := range []string{"2", "7", "424242"} {
		a := mustHex(t, av)
		inv := cur.PowQm2(&a)
		var product bigint.BigInt
		cur.MulMod(&product, &a, &inv)
		if bigint.Compare(&product, &one) != 0 {
			t.Errorf("PowQm2(%s) is not a valid inverse: a*inv = %s", av, product.String())
		}
	}
}

func TestPowMatchesPowSmall(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "11")
	for _, e := range []uint64{0, 1, 2, 17, 255} {
		exp := bigint.FromChunk(uint32(e), 0)
		viaPow := cur.Pow(&a, &exp)
		viaSmall := cur.PowSmall(&a, e)
		if bigint.Compare(&viaPow, &viaSmall) != 0 {
			t.Errorf("Pow(a, %d) = %s, PowSmall = %s", e, viaPow.String(), viaSmall.String())
		}
	}
}

// TestPowLaddersMatchGenericPow recomputes (q-1)/2, (q+1)/4, and q-2 as
// plain BigInt values and drives them through the fully generic Pow, then
// checks each hand-fitted ladder (PowQm1d2, PowQp1d4, PowQm2) lands on the
// exact same result: the ladders are a different bit-sequencing of the
// same exponent, not a different exponent or a different algorithm.
func TestPowLaddersMatchGenericPow(t *testing.T) {
	cur := mustCurve(t)
	one := bigint.FromChunk(1, 0)
	two := bigint.FromChunk(2, 0)
	four := bigint.FromChunk(4, 0)

	var qm1, qp1 bigint.BigInt
	qm1.Sub(&cur.Q, &one)
	qp1.Add(&cur.Q, &one)

	var qm1d2, rem1 bigint.BigInt
	bigint.DivRem(&qm1d2, &rem1, &qm1, &two)

	var qp1d4, rem2 bigint.BigInt
	bigint.DivRem(&qp1d4, &rem2, &qp1, &four)

	var qm2 bigint.BigInt
	qm2.Sub(&cur.Q, &two)

	for _, av := range []string{"2", "3", "12345", "deadbeefcafef00d", "1"} {
		a := mustHex(t, av)

		wantQm1d2 := cur.Pow(&a, &qm1d2)
		gotQm1d2 := cur.PowQm1d2(&a)
		if bigint.Compare(&gotQm1d2, &wantQm1d2) != 0 {
			t.Errorf("PowQm1d2(%s) = %s, want Pow(a, (q-1)/2) = %s", av, gotQm1d2.String(), wantQm1d2.String())
		}

		wantQp1d4 := cur.Pow(&a, &qp1d4)
		gotQp1d4 := cur.PowQp1d4(&a)
		if bigint.Compare(&gotQp1d4, &wantQp1d4) != 0 {
			t.Errorf("PowQp1d4(%s) = %s, want Pow(a, (q+1)/4) = %s", av, gotQp1d4.String(), wantQp1d4.String())
		}

		wantQm2 := cur.Pow(&a, &qm2)
		gotQm2 := cur.PowQm2(&a)
		if bigint.Compare(&gotQm2, &wantQm2) != 0 {
			t.Errorf("PowQm2(%s) = %s, want Pow(a, q-2) = %s", av, gotQm2.String(), wantQm2.String())
		}
	}
}

func TestPowZeroExponentIsOne(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "123456")
	zero := bigint.Zero()
	one := mustHex(t, "1")

	got := cur.Pow(&a, &zero)
	if bigint.Compare(&got, &one) != 0 {
		t.Errorf("Pow(a, 0) = %s, want 1", got.String())
	}
}
