package curve1174_test

import (
	"testing"

	"github.com/elliptic1174/elligator/bigint"
	"github.com/elliptic1174/elligator/curve1174"
)

func mustCurve(t *testing.T) *curve1174.Curve {
	t.Helper()
	cur, err := curve1174.InitCurve1174()
	if err != nil {
		t.Fatalf("InitCurve1174: %v", err)
	}
	return cur
}

func mustHex(t *testing.T, s string) bigint.BigInt {
	t.Helper()
	z, err := bigint.FromHex(s)
	if err != nil {
		t.Fatalf("FromHex(%q): %v", s, err)
	}
	return z
}

func TestReduceConcreteScenario(t *testing.T) {
	cur := mustCurve(t)
	in := mustHex(t, "CF8E255C938ED477789723C31E7376618974944FD1A3DBD0394BCA5818A16E9D")
	want := mustHex(t, "078E255C938ED477789723C31E7376618974944FD1A3DBD0394BCA5818A16F7E")

	got := cur.Reduce(&in)
	if bigint.Compare(&got, &want) != 0 {
		t.Errorf("Reduce = %s, want %s", got.String(), want.String())
	}
}

func TestMulModConcreteScenario(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "0195C093A4A51819C08C06E57C282ED0860A30625DE4254C1638CFBCFEBB2E8D")
	b := mustHex(t, "05B3C6D6F1A98765606EACDAAE185A65F0B95A94C2B939F8D060DE2079C669E1")
	want := mustHex(t, "049D6974B07A3EC152F17380C6C4AD33F6D97BB72EE4771F4BFB7A50338B96CF")

	var z bigint.BigInt
	cur.MulMod(&z, &a, &b)
	if bigint.Compare(&z, &want) != 0 {
		t.Errorf("MulMod = %s, want %s", z.String(), want.String())
	}
}

func TestInvFermatConcreteScenario(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "076101CAD986E75478DAAD160")
	want := mustHex(t, "06E590E98D1F28843F19A108DF2153AEC5901C39F34D68A1FE43C08B8F2B75DE")

	inv, err := cur.InvFermat(&a)
	if err != nil {
		t.Fatalf("InvFermat: %v", err)
	}
	if bigint.Compare(&inv, &want) != 0 {
		t.Errorf("InvFermat = %s, want %s", inv.String(), want.String())
	}
}

func TestInvFermatRoundTrip(t *testing.T) {
	cur := mustCurve(t)
	one := mustHex(t, "1")
	for _, av := range []string{"2", "3", "1000", "deadbeef"} {
		a := mustHex(t, av)
		inv, err := cur.InvFermat(&a)
		if err != nil {
			t.Fatalf("InvFermat(%s): %v", av, err)
		}
		var product bigint.BigInt
		cur.MulMod(&product, &a, &inv)
		if bigint.Compare(&product, &one) != 0 {
			t.Errorf("a * inv(a) = %s, want 1 for a=%s", product.String(), av)
		}
	}
}

func TestInvFermatZeroFails(t *testing.T) {
	cur := mustCurve(t)
	zero := bigint.Zero()
	if _, err := cur.InvFermat(&zero); err == nil {
		t.Fatal("expected NotInvertible error for 0")
	}
}

func TestReduceAlreadyInRange(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "42")
	got := cur.Reduce(&a)
	if bigint.Compare(&got, &a) != 0 {
		t.Errorf("Reduce should be a no-op for values already < q: got %s", got.String())
	}
}

func TestReduceNegative(t *testing.T) {
	cur := mustCurve(t)
	neg := mustHex(t, "-5")
	got := cur.Reduce(&neg)

	var want bigint.BigInt
	five := mustHex(t, "5")
	want.Sub(&cur.Q, &five)
	if bigint.Compare(&got, &want) != 0 {
		t.Errorf("Reduce(-5) = %s, want q-5 = %s", got.String(), want.String())
	}
}

func TestAddSubModIdentities(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "123456789abcdef0")
	zero := bigint.Zero()

	var sum bigint.BigInt
	cur.AddMod(&sum, &a, &zero)
	if bigint.Compare(&sum, &a) != 0 {
		t.Errorf("AddMod(a, 0) = %s, want %s", sum.String(), a.String())
	}

	var diff bigint.BigInt
	cur.SubMod(&diff, &a, &a)
	if !diff.IsZero() {
		t.Errorf("SubMod(a, a) = %s, want 0", diff.String())
	}
}

func TestSquareModMatchesMulMod(t *testing.T) {
	cur := mustCurve(t)
	a := mustHex(t, "fedcba9876543210fedcba9876543210")
	var sq, mul bigint.BigInt
	cur.SquareMod(&sq, &a)
	cur.MulMod(&mul, &a, &a)
	if bigint.Compare(&sq, &mul) != 0 {
		t.Errorf("SquareMod(a) = %s, MulMod(a,a) = %s", sq.String(), mul.String())
	}
}

func TestChiProperties(t *testing.T) {
	cur := mustCurve(t)
	zero := bigint.Zero()
	if got := cur.Chi(&zero); got != 0 {
		t.Errorf("Chi(0) = %d, want 0", got)
	}

	a := mustHex(t, "123456789")
	var asq bigint.BigInt
	cur.SquareMod(&asq, &a)
	if got := cur.Chi(&asq); got != 1 {
		t.Errorf("Chi(a^2) = %d, want 1", got)
	}

	b := mustHex(t, "987654321")
	ca, cb := cur.Chi(&a), cur.Chi(&b)
	var ab bigint.BigInt
	cur.MulMod(&ab, &a, &b)
	cab := cur.Chi(&ab)
	if cab != ca*cb {
		t.Errorf("Chi(a*b) = %d, want Chi(a)*Chi(b) = %d", cab, ca*cb)
	}
}

func TestCompareToQAndLtAQ(t *testing.T) {
	cur := mustCurve(t)
	small := mustHex(t, "1")
	if !cur.LtAQ(&small) {
		t.Error("LtAQ(1) should be true")
	}
	if cur.CompareToQ(&cur.Q) != 0 {
		t.Error("CompareToQ(q) should be 0")
	}
	if cur.LtAQ(&cur.Q) {
		t.Error("LtAQ(q) should be false")
	}
}
