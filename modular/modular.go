package modular

import (
	"github.com/elliptic1174/elligator/bigint"
	"github.com/elliptic1174/elligator/internal/debug"
	errs "github.com/elliptic1174/elligator/internal/errors"
)

// Mod sets z to a reduced modulo m, 0 <= z < |m|, and returns z. It fails
// with errs.DivisionByZero if m is zero.
func Mod(z, a, m *bigint.BigInt) error {
	var q, r bigint.BigInt
	if err := bigint.DivRem(&q, &r, a, m); err != nil {
		return err
	}
	if r.Sign() < 0 {
		// DivRem's remainder carries m's sign; shift it into [0, |m|).
		var absM bigint.BigInt
		absM.Abs(m)
		r.Add(&r, &absM)
	}
	*z = r
	return nil
}

// AddMod sets z to (a+b) mod m and returns z.
func AddMod(z, a, b, m *bigint.BigInt) error {
	var sum bigint.BigInt
	sum.Add(a, b)
	return Mod(z, &sum, m)
}

// SubMod sets z to (a-b) mod m and returns z.
func SubMod(z, a, b, m *bigint.BigInt) error {
	var diff bigint.BigInt
	diff.Sub(a, b)
	return Mod(z, &diff, m)
}

// MulMod sets z to (a*b) mod m and returns z.
func MulMod(z, a, b, m *bigint.BigInt) error {
	var prod bigint.BigInt
	prod.Mul(a, b)
	return Mod(z, &prod, m)
}

// EgcdResult is the triple (G, X, Y) satisfying X*A + Y*B = G, where G is
// the greatest common divisor of A and B.
type EgcdResult struct {
	G, X, Y bigint.BigInt
}

// Egcd runs the iterative extended Euclidean algorithm on |a| and |b| in
// local working variables and returns the final gcd and Bezout
// coefficients, with X and Y negated where a or b is negative:
// old_r/r track the running remainders, old_s/s and old_t/t track the
// Bezout coefficients, the same shape as the textbook iterative
// presentation this package's long division is grounded on.
func Egcd(a, b *bigint.BigInt) EgcdResult {
	debug.Log("egcd(%s, %s)", a.String(), b.String())

	oldR, r := *a, *b
	oldR.Abs(&oldR)
	r.Abs(&r)

	oldS, s := bigint.FromChunk(1, 0), bigint.Zero()
	oldT, t := bigint.Zero(), bigint.FromChunk(1, 0)

	for !r.IsZero() {
		var q, rem bigint.BigInt
		// b == 0 cannot happen here: the loop guard ensures r != 0.
		_ = bigint.DivRem(&q, &rem, &oldR, &r)

		oldR, r = r, rem

		var qs, news bigint.BigInt
		qs.Mul(&q, &s)
		news.Sub(&oldS, &qs)
		oldS, s = s, news

		var qt, newt bigint.BigInt
		qt.Mul(&q, &t)
		newt.Sub(&oldT, &qt)
		oldT, t = t, newt
	}

	result := EgcdResult{G: oldR, X: oldS, Y: oldT}
	if a.Sign() < 0 {
		result.X.Neg(&result.X)
	}
	if b.Sign() < 0 {
		result.Y.Neg(&result.Y)
	}
	return result
}

// Inv sets z to the inverse of a modulo m and returns z. It fails with
// errs.NotInvertible if gcd(a, m) != 1.
func Inv(z, a, m *bigint.BigInt) error {
	var reducedA bigint.BigInt
	if err := Mod(&reducedA, a, m); err != nil {
		return err
	}
	res := Egcd(&reducedA, m)
	one := bigint.FromChunk(1, 0)
	if bigint.Compare(&res.G, &one) != 0 {
		return errs.Newf(errs.NotInvertible, "modular: %s has no inverse mod %s", a.String(), m.String())
	}
	return Mod(z, &res.X, m)
}

// Pow sets z to b^e mod m and returns z, using square-and-multiply over
// e's bits from least to most significant; e is assumed non-negative.
// Returns z = 1 mod m when e is zero.
func Pow(z, b, e, m *bigint.BigInt) error {
	var result bigint.BigInt
	if err := Mod(&result, &bigIntOne, m); err != nil {
		return err
	}

	var base bigint.BigInt
	if err := Mod(&base, b, m); err != nil {
		return err
	}

	if e.IsZero() {
		*z = result
		return nil
	}

	topBit := highestSetBit(e.Chunk(e.Size() - 1))
	for i := 0; i < e.Size(); i++ {
		word := e.Chunk(i)
		lastWord := i == e.Size()-1
		nbits := bigint.ChunkBits
		if lastWord {
			nbits = topBit + 1
		}
		for bit := 0; bit < nbits; bit++ {
			if word&(1<<uint(bit)) != 0 {
				var next bigint.BigInt
				if err := MulMod(&next, &result, &base, m); err != nil {
					return err
				}
				result = next
			}
			// The base is only squared again if a higher exponent bit
			// remains to consume it; squaring past the top set bit would
			// be wasted work, not incorrect, but there is no remaining
			// caller that needs it.
			if lastWord && bit == nbits-1 {
				break
			}
			var squared bigint.BigInt
			if err := MulMod(&squared, &base, &base, m); err != nil {
				return err
			}
			base = squared
		}
	}

	*z = result
	return nil
}

var bigIntOne = bigint.FromChunk(1, 0)

func highestSetBit(w uint32) int {
	h := 0
	for i := 0; i < 32; i++ {
		if w&(1<<uint(i)) != 0 {
			h = i
		}
	}
	return h
}

// Chi returns the quadratic residue character of t modulo m: 0 if t ≡ 0,
// +1 if t is a nonzero square mod m, -1 otherwise. m must be an odd prime
// for this to be meaningful; Chi does not itself verify primality.
func Chi(t, m *bigint.BigInt) (int, error) {
	var reducedT bigint.BigInt
	if err := Mod(&reducedT, t, m); err != nil {
		return 0, err
	}
	if reducedT.IsZero() {
		return 0, nil
	}

	mMinus1 := bigint.Zero()
	one := bigint.FromChunk(1, 0)
	mMinus1.Sub(m, &one)
	var exp bigint.BigInt
	exp.ShrBits(&mMinus1, 1)

	var p bigint.BigInt
	if err := Pow(&p, &reducedT, &exp, m); err != nil {
		return 0, err
	}

	if bigint.Compare(&p, &one) == 0 {
		return 1, nil
	}
	return -1, nil
}
