package curve1174

import "github.com/elliptic1174/elligator/bigint"

const twoFiftySixModQ = 288

// Reduce folds any value representable in a BigInt (up to 2*q^2*288 < 2^512
// in magnitude) back into [0, q). It never fails: an input this large only
// ever arises from a single curve1174 multiply or square, both of which are
// bounded well inside that range.
//
// Three regimes, cheapest first:
//
//  1. magnitude >= 2^256 (more than 8 payload chunks): split into a high
//     half H (chunks 8 and up) and low half L (chunks 0..7). Because
//     2^256 ≡ twoFiftySixModQ (mod q), the value is congruent to
//     twoFiftySixModQ*H + L, which has far fewer chunks; fold and repeat.
//  2. magnitude in [q, 2^256): locate the unique multiple i*q <= magnitude
//     < (i+1)*q from the 33-entry precomputed table and subtract it.
//  3. magnitude already in [0, q): nothing to do.
//
// A negative input is reduced by magnitude and then reflected to q - r.
func (cur *Curve) Reduce(a *bigint.BigInt) bigint.BigInt {
	neg := a.Sign() < 0
	var mag bigint.BigInt
	mag.Abs(a)

	for mag.Size() > 8 {
		hi, lo := splitAt256(&mag)
		scaled := bigint.FromChunk(twoFiftySixModQ, 0)
		var scaledHi bigint.BigInt
		scaledHi.Mul(&hi, &scaled)
		var sum bigint.BigInt
		sum.Add(&scaledHi, &lo)
		mag = sum
	}

	if bigint.Compare(&mag, &cur.Q) >= 0 {
		i := cur.locateMultiple(&mag)
		if i > 0 {
			var reduced bigint.BigInt
			reduced.Sub(&mag, &cur.multiples[i-1])
			mag = reduced
		}
	}

	if neg && !mag.IsZero() {
		var r bigint.BigInt
		r.Sub(&cur.Q, &mag)
		mag = r
	}
	return mag
}

// splitAt256 splits the magnitude a (assumed non-negative) into a = hi*2^256 + lo
// with 0 <= lo < 2^256.
func splitAt256(a *bigint.BigInt) (hi, lo bigint.BigInt) {
	hi.ShrBits(a, 256)
	var hiShifted bigint.BigInt
	hiShifted.ShlBits(&hi, 256)
	lo.Sub(a, &hiShifted)
	return hi, lo
}

// locateMultiple returns the count of table entries <= mag, i.e. the
// largest i in [0, multiplesCount] such that i == 0 or
// cur.multiples[i-1] <= mag. mag is assumed to already be < multiples[32].
func (cur *Curve) locateMultiple(mag *bigint.BigInt) int {
	lo, hi := 0, multiplesCount
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if bigint.Compare(&cur.multiples[mid-1], mag) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// CompareToQ compares a against the field modulus, returning the same
// negative/zero/positive convention as bigint.Compare.
func (cur *Curve) CompareToQ(a *bigint.BigInt) int {
	return bigint.Compare(a, &cur.Q)
}

// LtAQ reports whether a < q.
func (cur *Curve) LtAQ(a *bigint.BigInt) bool {
	return cur.CompareToQ(a) < 0
}

// AddMod sets z to (a+b) mod q and returns z.
func (cur *Curve) AddMod(z, a, b *bigint.BigInt) *bigint.BigInt {
	var sum bigint.BigInt
	sum.Add(a, b)
	*z = cur.Reduce(&sum)
	return z
}

// SubMod sets z to (a-b) mod q and returns z.
func (cur *Curve) SubMod(z, a, b *bigint.BigInt) *bigint.BigInt {
	var diff bigint.BigInt
	diff.Sub(a, b)
	*z = cur.Reduce(&diff)
	return z
}

// MulMod sets z to (a*b) mod q and returns z.
func (cur *Curve) MulMod(z, a, b *bigint.BigInt) *bigint.BigInt {
	var prod bigint.BigInt
	prod.Mul(a, b)
	*z = cur.Reduce(&prod)
	return z
}

// SquareMod sets z to a^2 mod q and returns z.
func (cur *Curve) SquareMod(z, a *bigint.BigInt) *bigint.BigInt {
	var sq bigint.BigInt
	sq.Square(a)
	*z = cur.Reduce(&sq)
	return z
}
