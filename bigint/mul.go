package bigint

import errs "github.com/elliptic1174/elligator/internal/errors"

// Mul sets z to a*b and returns z. Unlike Add/Sub, z must not alias a or b:
// the accumulation writes partial sums into z.chunks while still reading
// a.chunks/b.chunks, so aliasing would corrupt the inputs mid-pass. Mul
// panics if z == a or z == b.
//
// The 8x8-chunk case — the common shape of package curve1174's multiplies,
// since most reduced Curve1174 field elements occupy 8 chunks — is
// dispatched to mul8, a fully unrolled transcription of this same schoolbook
// algorithm with all 64 pairwise products precomputed into named scratch
// variables and no loop over i or j. Every other operand size falls back to
// mulGeneric, the loop form mul8 was derived from.
func (z *BigInt) Mul(a, b *BigInt) *BigInt {
	if z == a || z == b {
		panic(errs.New(errs.InvalidInput, "bigint: Mul result may not alias an operand"))
	}
	if a.size == 8 && b.size == 8 {
		return mul8(z, a, b)
	}
	return mulGeneric(z, a, b)
}

// mulGeneric is the reference schoolbook multiply, correct for any operand
// sizes up to Capacity. mul8 is a fixed-trip-count transcription of this
// same accumulation for the 8x8-chunk case; mul_test.go checks both paths
// against math/big.
func mulGeneric(z *BigInt, a, b *BigInt) *BigInt {
	var acc [2 * Capacity]uint64
	for i := 0; i < a.size; i++ {
		if a.chunks[i] == 0 {
			continue
		}
		av := uint64(a.chunks[i])
		var carry uint64
		for j := 0; j < b.size; j++ {
			p := av*uint64(b.chunks[j]) + acc[i+j] + carry
			acc[i+j] = p & mask32
			carry = p >> ChunkBits
		}
		k := i + b.size
		for carry != 0 {
			p := acc[k] + carry
			acc[k] = p & mask32
			carry = p >> ChunkBits
			k++
		}
	}

	var r BigInt
	n := a.size + b.size
	if n > Capacity {
		n = Capacity
	}
	for i := 0; i < n; i++ {
		r.chunks[i] = uint32(acc[i])
	}
	r.size = n
	r.sign = a.sign ^ b.sign
	pruneLeadingZeros(&r)
	if r.isZeroMagnitude() {
		r.sign = 0
	}
	*z = r
	return z
}
