package bigint

import errs "github.com/elliptic1174/elligator/internal/errors"

// addScaledInto adds av*w to acc[pos] with carry propagation into the
// higher slots of acc, the same column-add primitive Mul's inner loop uses.
// Each slot of acc always holds a value < radix between calls, so a single
// 64-bit addition here can never overflow.
func addScaledInto(acc *[2 * Capacity]uint64, pos int, av, w uint64) {
	p := av*w + acc[pos] + 0
	acc[pos] = p & mask32
	carry := p >> ChunkBits
	k := pos + 1
	for carry != 0 {
		s := acc[k] + carry
		acc[k] = s & mask32
		carry = s >> ChunkBits
		k++
	}
}

// addPartialInto adds an already-computed 64-bit partial product p into
// acc[pos], propagating carry into the higher slots exactly like
// addScaledInto. The unrolled square/mul variants in square_unrolled.go and
// mul8.go precompute every pairwise product into its own named variable
// first (per spec.md's "precompute all pairwise products into named scratch
// variables"), then feed each one through this primitive one at a time:
// summing several such products directly into a plain uint64 column before
// reducing would overflow (up to eight ~64-bit products land in some
// columns of the 8-chunk case), so the carry must be extracted after every
// single addition rather than once per column.
func addPartialInto(acc *[2 * Capacity]uint64, pos int, p uint64) {
	s := p + acc[pos]
	acc[pos] = s & mask32
	carry := s >> ChunkBits
	k := pos + 1
	for carry != 0 {
		s := acc[k] + carry
		acc[k] = s & mask32
		carry = s >> ChunkBits
		k++
	}
}

// Square sets z to a*a and returns z. z must not alias a, for the same
// reason Mul forbids aliasing: the diagonal accumulation reads a.chunks
// while writing z.chunks.
//
// The diagonal optimization halves the number of single-word products
// relative to calling Mul(a, a): for i != j, a[i]*a[j] and a[j]*a[i] are the
// same product, so it is added into the accumulator twice instead of being
// computed twice. For operands of 1..8 chunks (32..256 bits) — every size a
// Curve1174 field element takes between operations — a fully unrolled,
// loop-free variant handles the squaring directly; square sizes beyond that
// fall back to the generic diagonal loop, which remains the reference
// implementation every unrolled variant was derived from.
func (z *BigInt) Square(a *BigInt) *BigInt {
	if z == a {
		panic(errs.New(errs.InvalidInput, "bigint: Square result may not alias its operand"))
	}
	switch a.size {
	case 1:
		return square1(z, a)
	case 2:
		return square2(z, a)
	case 3:
		return square3(z, a)
	case 4:
		return square4(z, a)
	case 5:
		return square5(z, a)
	case 6:
		return square6(z, a)
	case 7:
		return square7(z, a)
	case 8:
		return square8(z, a)
	default:
		return squareGeneric(z, a)
	}
}

// squareGeneric is the reference diagonal-squaring implementation, correct
// for any a.size up to Capacity. It is what every unrolled squareN variant
// below is a fixed-trip-count transcription of; square_unrolled_test.go
// checks each unrolled size against math/big.
func squareGeneric(z *BigInt, a *BigInt) *BigInt {
	var acc [2 * Capacity]uint64

	for i := 0; i < a.size; i++ {
		av := uint64(a.chunks[i])
		if av == 0 {
			continue
		}

		// Off-diagonal terms a[i]*a[j], j > i: add twice, since a[i]*a[j]
		// and a[j]*a[i] are the same product and both belong at i+j.
		for j := i + 1; j < a.size; j++ {
			w := uint64(a.chunks[j])
			addScaledInto(&acc, i+j, av, w)
			addScaledInto(&acc, i+j, av, w)
		}

		// Diagonal term a[i]*a[i], added once.
		addScaledInto(&acc, 2*i, av, av)
	}

	var r BigInt
	n := 2 * a.size
	if n > Capacity {
		n = Capacity
	}
	for i := 0; i < n; i++ {
		r.chunks[i] = uint32(acc[i])
	}
	r.size = n
	r.sign = 0
	pruneLeadingZeros(&r)
	*z = r
	return z
}
