package bigint

import errs "github.com/elliptic1174/elligator/internal/errors"

// DivRem computes a = q*b + r with 0 <= |r| < |b| and sign(r) == sign(b)
// (floor-toward-negative-infinity division, matching Python's % rather than
// Go's native %), setting *q and *r and returning them. DivRem fails with
// errs.DivisionByZero if b is zero. q and r must not alias a or b or each
// other, mirroring Mul/Square's aliasing rule: the routine reads a.chunks
// and b.chunks throughout the long-division passes that build q and r.
func DivRem(q, r, a, b *BigInt) error {
	if q == r || q == a || q == b || r == a || r == b {
		panic(errs.New(errs.InvalidInput, "bigint: DivRem results may not alias operands or each other"))
	}
	if b.isZeroMagnitude() {
		return errs.New(errs.DivisionByZero, "bigint: division by zero")
	}

	var qMag, rMag BigInt
	switch {
	case a.isZeroMagnitude():
		qMag, rMag = Zero(), Zero()
	case magCompare(a, b) < 0:
		qMag = Zero()
		rMag = *a
		rMag.sign = 0
	case a.size == 1 && b.size == 1:
		av, bv := a.chunks[0], b.chunks[0]
		qMag = FromChunk(av/bv, 0)
		rMag = FromChunk(av%bv, 0)
	case b.size == 1:
		qMag, rMag = divBySingleChunk(a, b.chunks[0])
	default:
		qMag, rMag = divLarge(a, b)
	}

	qSign := a.sign ^ b.sign
	if qMag.isZeroMagnitude() {
		qSign = 0
	}

	if rMag.isZeroMagnitude() {
		*q = qMag
		q.sign = qSign
		*r = Zero()
		return nil
	}

	if a.sign != b.sign {
		// Truncating division (the shape every routine above computes)
		// rounds toward zero; adjust to floor rounding per the package's
		// Mod/DivRem contract: bump the quotient magnitude by one and
		// replace the remainder with |b| - rMag.
		one := FromChunk(1, 0)
		qMag = magAdd(&qMag, &one)
		qSign = 1
		rMag = magSub(b, &rMag)
	}

	rMag.sign = b.sign
	if rMag.isZeroMagnitude() {
		rMag.sign = 0
	}

	*q = qMag
	q.sign = qSign
	if q.isZeroMagnitude() {
		q.sign = 0
	}
	*r = rMag
	return nil
}

// divBySingleChunk divides the magnitude of a by the single-word divisor d,
// schoolbook long division one chunk at a time from the most significant
// end.
func divBySingleChunk(a *BigInt, d uint32) (qMag, rMag BigInt) {
	var q BigInt
	var rem uint64
	for i := a.size - 1; i >= 0; i-- {
		cur := rem<<ChunkBits | uint64(a.chunks[i])
		q.chunks[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	q.size = a.size
	pruneLeadingZeros(&q)
	return q, FromChunk(uint32(rem), 0)
}

// nlz32 returns the number of leading zero bits in a 32-bit word.
func nlz32(x uint32) uint {
	if x == 0 {
		return 32
	}
	n := uint(0)
	for x&0x80000000 == 0 {
		x <<= 1
		n++
	}
	return n
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1), the long
// division taught in "Hacker's Delight" chapter 9: normalize both operands
// so the divisor's top chunk has its high bit set, estimate each quotient
// chunk with a bounded over-estimate, correct the estimate down with the
// classic two-step rhat check, multiply-and-subtract, and add back a
// borrowed divisor on the rare case the estimate was still one too high.
func divLarge(a, b *BigInt) (qMag, rMag BigInt) {
	n := b.size
	m := a.size - n

	s := nlz32(b.chunks[n-1])

	// u holds the normalized dividend with one extra high chunk; v holds
	// the normalized divisor.
	u := make([]uint32, a.size+1)
	v := make([]uint32, n)

	if s == 0 {
		copy(u[:a.size], a.chunks[:a.size])
		copy(v, b.chunks[:n])
	} else {
		var carry uint32
		for i := 0; i < a.size; i++ {
			u[i] = a.chunks[i]<<s | carry
			carry = a.chunks[i] >> (32 - s)
		}
		u[a.size] = carry
		carry = 0
		for i := 0; i < n; i++ {
			v[i] = b.chunks[i]<<s | carry
			carry = b.chunks[i] >> (32 - s)
		}
	}
	if s == 0 {
		u[a.size] = 0
	}

	q := make([]uint32, m+1)
	const base = uint64(1) << 32

	for j := m; j >= 0; j-- {
		num := uint64(u[j+n])<<32 | uint64(u[j+n-1])
		qhat := num / uint64(v[n-1])
		rhat := num % uint64(v[n-1])

		for qhat >= base || qhat*uint64(v[n-2]) > rhat*base+uint64(u[j+n-2]) {
			qhat--
			rhat += uint64(v[n-1])
			if rhat >= base {
				break
			}
		}

		var carry uint64
		for i := 0; i < n; i++ {
			p := qhat * uint64(v[i])
			sub := int64(u[i+j]) - int64(carry) - int64(p&mask32)
			carry = p >> 32
			for sub < 0 {
				sub += int64(base)
				carry++
			}
			u[i+j] = uint32(sub)
		}
		sub := int64(u[j+n]) - int64(carry)
		topBorrow := false
		if sub < 0 {
			sub += int64(base)
			topBorrow = true
		}
		u[j+n] = uint32(sub)

		if topBorrow {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s2 := uint64(u[i+j]) + uint64(v[i]) + c
				u[i+j] = uint32(s2 & mask32)
				c = s2 >> 32
			}
			u[j+n] = uint32(uint64(u[j+n]) + c)
		}

		q[j] = uint32(qhat)
	}

	// Denormalize the remainder.
	var r BigInt
	if s == 0 {
		for i := 0; i < n; i++ {
			r.chunks[i] = u[i]
		}
	} else {
		for i := 0; i < n; i++ {
			lo := u[i] >> s
			var hi uint32
			if i+1 < len(u) {
				hi = u[i+1] << (32 - s)
			}
			r.chunks[i] = lo | hi
		}
	}
	r.size = n
	pruneLeadingZeros(&r)

	var qz BigInt
	qn := m + 1
	if qn > Capacity {
		qn = Capacity
	}
	copy(qz.chunks[:qn], q[:qn])
	qz.size = qn
	pruneLeadingZeros(&qz)

	return qz, r
}
