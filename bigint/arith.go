package bigint

// magCompare compares |a| and |b|, ignoring sign. Zero is not special-cased
// here; callers needing the "zero is +0" rule use Compare.
func magCompare(a, b *BigInt) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := a.size - 1; i >= 0; i-- {
		if a.chunks[i] != b.chunks[i] {
			if a.chunks[i] < b.chunks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Compare returns -1, 0, or 1 per ordinary integer order. Zero compares
// equal regardless of either operand's sign bit.
func Compare(a, b *BigInt) int {
	az, bz := a.isZeroMagnitude(), b.isZeroMagnitude()
	switch {
	case az && bz:
		return 0
	case az:
		if b.sign == 1 {
			return 1
		}
		return -1
	case bz:
		if a.sign == 1 {
			return -1
		}
		return 1
	case a.sign != b.sign:
		if a.sign == 1 {
			return -1
		}
		return 1
	}
	c := magCompare(a, b)
	if a.sign == 1 {
		return -c
	}
	return c
}

// magAdd computes |a|+|b| as a non-negative BigInt.
func magAdd(a, b *BigInt) BigInt {
	if b.size > a.size {
		a, b = b, a
	}
	var z BigInt
	var carry uint64
	i := 0
	for ; i < b.size; i++ {
		s := uint64(a.chunks[i]) + uint64(b.chunks[i]) + carry
		z.chunks[i] = uint32(s & mask32)
		carry = s >> ChunkBits
	}
	for ; i < a.size; i++ {
		s := uint64(a.chunks[i]) + carry
		z.chunks[i] = uint32(s & mask32)
		carry = s >> ChunkBits
	}
	if carry != 0 && i < Capacity {
		z.chunks[i] = uint32(carry)
		i++
	}
	z.size = i
	if z.size == 0 {
		z.size = 1
	}
	pruneLeadingZeros(&z)
	return z
}

// magSub computes |a|-|b| assuming magCompare(a, b) >= 0.
func magSub(a, b *BigInt) BigInt {
	var z BigInt
	var borrow uint64
	for i := 0; i < a.size; i++ {
		var bv uint64
		if i < b.size {
			bv = uint64(b.chunks[i])
		}
		av := uint64(a.chunks[i])
		d := av - bv - borrow
		if av < bv+borrow {
			d += radix
			borrow = 1
		} else {
			borrow = 0
		}
		z.chunks[i] = uint32(d & mask32)
	}
	z.size = a.size
	pruneLeadingZeros(&z)
	return z
}

func magAddOne(a *BigInt) BigInt {
	one := FromChunk(1, 0)
	return magAdd(a, &one)
}

// Neg sets z to -a and returns z.
func (z *BigInt) Neg(a *BigInt) *BigInt {
	r := *a
	r.sign ^= 1
	*z = r
	return z
}

// Abs sets z to |a| and returns z.
func (z *BigInt) Abs(a *BigInt) *BigInt {
	r := *a
	r.sign = 0
	*z = r
	return z
}

// Add sets z to a+b and returns z. a and b may alias z.
func (z *BigInt) Add(a, b *BigInt) *BigInt {
	var r BigInt
	if a.sign == b.sign {
		r = magAdd(a, b)
		r.sign = a.sign
	} else if magCompare(a, b) >= 0 {
		r = magSub(a, b)
		r.sign = a.sign
	} else {
		r = magSub(b, a)
		r.sign = b.sign
	}
	if r.isZeroMagnitude() {
		r.sign = 0
	}
	*z = r
	return z
}

// Sub sets z to a-b and returns z. a and b may alias z.
func (z *BigInt) Sub(a, b *BigInt) *BigInt {
	nb := *b
	nb.sign ^= 1
	return z.Add(a, &nb)
}

// ShlBits sets z to a shifted left by n bits (n < ChunkBits*Capacity) and
// returns whether the true result would have exceeded Capacity chunks. The
// returned flag is purely diagnostic, per spec.md §4.B: z still holds the
// truncated result, and no caller in this engine treats it as failure.
func (z *BigInt) ShlBits(a *BigInt, n uint) (overflow bool) {
	chunkShift := int(n / ChunkBits)
	bitShift := n % ChunkBits

	var r BigInt
	lastWritten := -1
	var carry uint64
	for i := 0; i < a.size; i++ {
		idx := i + chunkShift
		v := uint64(a.chunks[i])
		if bitShift != 0 {
			v = v<<bitShift | carry
			carry = v >> ChunkBits
		}
		if idx < Capacity {
			r.chunks[idx] = uint32(v & mask32)
			if idx > lastWritten {
				lastWritten = idx
			}
		} else {
			overflow = true
		}
	}
	if carry != 0 {
		idx := a.size + chunkShift
		if idx < Capacity {
			r.chunks[idx] = uint32(carry & mask32)
			if idx > lastWritten {
				lastWritten = idx
			}
		} else {
			overflow = true
		}
	}
	if lastWritten < 0 {
		r.size = 1
	} else {
		r.size = lastWritten + 1
	}
	r.sign = a.sign
	pruneLeadingZeros(&r)
	if r.isZeroMagnitude() {
		r.sign = 0
	}
	*z = r
	return overflow
}

// shrMagnitude computes floor(|a| / 2^n) truncating the discarded low bits,
// reporting whether any discarded bit was set (needed by ShrBits to apply
// floor rounding for negative operands).
func shrMagnitude(a *BigInt, n uint) (mag BigInt, remNonZero bool) {
	chunkShift := int(n / ChunkBits)
	bitShift := n % ChunkBits

	if chunkShift >= a.size {
		return Zero(), !a.isZeroMagnitude()
	}

	for i := 0; i < chunkShift; i++ {
		if a.chunks[i] != 0 {
			remNonZero = true
			break
		}
	}
	if !remNonZero && bitShift != 0 {
		if a.chunks[chunkShift]&uint32(1<<bitShift-1) != 0 {
			remNonZero = true
		}
	}

	newSize := a.size - chunkShift
	var z BigInt
	if bitShift == 0 {
		for i := 0; i < newSize; i++ {
			z.chunks[i] = a.chunks[i+chunkShift]
		}
	} else {
		for i := 0; i < newSize; i++ {
			lo := a.chunks[i+chunkShift] >> bitShift
			var hi uint32
			if i+chunkShift+1 < a.size {
				hi = a.chunks[i+chunkShift+1] << (ChunkBits - bitShift)
			}
			z.chunks[i] = lo | hi
		}
	}
	z.size = newSize
	pruneLeadingZeros(&z)
	return z, remNonZero
}

// ShrBits sets z to a shifted right by n bits and returns z, implementing
// floor(a / 2^n) for both signs: for non-negative a this is a plain
// truncating shift, for negative a it rounds toward -infinity by adding one
// to the shifted magnitude whenever a nonzero bit was discarded.
func (z *BigInt) ShrBits(a *BigInt, n uint) *BigInt {
	mag, remNonZero := shrMagnitude(a, n)
	if a.sign == 1 && remNonZero {
		mag = magAddOne(&mag)
	}
	mag.sign = a.sign
	if mag.isZeroMagnitude() {
		mag.sign = 0
	}
	*z = mag
	return z
}
