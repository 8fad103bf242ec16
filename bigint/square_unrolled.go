package bigint

// The eight functions below are the fully unrolled diagonal-squaring
// variants spec.md §4.C calls for: one per operand size from 1 to 8 chunks
// (32 to 256 bits), each precomputing every pairwise product a[i]*a[j] into
// its own named variable and then folding the products into the result
// through addPartialInto's carry-safe accumulation, with no loop over i or
// j. Square dispatches to the matching squareN for any operand in this
// range; squareGeneric in square.go remains the reference for larger
// operands and is what these were derived from. A vectorized variant
// sharing the same precomputed-product list is the only piece spec.md
// leaves optional (the scalar path here is the required reference), and is
// not implemented.

// square1 is the fully unrolled diagonal-squaring reference for a
// 1-chunk (32-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*1-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square1(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])

	p00 := a0 * a0

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)

	var r BigInt
	n := 2
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

// square2 is the fully unrolled diagonal-squaring reference for a
// 2-chunk (64-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*2-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square2(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])

	p00 := a0 * a0
	p11 := a1 * a1
	p01 := a0 * a1

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)

	var r BigInt
	n := 4
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

// square3 is the fully unrolled diagonal-squaring reference for a
// 3-chunk (96-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*3-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square3(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p01 := a0 * a1
	p02 := a0 * a2
	p12 := a1 * a2

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)

	var r BigInt
	n := 6
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

// square4 is the fully unrolled diagonal-squaring reference for a
// 4-chunk (128-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*4-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square4(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p33 := a3 * a3
	p01 := a0 * a1
	p02 := a0 * a2
	p03 := a0 * a3
	p12 := a1 * a2
	p13 := a1 * a3
	p23 := a2 * a3

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 5, p23)

	var r BigInt
	n := 8
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

// square5 is the fully unrolled diagonal-squaring reference for a
// 5-chunk (160-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*5-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square5(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])
	a4 := uint64(a.chunks[4])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p33 := a3 * a3
	p44 := a4 * a4
	p01 := a0 * a1
	p02 := a0 * a2
	p03 := a0 * a3
	p04 := a0 * a4
	p12 := a1 * a2
	p13 := a1 * a3
	p14 := a1 * a4
	p23 := a2 * a3
	p24 := a2 * a4
	p34 := a3 * a4

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 8, p44)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 7, p34)

	var r BigInt
	n := 10
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

// square6 is the fully unrolled diagonal-squaring reference for a
// 6-chunk (192-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*6-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square6(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])
	a4 := uint64(a.chunks[4])
	a5 := uint64(a.chunks[5])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p33 := a3 * a3
	p44 := a4 * a4
	p55 := a5 * a5
	p01 := a0 * a1
	p02 := a0 * a2
	p03 := a0 * a3
	p04 := a0 * a4
	p05 := a0 * a5
	p12 := a1 * a2
	p13 := a1 * a3
	p14 := a1 * a4
	p15 := a1 * a5
	p23 := a2 * a3
	p24 := a2 * a4
	p25 := a2 * a5
	p34 := a3 * a4
	p35 := a3 * a5
	p45 := a4 * a5

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 8, p44)
	addPartialInto(&acc, 10, p55)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 9, p45)

	var r BigInt
	n := 12
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

// square7 is the fully unrolled diagonal-squaring reference for a
// 7-chunk (224-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*7-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square7(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])
	a4 := uint64(a.chunks[4])
	a5 := uint64(a.chunks[5])
	a6 := uint64(a.chunks[6])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p33 := a3 * a3
	p44 := a4 * a4
	p55 := a5 * a5
	p66 := a6 * a6
	p01 := a0 * a1
	p02 := a0 * a2
	p03 := a0 * a3
	p04 := a0 * a4
	p05 := a0 * a5
	p06 := a0 * a6
	p12 := a1 * a2
	p13 := a1 * a3
	p14 := a1 * a4
	p15 := a1 * a5
	p16 := a1 * a6
	p23 := a2 * a3
	p24 := a2 * a4
	p25 := a2 * a5
	p26 := a2 * a6
	p34 := a3 * a4
	p35 := a3 * a5
	p36 := a3 * a6
	p45 := a4 * a5
	p46 := a4 * a6
	p56 := a5 * a6

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 8, p44)
	addPartialInto(&acc, 10, p55)
	addPartialInto(&acc, 12, p66)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 6, p06)
	addPartialInto(&acc, 6, p06)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 7, p16)
	addPartialInto(&acc, 7, p16)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 8, p26)
	addPartialInto(&acc, 8, p26)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 9, p36)
	addPartialInto(&acc, 9, p36)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 10, p46)
	addPartialInto(&acc, 10, p46)
	addPartialInto(&acc, 11, p56)
	addPartialInto(&acc, 11, p56)

	var r BigInt
	n := 14
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

// square8 is the fully unrolled diagonal-squaring reference for a
// 8-chunk (256-bit) operand: every pairwise product a[i]*a[j] is
// precomputed into its own named variable, then folded into the 2*8-chunk
// result with addPartialInto's carry-safe accumulation, in a fixed
// sequence with no loop over i or j.
func square8(z *BigInt, a *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])
	a4 := uint64(a.chunks[4])
	a5 := uint64(a.chunks[5])
	a6 := uint64(a.chunks[6])
	a7 := uint64(a.chunks[7])

	p00 := a0 * a0
	p11 := a1 * a1
	p22 := a2 * a2
	p33 := a3 * a3
	p44 := a4 * a4
	p55 := a5 * a5
	p66 := a6 * a6
	p77 := a7 * a7
	p01 := a0 * a1
	p02 := a0 * a2
	p03 := a0 * a3
	p04 := a0 * a4
	p05 := a0 * a5
	p06 := a0 * a6
	p07 := a0 * a7
	p12 := a1 * a2
	p13 := a1 * a3
	p14 := a1 * a4
	p15 := a1 * a5
	p16 := a1 * a6
	p17 := a1 * a7
	p23 := a2 * a3
	p24 := a2 * a4
	p25 := a2 * a5
	p26 := a2 * a6
	p27 := a2 * a7
	p34 := a3 * a4
	p35 := a3 * a5
	p36 := a3 * a6
	p37 := a3 * a7
	p45 := a4 * a5
	p46 := a4 * a6
	p47 := a4 * a7
	p56 := a5 * a6
	p57 := a5 * a7
	p67 := a6 * a7

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 8, p44)
	addPartialInto(&acc, 10, p55)
	addPartialInto(&acc, 12, p66)
	addPartialInto(&acc, 14, p77)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 6, p06)
	addPartialInto(&acc, 6, p06)
	addPartialInto(&acc, 7, p07)
	addPartialInto(&acc, 7, p07)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 7, p16)
	addPartialInto(&acc, 7, p16)
	addPartialInto(&acc, 8, p17)
	addPartialInto(&acc, 8, p17)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 8, p26)
	addPartialInto(&acc, 8, p26)
	addPartialInto(&acc, 9, p27)
	addPartialInto(&acc, 9, p27)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 9, p36)
	addPartialInto(&acc, 9, p36)
	addPartialInto(&acc, 10, p37)
	addPartialInto(&acc, 10, p37)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 10, p46)
	addPartialInto(&acc, 10, p46)
	addPartialInto(&acc, 11, p47)
	addPartialInto(&acc, 11, p47)
	addPartialInto(&acc, 11, p56)
	addPartialInto(&acc, 11, p56)
	addPartialInto(&acc, 12, p57)
	addPartialInto(&acc, 12, p57)
	addPartialInto(&acc, 13, p67)
	addPartialInto(&acc, 13, p67)

	var r BigInt
	n := 16
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
