package bigint

// mul8 is the fully unrolled reference multiply for two 8-chunk
// (256-bit) operands, the size most reduced Curve1174 field elements
// occupy and therefore the dominant call shape from package curve1174. All 64 pairwise products a[i]*b[j] are precomputed
// into named scratch variables, then folded into the 16 positional sums
// with addPartialInto's carry-safe accumulation, in a fixed sequence with
// no loop over i or j; a vectorized 4-wide-lane variant sharing this same
// product list is the only piece spec.md leaves optional, and is not
// implemented here.
func mul8(z *BigInt, a *BigInt, b *BigInt) *BigInt {
	a0 := uint64(a.chunks[0])
	a1 := uint64(a.chunks[1])
	a2 := uint64(a.chunks[2])
	a3 := uint64(a.chunks[3])
	a4 := uint64(a.chunks[4])
	a5 := uint64(a.chunks[5])
	a6 := uint64(a.chunks[6])
	a7 := uint64(a.chunks[7])
	b0 := uint64(b.chunks[0])
	b1 := uint64(b.chunks[1])
	b2 := uint64(b.chunks[2])
	b3 := uint64(b.chunks[3])
	b4 := uint64(b.chunks[4])
	b5 := uint64(b.chunks[5])
	b6 := uint64(b.chunks[6])
	b7 := uint64(b.chunks[7])

	p00 := a0 * b0
	p01 := a0 * b1
	p02 := a0 * b2
	p03 := a0 * b3
	p04 := a0 * b4
	p05 := a0 * b5
	p06 := a0 * b6
	p07 := a0 * b7
	p10 := a1 * b0
	p11 := a1 * b1
	p12 := a1 * b2
	p13 := a1 * b3
	p14 := a1 * b4
	p15 := a1 * b5
	p16 := a1 * b6
	p17 := a1 * b7
	p20 := a2 * b0
	p21 := a2 * b1
	p22 := a2 * b2
	p23 := a2 * b3
	p24 := a2 * b4
	p25 := a2 * b5
	p26 := a2 * b6
	p27 := a2 * b7
	p30 := a3 * b0
	p31 := a3 * b1
	p32 := a3 * b2
	p33 := a3 * b3
	p34 := a3 * b4
	p35 := a3 * b5
	p36 := a3 * b6
	p37 := a3 * b7
	p40 := a4 * b0
	p41 := a4 * b1
	p42 := a4 * b2
	p43 := a4 * b3
	p44 := a4 * b4
	p45 := a4 * b5
	p46 := a4 * b6
	p47 := a4 * b7
	p50 := a5 * b0
	p51 := a5 * b1
	p52 := a5 * b2
	p53 := a5 * b3
	p54 := a5 * b4
	p55 := a5 * b5
	p56 := a5 * b6
	p57 := a5 * b7
	p60 := a6 * b0
	p61 := a6 * b1
	p62 := a6 * b2
	p63 := a6 * b3
	p64 := a6 * b4
	p65 := a6 * b5
	p66 := a6 * b6
	p67 := a6 * b7
	p70 := a7 * b0
	p71 := a7 * b1
	p72 := a7 * b2
	p73 := a7 * b3
	p74 := a7 * b4
	p75 := a7 * b5
	p76 := a7 * b6
	p77 := a7 * b7

	var acc [2 * Capacity]uint64
	addPartialInto(&acc, 0, p00)
	addPartialInto(&acc, 1, p01)
	addPartialInto(&acc, 2, p02)
	addPartialInto(&acc, 3, p03)
	addPartialInto(&acc, 4, p04)
	addPartialInto(&acc, 5, p05)
	addPartialInto(&acc, 6, p06)
	addPartialInto(&acc, 7, p07)
	addPartialInto(&acc, 1, p10)
	addPartialInto(&acc, 2, p11)
	addPartialInto(&acc, 3, p12)
	addPartialInto(&acc, 4, p13)
	addPartialInto(&acc, 5, p14)
	addPartialInto(&acc, 6, p15)
	addPartialInto(&acc, 7, p16)
	addPartialInto(&acc, 8, p17)
	addPartialInto(&acc, 2, p20)
	addPartialInto(&acc, 3, p21)
	addPartialInto(&acc, 4, p22)
	addPartialInto(&acc, 5, p23)
	addPartialInto(&acc, 6, p24)
	addPartialInto(&acc, 7, p25)
	addPartialInto(&acc, 8, p26)
	addPartialInto(&acc, 9, p27)
	addPartialInto(&acc, 3, p30)
	addPartialInto(&acc, 4, p31)
	addPartialInto(&acc, 5, p32)
	addPartialInto(&acc, 6, p33)
	addPartialInto(&acc, 7, p34)
	addPartialInto(&acc, 8, p35)
	addPartialInto(&acc, 9, p36)
	addPartialInto(&acc, 10, p37)
	addPartialInto(&acc, 4, p40)
	addPartialInto(&acc, 5, p41)
	addPartialInto(&acc, 6, p42)
	addPartialInto(&acc, 7, p43)
	addPartialInto(&acc, 8, p44)
	addPartialInto(&acc, 9, p45)
	addPartialInto(&acc, 10, p46)
	addPartialInto(&acc, 11, p47)
	addPartialInto(&acc, 5, p50)
	addPartialInto(&acc, 6, p51)
	addPartialInto(&acc, 7, p52)
	addPartialInto(&acc, 8, p53)
	addPartialInto(&acc, 9, p54)
	addPartialInto(&acc, 10, p55)
	addPartialInto(&acc, 11, p56)
	addPartialInto(&acc, 12, p57)
	addPartialInto(&acc, 6, p60)
	addPartialInto(&acc, 7, p61)
	addPartialInto(&acc, 8, p62)
	addPartialInto(&acc, 9, p63)
	addPartialInto(&acc, 10, p64)
	addPartialInto(&acc, 11, p65)
	addPartialInto(&acc, 12, p66)
	addPartialInto(&acc, 13, p67)
	addPartialInto(&acc, 7, p70)
	addPartialInto(&acc, 8, p71)
	addPartialInto(&acc, 9, p72)
	addPartialInto(&acc, 10, p73)
	addPartialInto(&acc, 11, p74)
	addPartialInto(&acc, 12, p75)
	addPartialInto(&acc, 13, p76)
	addPartialInto(&acc, 14, p77)

	var r BigInt
	n := 16
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
