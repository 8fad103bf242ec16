package curve1174

import "github.com/elliptic1174/elligator/bigint"

// Curve holds the Curve1174 field and curve constants, plus the
// precomputed values Elligator 1 needs on every conversion. All fields
// are immutable once InitCurve1174 returns them; there is no mutable
// shared state here.
type Curve struct {
	Q, D, S, C, R bigint.BigInt

	// Derived constants used directly by the Elligator 1 formulas.
	CMinus1     bigint.BigInt // c - 1
	CMinus1S    bigint.BigInt // (c-1)*s
	InvCSquared bigint.BigInt // 1/c^2
	RSquared    bigint.BigInt // r^2
	RSquaredM2  bigint.BigInt // r^2 - 2

	// multiples holds q*1 .. q*33, the table the fast-reduction decision
	// procedure searches to locate the unique multiple just at or below
	// an 8-chunk value, per the layout in big_int_curve1174.c.
	multiples [33]bigint.BigInt
}

const multiplesCount = 33

// q = 2^251 - 9, Curve1174's prime.
const qHex = "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7"

const (
	sHex = "3fe707f0d7004fd334ee813a5f1a74ab2449139c82c39d84a09ae74cc78c615"
	cHex = "4d1a3398ed42ceeb451d20824ca9cb49b69ef546bd7e6546aef19af1f9e49e1"
	rHex = "6006fbda7649c433816b286006fbda7649c433816b286006fbda7649c43383"
)

var curveSingleton *Curve

// InitCurve1174 builds and caches the Curve1174 constant table. Repeated
// calls return the same cached value; the computation is cheap but there
// is no reason to repeat it.
func InitCurve1174() (*Curve, error) {
	if curveSingleton != nil {
		return curveSingleton, nil
	}

	q, err := bigint.FromHex(qHex)
	if err != nil {
		return nil, err
	}
	s, err := bigint.FromHex(sHex)
	if err != nil {
		return nil, err
	}
	c, err := bigint.FromHex(cHex)
	if err != nil {
		return nil, err
	}
	r, err := bigint.FromHex(rHex)
	if err != nil {
		return nil, err
	}

	cur := &Curve{Q: q, S: s, C: c, R: r}

	for i := 0; i < multiplesCount; i++ {
		n := bigint.FromChunk(uint32(i+1), 0)
		var m bigint.BigInt
		m.Mul(&q, &n)
		cur.multiples[i] = m
	}

	one := bigint.FromChunk(1, 0)

	neg1174 := bigint.FromChunk(1174, 1)
	cur.D = cur.Reduce(&neg1174)

	var cm1 bigint.BigInt
	cm1.Sub(&c, &one)
	cur.CMinus1 = cur.Reduce(&cm1)

	var cm1s bigint.BigInt
	cm1s.Mul(&cur.CMinus1, &s)
	cur.CMinus1S = cur.Reduce(&cm1s)

	var csq bigint.BigInt
	csq.Mul(&c, &c)
	csqReduced := cur.Reduce(&csq)
	invc2, err := cur.InvFermat(&csqReduced)
	if err != nil {
		return nil, err
	}
	cur.InvCSquared = invc2

	var rsq bigint.BigInt
	rsq.Mul(&r, &r)
	cur.RSquared = cur.Reduce(&rsq)

	two := bigint.FromChunk(2, 0)
	var r2m2 bigint.BigInt
	r2m2.Sub(&cur.RSquared, &two)
	cur.RSquaredM2 = cur.Reduce(&r2m2)

	curveSingleton = cur
	return cur, nil
}
