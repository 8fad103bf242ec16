package elligator

import (
	"github.com/elliptic1174/elligator/bigint"
	"github.com/elliptic1174/elligator/curve1174"
	"github.com/elliptic1174/elligator/internal/debug"
	errs "github.com/elliptic1174/elligator/internal/errors"
)

// CurvePoint is a point (x, y) on Curve1174, satisfying
// x^2 + y^2 ≡ 1 + d*x^2*y^2 (mod q).
type CurvePoint struct {
	X, Y bigint.BigInt
}

// upperBound returns (q-1)/2, the inclusive upper bound of StrToPoint's
// valid input range.
func upperBound(cur *curve1174.Curve) bigint.BigInt {
	one := bigint.FromChunk(1, 0)
	var qm1 bigint.BigInt
	qm1.Sub(&cur.Q, &one)
	var half bigint.BigInt
	half.ShrBits(&qm1, 1)
	return half
}

func div(cur *curve1174.Curve, a, b *bigint.BigInt) (bigint.BigInt, error) {
	inv, err := cur.InvFermat(b)
	if err != nil {
		return bigint.BigInt{}, err
	}
	var z bigint.BigInt
	cur.MulMod(&z, a, &inv)
	return z, nil
}

// StrToPoint maps t in [0, (q-1)/2] to a point on Curve1174, per Bernstein
// et al.'s Elligator 1 construction specialized to this curve's constants.
// It fails with errs.InvalidInput if t is outside that range.
func StrToPoint(cur *curve1174.Curve, t *bigint.BigInt) (CurvePoint, error) {
	bound := upperBound(cur)
	if t.Sign() < 0 || bigint.Compare(t, &bound) > 0 {
		return CurvePoint{}, errs.Newf(errs.InvalidInput, "elligator: t=%s out of range [0, (q-1)/2]", t.String())
	}

	one := bigint.FromChunk(1, 0)
	if bigint.Compare(t, &one) == 0 {
		return CurvePoint{X: bigint.Zero(), Y: bigint.FromChunk(1, 0)}, nil
	}

	debug.Log("str_to_point: t=%s", t.String())

	var onePlusT, oneMinusT bigint.BigInt
	onePlusT.Add(&one, t)
	oneMinusT.Sub(&one, t)

	u, err := div(cur, &oneMinusT, &onePlusT)
	if err != nil {
		return CurvePoint{}, err
	}

	var u2, u3, u5 bigint.BigInt
	cur.SquareMod(&u2, &u)
	cur.MulMod(&u3, &u2, &u)
	cur.MulMod(&u5, &u3, &u2)

	var term2 bigint.BigInt
	cur.MulMod(&term2, &cur.RSquaredM2, &u3)

	var v bigint.BigInt
	cur.AddMod(&v, &u5, &term2)
	cur.AddMod(&v, &v, &u)

	chiV := cur.Chi(&v)
	xv := signedOne(chiV)

	var X bigint.BigInt
	cur.MulMod(&X, &xv, &u)

	var xvV bigint.BigInt
	cur.MulMod(&xvV, &xv, &v)

	Yroot := cur.PowQp1d4(&xvV)

	var uInner bigint.BigInt
	cur.AddMod(&uInner, &u2, &cur.InvCSquared)
	chiUInner := cur.Chi(&uInner)

	var Y bigint.BigInt
	cur.MulMod(&Y, &Yroot, &xv)
	chiUInnerBig := signedOne(chiUInner)
	cur.MulMod(&Y, &Y, &chiUInnerBig)

	var onePlusX bigint.BigInt
	cur.AddMod(&onePlusX, &one, &X)

	var xNum bigint.BigInt
	cur.MulMod(&xNum, &cur.CMinus1S, &X)
	cur.MulMod(&xNum, &xNum, &onePlusX)

	x, err := div(cur, &xNum, &Y)
	if err != nil {
		return CurvePoint{}, err
	}

	var rX bigint.BigInt
	cur.MulMod(&rX, &cur.R, &X)

	var onePlusXSq bigint.BigInt
	cur.SquareMod(&onePlusXSq, &onePlusX)

	var yNum, yDen bigint.BigInt
	cur.SubMod(&yNum, &rX, &onePlusXSq)
	cur.AddMod(&yDen, &rX, &onePlusXSq)

	y, err := div(cur, &yNum, &yDen)
	if err != nil {
		return CurvePoint{}, err
	}

	return CurvePoint{X: x, Y: y}, nil
}

// PointToStr maps a curve point back to its representative in
// [0, (q-1)/2]. It assumes p lies on the curve; callers that cannot
// guarantee this should check with IsOnCurve first.
func PointToStr(cur *curve1174.Curve, p *CurvePoint) (bigint.BigInt, error) {
	debug.Log("point_to_str: x=%s y=%s", p.X.String(), p.Y.String())

	one := bigint.FromChunk(1, 0)
	two := bigint.FromChunk(2, 0)

	// The identity point (0, 1) is the image of t = 1 (see StrToPoint); the
	// general formula below would divide by zero for it.
	if p.X.IsZero() && bigint.Compare(&p.Y, &one) == 0 {
		return one, nil
	}

	var yMinus1, yPlus1 bigint.BigInt
	cur.SubMod(&yMinus1, &p.Y, &one)
	cur.AddMod(&yPlus1, &p.Y, &one)

	var twoYPlus1 bigint.BigInt
	cur.MulMod(&twoYPlus1, &two, &yPlus1)

	eta, err := div(cur, &yMinus1, &twoYPlus1)
	if err != nil {
		return bigint.BigInt{}, err
	}

	var etaR bigint.BigInt
	cur.MulMod(&etaR, &eta, &cur.R)
	var E bigint.BigInt
	cur.AddMod(&E, &one, &etaR)

	var ESquared, ESquaredM1 bigint.BigInt
	cur.SquareMod(&ESquared, &E)
	cur.SubMod(&ESquaredM1, &ESquared, &one)

	root := cur.PowQp1d4(&ESquaredM1)

	var negE, X bigint.BigInt
	negE.Neg(&E)
	cur.AddMod(&X, &negE, &root)

	var onePlusX bigint.BigInt
	cur.AddMod(&onePlusX, &one, &X)

	var inner bigint.BigInt
	cur.MulMod(&inner, &cur.CMinus1S, &X)
	cur.MulMod(&inner, &inner, &onePlusX)
	cur.MulMod(&inner, &inner, &p.X)

	var xSquaredInner bigint.BigInt
	cur.SquareMod(&xSquaredInner, &X)
	cur.AddMod(&xSquaredInner, &xSquaredInner, &cur.InvCSquared)
	cur.MulMod(&inner, &inner, &xSquaredInner)

	z := cur.Chi(&inner)
	zBig := signedOne(z)

	var u bigint.BigInt
	cur.MulMod(&u, &zBig, &X)

	var onePlusU, oneMinusU bigint.BigInt
	cur.AddMod(&onePlusU, &one, &u)
	cur.SubMod(&oneMinusU, &one, &u)

	tVal, err := div(cur, &oneMinusU, &onePlusU)
	if err != nil {
		return bigint.BigInt{}, err
	}

	bound := upperBound(cur)
	if bigint.Compare(&tVal, &bound) > 0 {
		var negT bigint.BigInt
		negT.Neg(&tVal)
		tVal = cur.Reduce(&negT)
	}
	return tVal, nil
}

// IsOnCurve reports whether p satisfies Curve1174's defining equation.
func IsOnCurve(cur *curve1174.Curve, p *CurvePoint) bool {
	var x2, y2 bigint.BigInt
	cur.SquareMod(&x2, &p.X)
	cur.SquareMod(&y2, &p.Y)

	var lhs bigint.BigInt
	cur.AddMod(&lhs, &x2, &y2)

	var x2y2, dx2y2 bigint.BigInt
	cur.MulMod(&x2y2, &x2, &y2)
	cur.MulMod(&dx2y2, &cur.D, &x2y2)

	one := bigint.FromChunk(1, 0)
	var rhs bigint.BigInt
	cur.AddMod(&rhs, &one, &dx2y2)

	return bigint.Compare(&lhs, &rhs) == 0
}

// signedOne returns the integer 1 if s >= 0 and -1 if s < 0 (which MulMod's
// reduction turns into q-1), used to
// fold a Chi() result of {+1, -1} into a field element for multiplication
// without a modulus-aware caller having to branch on it itself.
func signedOne(s int) bigint.BigInt {
	if s >= 0 {
		return bigint.FromChunk(1, 0)
	}
	return bigint.FromChunk(1, 1)
}
