package curve

import "github.com/cronokirby/safenum"

// WeierstrassCurve implements the short Weierstrass family
// y² = x³ + a·x + b (mod m). The neutral element is represented by the
// conventional (0, 0) point-at-infinity sentinel, which is never itself
// on the curve (spec.md §3).
type WeierstrassCurve struct {
	name    string
	a, b    *safenum.Nat
	m       *safenum.Modulus
	sqrt    sqrtParams
}

// NewWeierstrassCurve builds a short Weierstrass curve from decimal or
// hexadecimal parameter literals. base is the numeric base shared by all
// four literals (10 or 16).
func NewWeierstrassCurve(name, aLit, bLit, mLit string, base int) *WeierstrassCurve {
	return &WeierstrassCurve{
		name:    name,
		a:       parseNat(aLit, base),
		b:       parseNat(bLit, base),
		m:       parseModulus(mLit, base),
		sqrt:    newSqrtParams(mLit, base),
	}
}

func (c *WeierstrassCurve) Name() string              { return c.name }
func (c *WeierstrassCurve) Modulus() *safenum.Modulus { return c.m }

func (c *WeierstrassCurve) Zero() Point {
	zero := new(safenum.Nat).SetUint64(0)
	return NewNeutral(zero, new(safenum.Nat).SetUint64(0))
}

// rhs returns x³ + a·x + b mod m.
func (c *WeierstrassCurve) rhs(x *safenum.Nat) *safenum.Nat {
	x2 := new(safenum.Nat).ModMul(x, x, c.m)
	x3 := new(safenum.Nat).ModMul(x2, x, c.m)
	ax := new(safenum.Nat).ModMul(c.a, x, c.m)
	x3.ModAdd(x3, ax, c.m)
	x3.ModAdd(x3, c.b, c.m)
	return x3
}

func (c *WeierstrassCurve) Check(p Point) bool {
	if p.IsNeutral() {
		return true
	}
	y2 := new(safenum.Nat).ModMul(p.y, p.y, c.m)
	return c.rhs(p.x).Cmp(y2) == 0
}

func (c *WeierstrassCurve) Inv(p Point) Point {
	if p.IsNeutral() {
		return p
	}
	zero := new(safenum.Nat).SetUint64(0)
	negY := new(safenum.Nat).ModSub(zero, p.y, c.m)
	return NewPoint(p.x, negY)
}

func (c *WeierstrassCurve) Add(p, q Point) Point {
	if p.IsNeutral() {
		return q
	}
	if q.IsNeutral() {
		return p
	}
	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return c.Double(p)
		}
		// p.x == q.x with p.y != q.y: Q = Inv(P).
		return c.Zero()
	}

	// λ = (Qy - Py) / (Qx - Px)
	num := new(safenum.Nat).ModSub(q.y, p.y, c.m)
	den := new(safenum.Nat).ModSub(q.x, p.x, c.m)
	denInv := new(safenum.Nat).ModInverse(den, c.m)
	lambda := new(safenum.Nat).ModMul(num, denInv, c.m)

	// Rx = λ² - Px - Qx
	rx := new(safenum.Nat).ModMul(lambda, lambda, c.m)
	rx.ModSub(rx, p.x, c.m)
	rx.ModSub(rx, q.x, c.m)

	// Ry = λ·(Px - Rx) - Py
	ry := new(safenum.Nat).ModSub(p.x, rx, c.m)
	ry.ModMul(ry, lambda, c.m)
	ry.ModSub(ry, p.y, c.m)

	return NewPoint(rx, ry)
}

func (c *WeierstrassCurve) Double(p Point) Point {
	if p.IsNeutral() {
		return p
	}
	if p.y.EqZero() {
		return c.Zero()
	}

	// λ = (3·Px² + a) / (2·Py)
	px2 := new(safenum.Nat).ModMul(p.x, p.x, c.m)
	num := new(safenum.Nat).SetUint64(3)
	num.ModMul(num, px2, c.m)
	num.ModAdd(num, c.a, c.m)
	den := new(safenum.Nat).ModAdd(p.y, p.y, c.m)
	denInv := new(safenum.Nat).ModInverse(den, c.m)
	lambda := new(safenum.Nat).ModMul(num, denInv, c.m)

	rx := new(safenum.Nat).ModMul(lambda, lambda, c.m)
	rx.ModSub(rx, p.x, c.m)
	rx.ModSub(rx, p.x, c.m)

	ry := new(safenum.Nat).ModSub(p.x, rx, c.m)
	ry.ModMul(ry, lambda, c.m)
	ry.ModSub(ry, p.y, c.m)

	return NewPoint(rx, ry)
}

func (c *WeierstrassCurve) Mul(p Point, k *safenum.Nat) Point {
	return mulBits(c, p, k)
}

func (c *WeierstrassCurve) FindY(x *safenum.Nat) (*safenum.Nat, *safenum.Nat, error) {
	return modSqrt(c.rhs(x), c.m, c.sqrt)
}
