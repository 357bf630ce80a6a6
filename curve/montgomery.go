package curve

import "github.com/cronokirby/safenum"

// MontgomeryCurve implements b·y² = x³ + a·x² + x (mod m). The neutral
// element uses the same (0, 0) point-at-infinity sentinel as
// WeierstrassCurve.
type MontgomeryCurve struct {
	name    string
	a, b    *safenum.Nat
	m       *safenum.Modulus
	sqrt    sqrtParams
}

// NewMontgomeryCurve builds a Montgomery curve from decimal or
// hexadecimal parameter literals sharing the given base.
func NewMontgomeryCurve(name, aLit, bLit, mLit string, base int) *MontgomeryCurve {
	return &MontgomeryCurve{
		name:    name,
		a:       parseNat(aLit, base),
		b:       parseNat(bLit, base),
		m:       parseModulus(mLit, base),
		sqrt:    newSqrtParams(mLit, base),
	}
}

func (c *MontgomeryCurve) Name() string              { return c.name }
func (c *MontgomeryCurve) Modulus() *safenum.Modulus { return c.m }

func (c *MontgomeryCurve) Zero() Point {
	zero := new(safenum.Nat).SetUint64(0)
	return NewNeutral(zero, new(safenum.Nat).SetUint64(0))
}

// rhs returns (x³ + a·x² + x) / b mod m.
func (c *MontgomeryCurve) rhs(x *safenum.Nat) *safenum.Nat {
	x2 := new(safenum.Nat).ModMul(x, x, c.m)
	x3 := new(safenum.Nat).ModMul(x2, x, c.m)
	ax2 := new(safenum.Nat).ModMul(c.a, x2, c.m)
	x3.ModAdd(x3, ax2, c.m)
	x3.ModAdd(x3, x, c.m)
	bInv := new(safenum.Nat).ModInverse(c.b, c.m)
	x3.ModMul(x3, bInv, c.m)
	return x3
}

func (c *MontgomeryCurve) Check(p Point) bool {
	if p.IsNeutral() {
		return true
	}
	y2 := new(safenum.Nat).ModMul(p.y, p.y, c.m)
	return c.rhs(p.x).Cmp(y2) == 0
}

func (c *MontgomeryCurve) Inv(p Point) Point {
	if p.IsNeutral() {
		return p
	}
	zero := new(safenum.Nat).SetUint64(0)
	negY := new(safenum.Nat).ModSub(zero, p.y, c.m)
	return NewPoint(p.x, negY)
}

func (c *MontgomeryCurve) Add(p, q Point) Point {
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
		return c.Zero()
	}

	// λ = (Qy - Py) / (Qx - Px)
	num := new(safenum.Nat).ModSub(q.y, p.y, c.m)
	den := new(safenum.Nat).ModSub(q.x, p.x, c.m)
	denInv := new(safenum.Nat).ModInverse(den, c.m)
	lambda := new(safenum.Nat).ModMul(num, denInv, c.m)

	// Rx = b·λ² - a - Px - Qx
	lambda2 := new(safenum.Nat).ModMul(lambda, lambda, c.m)
	rx := new(safenum.Nat).ModMul(c.b, lambda2, c.m)
	rx.ModSub(rx, c.a, c.m)
	rx.ModSub(rx, p.x, c.m)
	rx.ModSub(rx, q.x, c.m)

	// Ry = λ·(Px - Rx) - Py
	ry := new(safenum.Nat).ModSub(p.x, rx, c.m)
	ry.ModMul(ry, lambda, c.m)
	ry.ModSub(ry, p.y, c.m)

	return NewPoint(rx, ry)
}

func (c *MontgomeryCurve) Double(p Point) Point {
	if p.IsNeutral() {
		return p
	}
	if p.y.EqZero() {
		return c.Zero()
	}

	// λ = (3·Px² + 2·a·Px + 1) / (2·b·Py)
	px2 := new(safenum.Nat).ModMul(p.x, p.x, c.m)
	num := new(safenum.Nat).SetUint64(3)
	num.ModMul(num, px2, c.m)
	twoAPx := new(safenum.Nat).ModAdd(c.a, c.a, c.m)
	twoAPx.ModMul(twoAPx, p.x, c.m)
	num.ModAdd(num, twoAPx, c.m)
	num.ModAdd(num, new(safenum.Nat).SetUint64(1), c.m)

	den := new(safenum.Nat).ModAdd(p.y, p.y, c.m)
	den.ModMul(den, c.b, c.m)
	denInv := new(safenum.Nat).ModInverse(den, c.m)
	lambda := new(safenum.Nat).ModMul(num, denInv, c.m)

	lambda2 := new(safenum.Nat).ModMul(lambda, lambda, c.m)
	rx := new(safenum.Nat).ModMul(c.b, lambda2, c.m)
	rx.ModSub(rx, c.a, c.m)
	rx.ModSub(rx, p.x, c.m)
	rx.ModSub(rx, p.x, c.m)

	ry := new(safenum.Nat).ModSub(p.x, rx, c.m)
	ry.ModMul(ry, lambda, c.m)
	ry.ModSub(ry, p.y, c.m)

	return NewPoint(rx, ry)
}

func (c *MontgomeryCurve) Mul(p Point, k *safenum.Nat) Point {
	return mulBits(c, p, k)
}

func (c *MontgomeryCurve) FindY(x *safenum.Nat) (*safenum.Nat, *safenum.Nat, error) {
	return modSqrt(c.rhs(x), c.m, c.sqrt)
}
