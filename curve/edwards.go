package curve

import "github.com/cronokirby/safenum"

// EdwardsCurve implements the twisted Edwards family
// x² + y² = c²·(1 + d·x²·y²) (mod m). Unlike the other two families, the
// neutral element (0, c) is an ordinary affine point, not a sentinel; the
// unified addition law below handles doubling and inverse-pairs without
// branching (spec.md §4.1).
type EdwardsCurve struct {
	name    string
	c, d    *safenum.Nat
	m       *safenum.Modulus
	sqrt    sqrtParams
}

// NewEdwardsCurve builds a twisted Edwards curve from decimal or
// hexadecimal parameter literals sharing the given base.
func NewEdwardsCurve(name, cLit, dLit, mLit string, base int) *EdwardsCurve {
	return &EdwardsCurve{
		name:    name,
		c:       parseNat(cLit, base),
		d:       parseNat(dLit, base),
		m:       parseModulus(mLit, base),
		sqrt:    newSqrtParams(mLit, base),
	}
}

func (c *EdwardsCurve) Name() string              { return c.name }
func (c *EdwardsCurve) Modulus() *safenum.Modulus { return c.m }

func (c *EdwardsCurve) Zero() Point {
	return NewNeutral(new(safenum.Nat).SetUint64(0), c.c)
}

func (c *EdwardsCurve) Check(p Point) bool {
	// x² + y² =? c²·(1 + d·x²·y²), regardless of the neutral flag: the
	// neutral element (0, c) satisfies this equation as an ordinary
	// point (0 + c² = c²·(1 + 0)).
	x2 := new(safenum.Nat).ModMul(p.x, p.x, c.m)
	y2 := new(safenum.Nat).ModMul(p.y, p.y, c.m)
	lhs := new(safenum.Nat).ModAdd(x2, y2, c.m)

	c2 := new(safenum.Nat).ModMul(c.c, c.c, c.m)
	x2y2 := new(safenum.Nat).ModMul(x2, y2, c.m)
	rhs := new(safenum.Nat).ModMul(c.d, x2y2, c.m)
	rhs.ModAdd(rhs, new(safenum.Nat).SetUint64(1), c.m)
	rhs.ModMul(rhs, c2, c.m)

	return lhs.Cmp(rhs) == 0
}

func (c *EdwardsCurve) Inv(p Point) Point {
	zero := new(safenum.Nat).SetUint64(0)
	negX := new(safenum.Nat).ModSub(zero, p.x, c.m)
	return Point{x: negX, y: p.y, neutral: p.neutral}
}

// add is the unified addition law, used for both Add and Double:
//
//	Rx = (Px·Qy + Py·Qx) / (c·(1 + d·Px·Qx·Py·Qy))
//	Ry = (Py·Qy − Px·Qx) / (c·(1 − d·Px·Qx·Py·Qy))
func (c *EdwardsCurve) add(p, q Point) Point {
	pxqx := new(safenum.Nat).ModMul(p.x, q.x, c.m)
	pyqy := new(safenum.Nat).ModMul(p.y, q.y, c.m)
	cross := new(safenum.Nat).ModMul(pxqx, pyqy, c.m)
	dCross := new(safenum.Nat).ModMul(c.d, cross, c.m)

	one := new(safenum.Nat).SetUint64(1)

	rxNum := new(safenum.Nat).ModMul(p.x, q.y, c.m)
	pyqx := new(safenum.Nat).ModMul(p.y, q.x, c.m)
	rxNum.ModAdd(rxNum, pyqx, c.m)
	rxDen := new(safenum.Nat).ModAdd(one, dCross, c.m)
	rxDen.ModMul(rxDen, c.c, c.m)
	rxDenInv := new(safenum.Nat).ModInverse(rxDen, c.m)
	rx := new(safenum.Nat).ModMul(rxNum, rxDenInv, c.m)

	ryNum := new(safenum.Nat).ModSub(pyqy, pxqx, c.m)
	ryDen := new(safenum.Nat).ModSub(one, dCross, c.m)
	ryDen.ModMul(ryDen, c.c, c.m)
	ryDenInv := new(safenum.Nat).ModInverse(ryDen, c.m)
	ry := new(safenum.Nat).ModMul(ryNum, ryDenInv, c.m)

	neutral := rx.EqZero() && ry.Cmp(c.c) == 0
	return Point{x: rx, y: ry, neutral: neutral}
}

func (c *EdwardsCurve) Add(p, q Point) Point {
	return c.add(p, q)
}

func (c *EdwardsCurve) Double(p Point) Point {
	return c.add(p, p)
}

func (c *EdwardsCurve) Mul(p Point, k *safenum.Nat) Point {
	return mulBits(c, p, k)
}

// rhs returns (c² − x²) / (1 − c²·d·x²) mod m, the right-hand side of the
// curve equation x²+y² = c²(1+d·x²y²) solved for y².
func (c *EdwardsCurve) rhs(x *safenum.Nat) *safenum.Nat {
	x2 := new(safenum.Nat).ModMul(x, x, c.m)
	c2 := new(safenum.Nat).ModMul(c.c, c.c, c.m)

	num := new(safenum.Nat).ModSub(c2, x2, c.m)

	den := new(safenum.Nat).ModMul(c2, c.d, c.m)
	den.ModMul(den, x2, c.m)
	one := new(safenum.Nat).SetUint64(1)
	den = new(safenum.Nat).ModSub(one, den, c.m)

	denInv := new(safenum.Nat).ModInverse(den, c.m)
	num.ModMul(num, denInv, c.m)
	return num
}

func (c *EdwardsCurve) FindY(x *safenum.Nat) (*safenum.Nat, *safenum.Nat, error) {
	return modSqrt(c.rhs(x), c.m, c.sqrt)
}
