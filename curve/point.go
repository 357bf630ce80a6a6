package curve

import "github.com/cronokirby/safenum"

// Point is an affine point on some Curve, or the distinguished neutral
// element of its group. Points are value types: no operation in this
// package mutates a Point passed to it, and callers never need to clone
// one before reuse.
type Point struct {
	x, y    *safenum.Nat
	neutral bool
}

// NewPoint builds an ordinary affine point. It does not check that the
// point lies on any particular curve; use Curve.Check for that.
func NewPoint(x, y *safenum.Nat) Point {
	return Point{x: x, y: y, neutral: false}
}

// NewNeutral builds the neutral element with an explicit affine
// representative. Weierstrass and Montgomery curves pass (0, 0), the
// conventional point-at-infinity sentinel; Edwards curves pass their
// actual identity point (0, c).
func NewNeutral(x, y *safenum.Nat) Point {
	return Point{x: x, y: y, neutral: true}
}

// IsNeutral reports whether P is the group identity.
func (p Point) IsNeutral() bool {
	return p.neutral
}

// X returns the affine x-coordinate. It is only meaningful when
// !P.IsNeutral(), except for Edwards curves where the neutral element is
// itself an ordinary affine point.
func (p Point) X() *safenum.Nat {
	return p.x
}

// Y returns the affine y-coordinate, with the same caveat as X.
func (p Point) Y() *safenum.Nat {
	return p.y
}

// Equal reports whether p and q denote the same group element:
// componentwise coordinate equality plus neutral-flag equality.
func (p Point) Equal(q Point) bool {
	if p.neutral != q.neutral {
		return false
	}
	// Edwards neutral points still carry meaningful coordinates
	// ((0, c)), so compare them too; Weierstrass/Montgomery neutral
	// points carry the (0, 0) sentinel and compare equal trivially.
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}
