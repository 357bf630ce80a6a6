// Package curve implements point arithmetic for three elliptic curve
// families — short Weierstrass, Montgomery, and twisted Edwards — over a
// prime field. All modular arithmetic on coordinates and scalars is
// delegated to github.com/cronokirby/safenum; this package never
// implements big-integer arithmetic itself.
package curve

import (
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/safenum"
)

// ErrNotOnCurve is returned by FindY when the given x-coordinate has no
// corresponding point on the curve (the curve equation's right-hand side
// is a quadratic non-residue mod the field modulus).
var ErrNotOnCurve = errors.New("curve: x does not correspond to a point on the curve")

// ErrInvalidScalar is returned by protocol entry points (Encrypt,
// Decrypt, Sign, Verify) when a caller-supplied private key or scalar
// falls outside [1, n).
var ErrInvalidScalar = errors.New("curve: scalar is outside the valid range")

// ErrPointNotOnCurve is returned by protocol entry points when a
// caller-supplied point fails the curve's Check.
var ErrPointNotOnCurve = errors.New("curve: point fails the curve equation")

// ValidateScalar reports ErrInvalidScalar unless k is in [1, n).
func ValidateScalar(k *safenum.Nat, n *safenum.Modulus) error {
	if k.EqZero() || k.CmpMod(n) >= 0 {
		return ErrInvalidScalar
	}
	return nil
}

// ValidatePoint reports ErrPointNotOnCurve unless p passes c.Check.
func ValidatePoint(c Curve, p Point) error {
	if !c.Check(p) {
		return ErrPointNotOnCurve
	}
	return nil
}

// Curve is the capability every concrete curve family implements. Every
// method is total except FindY. Implementations must never mutate the
// Points passed to them.
type Curve interface {
	// Name identifies the curve, e.g. "secp256k1".
	Name() string
	// Modulus returns the prime field modulus m.
	Modulus() *safenum.Modulus
	// Zero returns the neutral element of the group.
	Zero() Point
	// Check reports whether P is neutral or satisfies the curve equation.
	Check(p Point) bool
	// Inv returns the group inverse of P.
	Inv(p Point) Point
	// Add returns P + Q.
	Add(p, q Point) Point
	// Double returns P + P, computed via a dedicated doubling formula.
	// Double(P) must always equal Add(P, P).
	Double(p Point) Point
	// Mul returns k*P via left-to-right double-and-add.
	Mul(p Point, k *safenum.Nat) Point
	// FindY returns the two roots (y1, y2), y1 < y2, such that (x, y)
	// lies on the curve, or ErrNotOnCurve if x has no on-curve point.
	FindY(x *safenum.Nat) (y1, y2 *safenum.Nat, err error)
}

// parseModulus parses a decimal or hexadecimal literal (base as given)
// into a safenum.Modulus. Used only at curve-construction time.
func parseModulus(literal string, base int) *safenum.Modulus {
	n, ok := new(big.Int).SetString(literal, base)
	if !ok {
		panic("curve: invalid modulus literal " + literal)
	}
	return safenum.ModulusFromNat(*new(safenum.Nat).SetBytes(n.Bytes()))
}

// parseNat parses a decimal or hexadecimal literal into a safenum.Nat.
func parseNat(literal string, base int) *safenum.Nat {
	n, ok := new(big.Int).SetString(literal, base)
	if !ok {
		panic("curve: invalid integer literal " + literal)
	}
	return new(safenum.Nat).SetBytes(n.Bytes())
}

// sqrtParams precomputes everything modSqrt needs to find a modular
// square root mod a curve's field modulus, decided once at curve
// construction time from the modulus literal (the same literal-parsing
// boundary as parseNat/parseModulus).
//
// spec.md §4.1/§9: "the (m+1)/4 shortcut is valid only for m ≡ 3 (mod 4);
// otherwise an implementer must use Tonelli-Shanks". Secp256k1, Fp254BNb
// and Curve1174 satisfy m ≡ 3 (mod 4) and take the fast path; Curve25519
// (2^255-19 ≡ 1 mod 4) and the toy curve from spec.md §8 (mod 97, also
// ≡ 1 mod 4) take the Tonelli-Shanks fallback.
type sqrtParams struct {
	fast bool
	// fast path: rhs^exp mod m is a square root when m ≡ 3 (mod 4).
	exp *safenum.Nat
	// Tonelli-Shanks path: m-1 = q·2^s, z a quadratic non-residue mod m.
	q          *safenum.Nat
	qPlus1Half *safenum.Nat
	z          *safenum.Nat
	s          int
}

func natFromBig(x *big.Int) *safenum.Nat {
	return new(safenum.Nat).SetBytes(x.Bytes())
}

func newSqrtParams(mLiteral string, base int) sqrtParams {
	m, ok := new(big.Int).SetString(mLiteral, base)
	if !ok {
		panic("curve: invalid modulus literal " + mLiteral)
	}

	if new(big.Int).Mod(m, big.NewInt(4)).Int64() == 3 {
		e := new(big.Int).Add(m, big.NewInt(1))
		e.Rsh(e, 2)
		return sqrtParams{fast: true, exp: natFromBig(e)}
	}

	q := new(big.Int).Sub(m, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}
	qPlus1Half := new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(1)), 1)

	half := new(big.Int).Rsh(new(big.Int).Sub(m, big.NewInt(1)), 1)
	mMinus1 := new(big.Int).Sub(m, big.NewInt(1))
	z := big.NewInt(2)
	for new(big.Int).Exp(z, half, m).Cmp(mMinus1) != 0 {
		z.Add(z, big.NewInt(1))
	}

	return sqrtParams{
		fast:       false,
		q:          natFromBig(q),
		qPlus1Half: natFromBig(qPlus1Half),
		z:          natFromBig(z),
		s:          s,
	}
}

// tonelliShanks finds a square root of a quadratic residue a modulo m
// via the Tonelli-Shanks algorithm, given the precomputed (q, s, z) from
// sqrtParams. It returns ErrNotOnCurve if a is not a quadratic residue.
func tonelliShanks(a *safenum.Nat, m *safenum.Modulus, p sqrtParams) (*safenum.Nat, error) {
	one := new(safenum.Nat).SetUint64(1)
	t := new(safenum.Nat).Exp(a, p.q, m)
	r := new(safenum.Nat).Exp(a, p.qPlus1Half, m)
	c := new(safenum.Nat).Exp(p.z, p.q, m)
	mm := p.s

	for t.Cmp(one) != 0 {
		i := 0
		temp := new(safenum.Nat).SetNat(t)
		for temp.Cmp(one) != 0 {
			temp = new(safenum.Nat).ModMul(temp, temp, m)
			i++
			if i == mm {
				return nil, ErrNotOnCurve
			}
		}
		b := new(safenum.Nat).SetNat(c)
		for j := 0; j < mm-i-1; j++ {
			b = new(safenum.Nat).ModMul(b, b, m)
		}
		mm = i
		c = new(safenum.Nat).ModMul(b, b, m)
		t = new(safenum.Nat).ModMul(t, c, m)
		r = new(safenum.Nat).ModMul(r, b, m)
	}
	return r, nil
}

// modSqrt computes a square root of rhs modulo the field modulus m,
// returning the two roots (y, m-y) with y < m-y, or ErrNotOnCurve if rhs
// is not a quadratic residue.
func modSqrt(rhs *safenum.Nat, m *safenum.Modulus, p sqrtParams) (y1, y2 *safenum.Nat, err error) {
	var y *safenum.Nat
	if rhs.EqZero() {
		y = new(safenum.Nat).SetUint64(0)
	} else if p.fast {
		y = new(safenum.Nat).Exp(rhs, p.exp, m)
		check := new(safenum.Nat).ModMul(y, y, m)
		if check.Cmp(rhs) != 0 {
			return nil, nil, ErrNotOnCurve
		}
	} else {
		y, err = tonelliShanks(rhs, m, p)
		if err != nil {
			return nil, nil, err
		}
	}
	zero := new(safenum.Nat).SetUint64(0)
	other := new(safenum.Nat).ModSub(zero, y, m)
	if y.Cmp(other) <= 0 {
		return y, other, nil
	}
	return other, y, nil
}

// mask8 zeroes the excess high bits of the first byte of a big-endian
// byte string so that it represents a value < 2^bitLen, bounding a
// freshly-drawn random scalar to a modulus's bit length before rejection
// sampling the remainder.
var mask8 = []byte{0xff, 0x1, 0x3, 0x7, 0xf, 0x1f, 0x3f, 0x7f}

func mask(b []byte, bitLen int) {
	if len(b) == 0 {
		return
	}
	b[0] &= mask8[bitLen%8]
}

// RandScalar draws a uniform scalar in [1, m) from rand, rejection
// sampling out-of-range and zero draws via masked rejection sampling.
func RandScalar(rand io.Reader, m *safenum.Modulus) (*safenum.Nat, error) {
	byteLen := (m.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		mask(buf, m.BitLen())
		k := new(safenum.Nat).SetBytes(buf)
		if k.CmpMod(m) >= 0 {
			continue
		}
		if k.EqZero() {
			continue
		}
		return k, nil
	}
}

// mulBits computes a left-to-right double-and-add scalar multiplication
// of p by the scalar encoded (big-endian) in k, using the curve's own
// Double and Add. Shared by all three curve families so each one only
// needs to provide group law formulas.
func mulBits(c Curve, p Point, k *safenum.Nat) Point {
	r := c.Zero()
	kBytes := k.Bytes()
	for _, byt := range kBytes {
		for bit := 0; bit < 8; bit++ {
			r = c.Double(r)
			if byt&0x80 == 0x80 {
				r = c.Add(r, p)
			}
			byt <<= 1
		}
	}
	return r
}
