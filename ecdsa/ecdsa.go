// Package ecdsa implements signing and verification over a Scheme's
// subgroup, digest-agnostic: callers supply any hash digest bytes, and
// this package only truncates and reduces them mod the subgroup order.
package ecdsa

import (
	"io"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
	"github.com/ecc-suite/ecccore/scheme"
)

// Signature is a (r, s) pair of scalars in [1, n).
type Signature struct {
	R, S *safenum.Nat
}

var mask8 = []byte{0xff, 0x1, 0x3, 0x7, 0xf, 0x1f, 0x3f, 0x7f}

// truncateHash interprets hash as a big-endian integer, truncating it
// to the bit length of n when it is longer, the same masking technique
// curve.RandScalar uses to bound a byte string to a bit length.
func truncateHash(hash []byte, n *safenum.Modulus) *safenum.Nat {
	bitLen := n.BitLen()
	byteLen := (bitLen + 7) / 8
	if len(hash) < byteLen {
		return new(safenum.Nat).SetBytes(hash)
	}
	truncated := make([]byte, byteLen)
	copy(truncated, hash[:byteLen])
	if shift := bitLen % 8; shift != 0 {
		truncated[0] &= mask8[shift]
	}
	return new(safenum.Nat).SetBytes(truncated)
}

// reduce computes x mod n. R's x-coordinate lives in the curve's field
// modulus, which differs from (and for every preset is larger than) the
// subgroup order n, so it must be reduced again before use as r.
func reduce(x *safenum.Nat, n *safenum.Modulus) *safenum.Nat {
	zero := new(safenum.Nat).SetUint64(0)
	return new(safenum.Nat).ModAdd(x, zero, n)
}

// Sign produces a signature over hash under privKey, restarting the
// ephemeral-scalar draw whenever R is neutral or either of r, s lands on
// zero (spec.md resolves the source's silence on this by mandating the
// restarts the ECDSA standard requires). Returns curve.ErrInvalidScalar
// if privKey is outside [1, n).
func Sign(rand io.Reader, s *scheme.Scheme, privKey *safenum.Nat, hash []byte) (*Signature, error) {
	if err := curve.ValidateScalar(privKey, s.N); err != nil {
		return nil, err
	}

	h := truncateHash(hash, s.N)
	for {
		k, err := curve.RandScalar(rand, s.N)
		if err != nil {
			return nil, err
		}
		R := s.Curve.Mul(s.G, k)
		if R.IsNeutral() {
			continue
		}
		r := reduce(R.X(), s.N)
		if r.EqZero() {
			continue
		}

		kInv := new(safenum.Nat).ModInverse(k, s.N)
		rPriv := new(safenum.Nat).ModMul(r, privKey, s.N)
		sum := new(safenum.Nat).ModAdd(h, rPriv, s.N)
		sig := new(safenum.Nat).ModMul(kInv, sum, s.N)
		if sig.EqZero() {
			continue
		}
		return &Signature{R: r, S: sig}, nil
	}
}

// Verify reports whether sig is a valid signature over hash under
// pubKey. The error return is curve.ErrPointNotOnCurve if pubKey fails
// the scheme's curve equation — a caller-argument defect distinct from
// an ordinary rejected signature, which Verify reports by returning
// false with a nil error.
func Verify(s *scheme.Scheme, pubKey curve.Point, hash []byte, sig *Signature) (bool, error) {
	if err := curve.ValidatePoint(s.Curve, pubKey); err != nil {
		return false, err
	}

	if sig.R.EqZero() || sig.R.CmpMod(s.N) >= 0 {
		return false, nil
	}
	if sig.S.EqZero() || sig.S.CmpMod(s.N) >= 0 {
		return false, nil
	}

	h := truncateHash(hash, s.N)
	w := new(safenum.Nat).ModInverse(sig.S, s.N)
	u1 := new(safenum.Nat).ModMul(h, w, s.N)
	u2 := new(safenum.Nat).ModMul(sig.R, w, s.N)

	X := s.Curve.Add(s.Curve.Mul(s.G, u1), s.Curve.Mul(pubKey, u2))
	if X.IsNeutral() {
		return false, nil
	}
	x := reduce(X.X(), s.N)
	return x.Cmp(sig.R) == 0, nil
}
