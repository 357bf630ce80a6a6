// Package elgamal implements ElGamal-style encryption over curve
// points: plaintext points are masked by a fresh session scalar's
// shared secret each time, and recovered with the recipient's private
// key.
package elgamal

import (
	"io"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
	"github.com/ecc-suite/ecccore/scheme"
)

// Ciphertext is one (C1, C2) pair per encrypted plaintext point.
type Ciphertext struct {
	C1, C2 curve.Point
}

// Encrypt encrypts each point in plaintext under pubKey, drawing a
// fresh session scalar per point (required: reusing a session scalar
// across points breaks confidentiality). Returns curve.ErrPointNotOnCurve
// if pubKey or any plaintext point fails the scheme's curve equation.
func Encrypt(rand io.Reader, s *scheme.Scheme, pubKey curve.Point, plaintext []curve.Point) ([]Ciphertext, error) {
	if err := curve.ValidatePoint(s.Curve, pubKey); err != nil {
		return nil, err
	}
	for _, m := range plaintext {
		if err := curve.ValidatePoint(s.Curve, m); err != nil {
			return nil, err
		}
	}

	out := make([]Ciphertext, len(plaintext))
	for i, m := range plaintext {
		sessionScalar, err := curve.RandScalar(rand, s.N)
		if err != nil {
			return nil, err
		}
		c1 := s.Curve.Mul(s.G, sessionScalar)
		shared := s.Curve.Mul(pubKey, sessionScalar)
		c2 := s.Curve.Add(m, shared)
		out[i] = Ciphertext{C1: c1, C2: c2}
	}
	return out, nil
}

// Decrypt recovers the plaintext points encrypted under the public key
// that pairs with privKey. Returns curve.ErrInvalidScalar if privKey is
// outside [1, n), or curve.ErrPointNotOnCurve if any ciphertext point
// fails the scheme's curve equation.
func Decrypt(s *scheme.Scheme, privKey *safenum.Nat, ciphertext []Ciphertext) ([]curve.Point, error) {
	if err := curve.ValidateScalar(privKey, s.N); err != nil {
		return nil, err
	}
	for _, ct := range ciphertext {
		if err := curve.ValidatePoint(s.Curve, ct.C1); err != nil {
			return nil, err
		}
		if err := curve.ValidatePoint(s.Curve, ct.C2); err != nil {
			return nil, err
		}
	}

	out := make([]curve.Point, len(ciphertext))
	for i, ct := range ciphertext {
		shared := s.Curve.Mul(ct.C1, privKey)
		out[i] = s.Curve.Add(ct.C2, s.Curve.Inv(shared))
	}
	return out, nil
}
