// Package scheme bundles a curve.Curve with a generator point and a
// subgroup order, the minimum state needed to generate key pairs
// (spec.md §4.2).
package scheme

import (
	"io"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
)

// Scheme owns a curve, a generator G on that curve, and the order n of
// the subgroup G generates, such that n·G = curve.Zero().
type Scheme struct {
	Curve curve.Curve
	G     curve.Point
	N     *safenum.Modulus
}

// Name returns the underlying curve's name.
func (s *Scheme) Name() string {
	return s.Curve.Name()
}

// GeneratePair draws a uniform private scalar in [1, n) and returns it
// together with the corresponding public point privKey·G.
func (s *Scheme) GeneratePair(rand io.Reader) (privKey *safenum.Nat, pubKey curve.Point, err error) {
	k, err := curve.RandScalar(rand, s.N)
	if err != nil {
		return nil, curve.Point{}, err
	}
	pubKey = s.Curve.Mul(s.G, k)
	return k, pubKey, nil
}

// CheckPair reports whether pubKey == privKey·G under this scheme.
func (s *Scheme) CheckPair(privKey *safenum.Nat, pubKey curve.Point) bool {
	return s.Curve.Mul(s.G, privKey).Equal(pubKey)
}
