package scheme

import (
	"crypto/rand"
	"testing"

	"github.com/cronokirby/safenum"
	"golang.org/x/crypto/curve25519"
)

func TestGenerateAndCheckPair(t *testing.T) {
	for _, s := range []*Scheme{LoadSecp256k1(), LoadFp254BNb(), LoadCurve1174(), LoadToyWeierstrass97()} {
		priv, pub, err := s.GeneratePair(rand.Reader)
		if err != nil {
			t.Fatalf("%s: GeneratePair failed: %v", s.Name(), err)
		}
		if !s.CheckPair(priv, pub) {
			t.Fatalf("%s: CheckPair rejected a freshly generated pair", s.Name())
		}
	}
}

func TestSubgroupOrderAnnihilatesGenerator(t *testing.T) {
	s := LoadToyWeierstrass97()
	n := new(safenum.Nat).SetUint64(50)
	if !s.Curve.Mul(s.G, n).IsNeutral() {
		t.Fatal("n*G must be the neutral element")
	}
}

// leBytes32 encodes a field element as 32 little-endian bytes, the wire
// convention golang.org/x/crypto/curve25519 uses (and the inverse of
// this core's big-endian Nat.Bytes()).
func leBytes32(x *safenum.Nat) [32]byte {
	be := x.Bytes()
	var out [32]byte
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// TestCurve25519CrossOracle checks a handful of scalar multiples of the
// standard base point against golang.org/x/crypto/curve25519's
// reference Montgomery ladder. Both operate on the same curve
// (a=486662, p=2^255-19) and the same base point (u=9); an x-only
// ladder and this package's full affine double-and-add must agree on
// the resulting u-coordinate for any scalar.
func TestCurve25519CrossOracle(t *testing.T) {
	s := LoadCurve25519()

	rawScalars := [][32]byte{
		{9},
		{1},
		{5, 6, 7, 8, 9, 10},
	}
	for _, raw := range rawScalars {
		clamped := raw
		clamped[0] &= 248
		clamped[31] &= 127
		clamped[31] |= 64

		ref, err := curve25519.X25519(clamped[:], curve25519.Basepoint)
		if err != nil {
			t.Fatalf("x25519 reference failed: %v", err)
		}
		var want [32]byte
		copy(want[:], ref)

		// Reinterpret the little-endian clamped scalar as the big
		// integer this package's Nat/Mul expect.
		var beScalar [32]byte
		for i, b := range clamped {
			beScalar[31-i] = b
		}
		k := new(safenum.Nat).SetBytes(beScalar[:])

		got := s.Curve.Mul(s.G, k)
		gotLE := leBytes32(got.X())

		if gotLE != want {
			t.Fatalf("Mul(G,k) disagrees with x25519 oracle for scalar %v: got %x want %x", raw, gotLE, want)
		}
	}
}
