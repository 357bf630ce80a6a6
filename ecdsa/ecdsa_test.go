package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
	"github.com/ecc-suite/ecccore/scheme"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s := scheme.LoadSecp256k1()
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	digest := sha256.Sum256([]byte("a test phrase"))
	sig, err := Sign(rand.Reader, s, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	ok, err := Verify(s, pub, digest[:], sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a valid signature")
	}
}

func TestVerifyRejectsFlippedHash(t *testing.T) {
	s := scheme.LoadSecp256k1()
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	digest := sha256.Sum256([]byte("a test phrase"))
	sig, err := Sign(rand.Reader, s, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	flipped := digest
	flipped[0] ^= 0x01
	ok, err := Verify(s, pub, flipped[:], sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a signature over a different hash")
	}
}

// TestAlternateDigest shows Sign/Verify are digest-agnostic by swapping
// in a SHA3-256 hash instead of SHA-256.
func TestAlternateDigest(t *testing.T) {
	s := scheme.LoadSecp256k1()
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	digest := sha3.Sum256([]byte("a test phrase over sha3"))
	sig, err := Sign(rand.Reader, s, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	ok, err := Verify(s, pub, digest[:], sig)
	if err != nil {
		t.Fatalf("Verify returned an error: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected a valid signature over a SHA3-256 digest")
	}
}

func TestSignRejectsScalarOutOfRange(t *testing.T) {
	s := scheme.LoadSecp256k1()
	digest := sha256.Sum256([]byte("a test phrase"))

	zero := new(safenum.Nat).SetUint64(0)
	if _, err := Sign(rand.Reader, s, zero, digest[:]); err != curve.ErrInvalidScalar {
		t.Fatalf("Sign accepted privKey=0, err=%v", err)
	}
}

func TestVerifyRejectsPointOffCurve(t *testing.T) {
	s := scheme.LoadSecp256k1()
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatalf("GeneratePair failed: %v", err)
	}

	digest := sha256.Sum256([]byte("a test phrase"))
	sig, err := Sign(rand.Reader, s, priv, digest[:])
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	bogusY := new(safenum.Nat).ModAdd(pub.Y(), new(safenum.Nat).SetUint64(1), s.Curve.Modulus())
	bogusPub := curve.NewPoint(pub.X(), bogusY)

	if _, err := Verify(s, bogusPub, digest[:], sig); err != curve.ErrPointNotOnCurve {
		t.Fatalf("Verify accepted an off-curve pubKey, err=%v", err)
	}
}
