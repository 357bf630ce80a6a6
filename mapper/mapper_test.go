package mapper

import (
	"bytes"
	"testing"

	"github.com/ecc-suite/ecccore/scheme"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	s := scheme.LoadSecp256k1()
	m := New(16, s.Curve)

	msg := []byte("a thirteen-byte message that spans a few blocks")
	points, err := m.Pack(msg)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	for _, p := range points {
		if !s.Curve.Check(p) {
			t.Fatal("packed point fails Check")
		}
	}

	got := m.Unpack(points)
	padded := make([]byte, len(got))
	copy(padded, msg)
	if !bytes.Equal(got, padded) {
		t.Fatalf("round trip mismatch: got %q, want %q (padded)", got, padded)
	}
}

func TestPackUnpackExactBlockMultiple(t *testing.T) {
	s := scheme.LoadSecp256k1()
	m := New(16, s.Curve)

	msg := bytes.Repeat([]byte{0x42}, 32)
	points, err := m.Pack(msg)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(points))
	}
	if got := m.Unpack(points); !bytes.Equal(got, msg) {
		t.Fatalf("round trip mismatch on exact-multiple input")
	}
}
