package curve

import (
	"testing"

	"github.com/cronokirby/safenum"
)

func toyCurve() *WeierstrassCurve {
	return NewWeierstrassCurve("toy", "2", "3", "97", 10)
}

func natDec(s string) *safenum.Nat {
	return parseNat(s, 10)
}

func toyPoint(x, y string) Point {
	return NewPoint(natDec(x), natDec(y))
}

func TestWeierstrassAdd(t *testing.T) {
	c := toyCurve()
	p := toyPoint("3", "6")
	q := toyPoint("80", "10")
	got := c.Add(p, q)
	want := toyPoint("80", "87")
	if !got.Equal(want) {
		t.Fatalf("Add(P,Q) = (%v,%v), want (80,87)", got.x, got.y)
	}
	if !c.Check(got) {
		t.Fatal("Add(P,Q) result fails Check")
	}
}

func TestWeierstrassMul(t *testing.T) {
	c := toyCurve()
	p := toyPoint("3", "6")
	got := c.Mul(p, natDec("4"))
	want := toyPoint("3", "91")
	if !got.Equal(want) {
		t.Fatalf("Mul(P,4) = (%v,%v), want (3,91)", got.x, got.y)
	}
}

func TestFindY(t *testing.T) {
	c := toyCurve()
	y1, y2, err := c.FindY(natDec("11"))
	if err != nil {
		t.Fatalf("FindY(11) failed: %v", err)
	}
	if y1.Cmp(natDec("17")) != 0 || y2.Cmp(natDec("80")) != 0 {
		t.Fatalf("FindY(11) = (%v,%v), want (17,80)", y1, y2)
	}
	sum := new(safenum.Nat).ModAdd(y1, y2, c.Modulus())
	if !sum.EqZero() {
		t.Fatal("y1+y2 should be 0 mod m")
	}
	if !c.Check(NewPoint(natDec("11"), y1)) || !c.Check(NewPoint(natDec("11"), y2)) {
		t.Fatal("both roots should pass Check")
	}
}

func TestFindYNotOnCurve(t *testing.T) {
	c := toyCurve()
	found := false
	for i := 0; i < 97; i++ {
		x := new(safenum.Nat).SetUint64(uint64(i))
		if _, _, err := c.FindY(x); err != nil {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one x with no on-curve point")
	}
}

func TestUniversalInvariants(t *testing.T) {
	c := toyCurve()
	p := toyPoint("3", "6")
	q := toyPoint("80", "10")

	if !c.Check(c.Zero()) {
		t.Error("zero must pass Check")
	}
	if !c.Add(p, c.Zero()).Equal(p) || !c.Add(c.Zero(), p).Equal(p) {
		t.Error("adding zero must be identity")
	}
	if !c.Add(p, c.Inv(p)).Equal(c.Zero()) {
		t.Error("P + inv(P) must be zero")
	}
	if !c.Add(p, q).Equal(c.Add(q, p)) {
		t.Error("Add must be commutative")
	}
	if !c.Double(p).Equal(c.Add(p, p)) {
		t.Error("Double(P) must equal Add(P,P)")
	}
	if !c.Mul(p, new(safenum.Nat).SetUint64(0)).Equal(c.Zero()) {
		t.Error("Mul(P,0) must be zero")
	}
	if !c.Mul(p, new(safenum.Nat).SetUint64(1)).Equal(p) {
		t.Error("Mul(P,1) must be P")
	}
	if !c.Mul(p, new(safenum.Nat).SetUint64(2)).Equal(c.Double(p)) {
		t.Error("Mul(P,2) must equal Double(P)")
	}
	for _, r := range []Point{c.Add(p, q), c.Double(p), c.Mul(p, natDec("7"))} {
		if !c.Check(r) {
			t.Error("result of Add/Double/Mul must pass Check")
		}
	}
}
