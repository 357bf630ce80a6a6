package scheme

import (
	"math/big"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
)

func weierstrassScheme(name, a, b, m, gx, gy, n string, base int) *Scheme {
	c := curve.NewWeierstrassCurve(name, a, b, m, base)
	return &Scheme{
		Curve: c,
		G:     curve.NewPoint(parseNat(gx, base), parseNat(gy, base)),
		N:     parseModulus(n, base),
	}
}

func montgomeryScheme(name, a, b, m, gx, gy, n string, base int) *Scheme {
	c := curve.NewMontgomeryCurve(name, a, b, m, base)
	return &Scheme{
		Curve: c,
		G:     curve.NewPoint(parseNat(gx, base), parseNat(gy, base)),
		N:     parseModulus(n, base),
	}
}

func edwardsScheme(name, cLit, d, m, gx, gy, n string, base int) *Scheme {
	c := curve.NewEdwardsCurve(name, cLit, d, m, base)
	return &Scheme{
		Curve: c,
		G:     curve.NewPoint(parseNat(gx, base), parseNat(gy, base)),
		N:     parseModulus(n, base),
	}
}

// LoadSecp256k1 returns the Scheme for secp256k1 (y² = x³+7), the curve
// used by Bitcoin and Ethereum signatures.
func LoadSecp256k1() *Scheme {
	return weierstrassScheme(
		"secp256k1",
		"0",
		"7",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		16,
	)
}

// LoadFp254BNb returns the Scheme for the 254-bit Barreto-Naehrig curve
// Fp254BNb (y² = x³+2).
func LoadFp254BNb() *Scheme {
	return weierstrassScheme(
		"fp254bnb",
		"0",
		"2",
		"2523648240000001BA344D80000000086121000000000013A700000000000013",
		"2",
		"20618254445CD1A9FE1F777D9C2D7076C736A280EC6066E95C7198A4CFC31C",
		"2523648240000001BA344D8000000007FF9F800000000010A10000000000000D",
		16,
	)
}

// LoadCurve25519 returns the Scheme for Curve25519
// (y² = x³+486662x²+x), restricted to the prime-order subgroup generated
// by the standard base point x=9 (no cofactor clearing is performed on
// points callers pass in; see curve/montgomery.go).
func LoadCurve25519() *Scheme {
	return montgomeryScheme(
		"curve25519",
		"486662",
		"1",
		"7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED",
		"9",
		"20AE19A1B8A086B4E01EDD2C7748D14C923D4D7E6D7C61B229E9C5A27ECED3D9",
		"1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED",
		16,
	)
}

// LoadCurve1174 returns the Scheme for Curve1174
// (x²+y² = 1+d·x²y², d=0x7FF...FB61), using the cofactor-4-cleared base
// point so that the generator has the prime order n listed in spec.md §6.
func LoadCurve1174() *Scheme {
	return edwardsScheme(
		"curve1174",
		"1",
		"7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFB61",
		"7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7",
		"7727E8E657302200D03130E4C4CBA189A38EAC04307B328EEEEA57EC04EA1F6",
		"284673A97B9B09BB54CA6DB550A9B0F81AB99920469FDA975782D451021E2C5",
		"1FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF77965C4DFD307348944D45FD166C971",
		16,
	)
}

// LoadToyWeierstrass97 returns the tiny curve y² = x³+2x+3 (mod 97) used
// as a hand-checkable fixture in spec.md §8. Its modulus is 97 ≡ 1 (mod 4),
// exercising curve's Tonelli-Shanks square-root fallback rather than the
// (m+1)/4 shortcut that Secp256k1, Fp254BNb and Curve1174 take.
func LoadToyWeierstrass97() *Scheme {
	return weierstrassScheme(
		"toy-weierstrass-97",
		"2",
		"3",
		"97",
		"0",
		"10",
		"50",
		10,
	)
}

// parseNat parses a decimal or hexadecimal literal into a safenum.Nat,
// the same literal-parsing boundary curve's own parseNat occupies —
// duplicated here since that helper is unexported.
func parseNat(literal string, base int) *safenum.Nat {
	n, ok := new(big.Int).SetString(literal, base)
	if !ok {
		panic("scheme: invalid integer literal " + literal)
	}
	return new(safenum.Nat).SetBytes(n.Bytes())
}

func parseModulus(literal string, base int) *safenum.Modulus {
	return safenum.ModulusFromNat(*parseNat(literal, base))
}
