// Package mapper embeds arbitrary byte strings into sequences of valid
// curve points and back, so that ElGamal (which only knows how to
// encrypt points) can carry plaintext data.
package mapper

import (
	"errors"

	"github.com/cronokirby/safenum"

	"github.com/ecc-suite/ecccore/curve"
)

// ErrMappingExhausted is returned by Pack when a block's one-byte nonce
// search runs through all 256 values without landing on an on-curve x,
// indicating the curve's modulus is too small for the chosen block size.
var ErrMappingExhausted = errors.New("mapper: nonce search exhausted, shrink block size")

// Mapper converts blocks of BlockSize bytes to and from curve points
// over c, using a one-byte nonce prefixed to each block as the escape
// value that lands the candidate x-coordinate on the curve.
type Mapper struct {
	BlockSize int
	c         curve.Curve
}

// New builds a Mapper for blocks of blockSize bytes over c. It panics if
// blockSize leaves no room for the one-byte nonce within the curve
// modulus's byte length, mirroring spec.md §4.3's capacity requirement
// B+1 ≤ ⌊log₂(m)/8⌋.
func New(blockSize int, c curve.Curve) *Mapper {
	capacity := (c.Modulus().BitLen() - 1) / 8
	if blockSize+1 > capacity {
		panic("mapper: block size leaves no room for the nonce byte under this curve's modulus")
	}
	return &Mapper{BlockSize: blockSize, c: c}
}

// candidate builds the big-endian [nonce][block] byte string used as a
// trial x-coordinate.
func candidate(nonce byte, block []byte) []byte {
	buf := make([]byte, 1+len(block))
	buf[0] = nonce
	copy(buf[1:], block)
	return buf
}

// Pack pads data with trailing zero bytes to a multiple of BlockSize and
// embeds each resulting block into a curve point, searching nonces
// 0..255 for one whose [nonce][block] byte string is a valid
// x-coordinate.
func (m *Mapper) Pack(data []byte) ([]curve.Point, error) {
	padded := make([]byte, len(data))
	copy(padded, data)
	if rem := len(padded) % m.BlockSize; rem != 0 {
		padded = append(padded, make([]byte, m.BlockSize-rem)...)
	}

	points := make([]curve.Point, 0, len(padded)/m.BlockSize)
	for off := 0; off < len(padded); off += m.BlockSize {
		block := padded[off : off+m.BlockSize]
		p, err := m.packBlock(block)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func (m *Mapper) packBlock(block []byte) (curve.Point, error) {
	nonce := 0
	for {
		if nonce > 0xff {
			return curve.Point{}, ErrMappingExhausted
		}
		x := new(safenum.Nat).SetBytes(candidate(byte(nonce), block))
		y1, _, err := m.c.FindY(x)
		if err == nil {
			return curve.NewPoint(x, y1), nil
		}
		nonce++
	}
}

// Unpack reverses Pack: for each point it takes the x-coordinate's
// big-endian bytes, discards the leading nonce byte, and appends the
// remaining BlockSize bytes to the output. Trailing zero padding added
// by Pack is preserved; stripping it is the caller's responsibility.
func (m *Mapper) Unpack(points []curve.Point) []byte {
	out := make([]byte, 0, len(points)*m.BlockSize)
	byteLen := 1 + m.BlockSize
	for _, p := range points {
		xb := p.X().Bytes()
		if len(xb) < byteLen {
			padded := make([]byte, byteLen)
			copy(padded[byteLen-len(xb):], xb)
			xb = padded
		}
		out = append(out, xb[len(xb)-m.BlockSize:]...)
	}
	return out
}
