// Package bn254 implements the BN254 pairing operations.
// It provides a wrapper around the gnark-crypto implementation to conform to
// the ecc.Engine interface.
package bn254

import (
	"fmt"
	"math/big"

	gecc "github.com/consensys/gnark-crypto/ecc"
	bn254 "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/vocdoni/davinci-kzg/crypto/ecc"
)

// CurveType is the identifier for the BN254 curve implementation
const CurveType = "bn254"

type (
	// Scalar is an element of the BN254 scalar field Fr.
	Scalar = fr.Element
	// G1 is an affine point of the first source group.
	G1 = bn254.G1Affine
	// G2 is an affine point of the second source group.
	G2 = bn254.G2Affine
	// GT is an element of the pairing target group.
	GT = bn254.GT
)

// generators of G1 and G2 in affine coordinates
var (
	g1Gen bn254.G1Affine
	g2Gen bn254.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bn254.Generators()
}

// Engine is the BN254 implementation of ecc.Engine. The zero value is
// ready to use and safe for concurrent use.
type Engine struct{}

// Ensure that Engine implements the ecc.Engine interface.
var _ ecc.Engine[Scalar, G1, G2, GT] = Engine{}

// New returns a BN254 engine.
func New() ecc.Engine[Scalar, G1, G2, GT] { return Engine{} }

func (Engine) Name() string { return CurveType }

func (Engine) Fr() ecc.Field[Scalar] { return scalarField{} }

func (Engine) G1() ecc.Group[Scalar, G1] { return g1Group{} }

func (Engine) G2() ecc.Group[Scalar, G2] { return g2Group{} }

// Pair computes the optimal ate pairing e(p, q).
func (Engine) Pair(p G1, q G2) (GT, error) {
	return bn254.Pair([]G1{p}, []G2{q})
}

func (Engine) PairingCheck(p []G1, q []G2) (bool, error) {
	return bn254.PairingCheck(p, q)
}

func (Engine) EqualGT(a, b GT) bool { return a.Equal(&b) }

func (Engine) ScalarCodec() ecc.Codec[Scalar] { return scalarCodec{} }

func (Engine) G1Codec() ecc.Codec[G1] { return g1Codec{} }

func (Engine) G2Codec() ecc.Codec[G2] { return g2Codec{} }

// maxMultiExpTasks is the largest task count gnark-crypto accepts.
const maxMultiExpTasks = 1024

// withBigInt calls fn with s converted to a big.Int and wipes the words of
// that big.Int afterwards, so SRS powers do not linger on the heap.
func withBigInt(s Scalar, fn func(k *big.Int)) {
	k := s.BigInt(new(big.Int))
	defer clear(k.Bits())
	fn(k)
}

type scalarField struct{}

func (scalarField) Zero() Scalar { return Scalar{} }

func (scalarField) One() Scalar { return fr.One() }

func (scalarField) FromUint64(v uint64) Scalar {
	var e Scalar
	e.SetUint64(v)
	return e
}

func (scalarField) FromBytes(b []byte) Scalar {
	var e Scalar
	e.SetBytes(b)
	return e
}

func (scalarField) Random() (Scalar, error) {
	var e Scalar
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, fmt.Errorf("sample scalar: %w", err)
	}
	return e, nil
}

func (scalarField) Add(a, b Scalar) Scalar {
	var e Scalar
	e.Add(&a, &b)
	return e
}

func (scalarField) Sub(a, b Scalar) Scalar {
	var e Scalar
	e.Sub(&a, &b)
	return e
}

func (scalarField) Mul(a, b Scalar) Scalar {
	var e Scalar
	e.Mul(&a, &b)
	return e
}

func (scalarField) Neg(a Scalar) Scalar {
	var e Scalar
	e.Neg(&a)
	return e
}

func (scalarField) Inverse(a Scalar) (Scalar, error) {
	if a.IsZero() {
		return Scalar{}, ecc.ErrZeroInverse
	}
	var e Scalar
	e.Inverse(&a)
	return e, nil
}

func (scalarField) Exp(a Scalar, k uint64) Scalar {
	var e Scalar
	e.Exp(a, new(big.Int).SetUint64(k))
	return e
}

func (scalarField) Equal(a, b Scalar) bool { return a.Equal(&b) }

func (scalarField) IsZero(a Scalar) bool { return a.IsZero() }

func (scalarField) String(a Scalar) string { return a.String() }

type g1Group struct{}

func (g1Group) Identity() G1 {
	var p G1
	p.SetInfinity()
	return p
}

func (g1Group) Generator() G1 { return g1Gen }

func (g1Group) Add(a, b G1) G1 {
	var p G1
	p.Add(&a, &b)
	return p
}

func (g1Group) Sub(a, b G1) G1 {
	var p G1
	p.Sub(&a, &b)
	return p
}

func (g1Group) Neg(a G1) G1 {
	var p G1
	p.Neg(&a)
	return p
}

func (g1Group) ScalarMul(a G1, s Scalar) G1 {
	var p G1
	withBigInt(s, func(k *big.Int) { p.ScalarMultiplication(&a, k) })
	return p
}

func (g1Group) MultiExp(bases []G1, scalars []Scalar, workers int) (G1, error) {
	var p G1
	if _, err := p.MultiExp(bases, scalars, gecc.MultiExpConfig{NbTasks: min(workers, maxMultiExpTasks)}); err != nil {
		return G1{}, fmt.Errorf("multiexp: %w", err)
	}
	return p, nil
}

func (g1Group) Equal(a, b G1) bool { return a.Equal(&b) }

type g2Group struct{}

func (g2Group) Identity() G2 {
	var p G2
	p.SetInfinity()
	return p
}

func (g2Group) Generator() G2 { return g2Gen }

func (g2Group) Add(a, b G2) G2 {
	var p G2
	p.Add(&a, &b)
	return p
}

func (g2Group) Sub(a, b G2) G2 {
	var p G2
	p.Sub(&a, &b)
	return p
}

func (g2Group) Neg(a G2) G2 {
	var p G2
	p.Neg(&a)
	return p
}

func (g2Group) ScalarMul(a G2, s Scalar) G2 {
	var p G2
	withBigInt(s, func(k *big.Int) { p.ScalarMultiplication(&a, k) })
	return p
}

func (g2Group) MultiExp(bases []G2, scalars []Scalar, workers int) (G2, error) {
	var p G2
	if _, err := p.MultiExp(bases, scalars, gecc.MultiExpConfig{NbTasks: min(workers, maxMultiExpTasks)}); err != nil {
		return G2{}, fmt.Errorf("multiexp: %w", err)
	}
	return p, nil
}

func (g2Group) Equal(a, b G2) bool { return a.Equal(&b) }

// scalarCodec has a single 32 byte big-endian form.
type scalarCodec struct{}

func (scalarCodec) Size(bool) int { return fr.Bytes }

func (scalarCodec) Encode(v Scalar, _ bool) []byte {
	b := v.Bytes()
	return b[:]
}

func (scalarCodec) Decode(b []byte) (Scalar, error) {
	var e Scalar
	if err := e.SetBytesCanonical(b); err != nil {
		return Scalar{}, fmt.Errorf("%w: scalar: %v", ecc.ErrSerialization, err)
	}
	return e, nil
}

type g1Codec struct{}

func (g1Codec) Size(compressed bool) int {
	if compressed {
		return bn254.SizeOfG1AffineCompressed
	}
	return bn254.SizeOfG1AffineUncompressed
}

func (g1Codec) Encode(v G1, compressed bool) []byte {
	if compressed {
		b := v.Bytes()
		return b[:]
	}
	b := v.RawBytes()
	return b[:]
}

func (c g1Codec) Decode(b []byte) (G1, error) {
	if len(b) != c.Size(true) && len(b) != c.Size(false) {
		return G1{}, fmt.Errorf("%w: G1: unexpected length %d", ecc.ErrSerialization, len(b))
	}
	var p G1
	n, err := p.SetBytes(b)
	if err != nil {
		return G1{}, fmt.Errorf("%w: G1: %v", ecc.ErrSerialization, err)
	}
	if n != len(b) {
		return G1{}, fmt.Errorf("%w: G1: %d trailing bytes", ecc.ErrSerialization, len(b)-n)
	}
	return p, nil
}

type g2Codec struct{}

func (g2Codec) Size(compressed bool) int {
	if compressed {
		return bn254.SizeOfG2AffineCompressed
	}
	return bn254.SizeOfG2AffineUncompressed
}

func (g2Codec) Encode(v G2, compressed bool) []byte {
	if compressed {
		b := v.Bytes()
		return b[:]
	}
	b := v.RawBytes()
	return b[:]
}

func (c g2Codec) Decode(b []byte) (G2, error) {
	if len(b) != c.Size(true) && len(b) != c.Size(false) {
		return G2{}, fmt.Errorf("%w: G2: unexpected length %d", ecc.ErrSerialization, len(b))
	}
	var p G2
	n, err := p.SetBytes(b)
	if err != nil {
		return G2{}, fmt.Errorf("%w: G2: %v", ecc.ErrSerialization, err)
	}
	if n != len(b) {
		return G2{}, fmt.Errorf("%w: G2: %d trailing bytes", ecc.ErrSerialization, len(b)-n)
	}
	return p, nil
}
