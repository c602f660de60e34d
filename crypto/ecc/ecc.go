// Package ecc defines the algebraic capabilities the commitment scheme is
// built on: a prime scalar field, two additive groups with scalar
// multiplication, a bilinear pairing into a target group and canonical byte
// encodings for scalars and group elements. Concrete curves live in the
// sub-packages and are selected by name through the curves package.
package ecc

import "errors"

var (
	// ErrSerialization is returned when a byte encoding cannot be decoded.
	ErrSerialization = errors.New("serialization error")
	// ErrZeroInverse is returned when inverting the zero scalar.
	ErrZeroInverse = errors.New("zero has no multiplicative inverse")
)

// Field is the arithmetic of a prime scalar field with elements of type S.
// Implementations treat S as an immutable value: every operation returns a
// new element and never modifies its arguments.
type Field[S any] interface {
	Zero() S
	One() S
	// FromUint64 maps a small integer into the field.
	FromUint64(v uint64) S
	// FromBytes interprets b as a big-endian integer reduced modulo the
	// field order.
	FromBytes(b []byte) S
	// Random samples a uniformly random element from a CSPRNG.
	Random() (S, error)
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S
	// Inverse returns ErrZeroInverse for the zero element.
	Inverse(a S) (S, error)
	Exp(a S, e uint64) S
	Equal(a, b S) bool
	IsZero(a S) bool
	String(a S) string
}

// Group is an additive group of prime order whose scalars are elements of
// type S.
type Group[S, P any] interface {
	Identity() P
	Generator() P
	Add(a, b P) P
	Sub(a, b P) P
	Neg(a P) P
	ScalarMul(p P, s S) P
	// MultiExp returns Σ bases[i]·scalars[i] split over at most workers
	// goroutines (0 picks a default). Both slices must have the same length.
	MultiExp(bases []P, scalars []S, workers int) (P, error)
	Equal(a, b P) bool
}

// Codec is the canonical fixed-size byte encoding of values of type T.
// Decode accepts both the compressed and the uncompressed form and wraps
// ErrSerialization on malformed input.
type Codec[T any] interface {
	Size(compressed bool) int
	Encode(v T, compressed bool) []byte
	Decode(b []byte) (T, error)
}

// Engine bundles the scalar field, the two source groups and the pairing of a
// pairing-friendly curve. S is the scalar type, G1 and G2 the source group
// element types and GT the target group element type.
type Engine[S, G1, G2, GT any] interface {
	// Name is the identifier used by the curves registry.
	Name() string
	Fr() Field[S]
	G1() Group[S, G1]
	G2() Group[S, G2]
	// Pair computes e(p, q).
	Pair(p G1, q G2) (GT, error)
	// PairingCheck reports whether ∏ e(p[i], q[i]) == 1, sharing a single
	// final exponentiation.
	PairingCheck(p []G1, q []G2) (bool, error)
	EqualGT(a, b GT) bool
	ScalarCodec() Codec[S]
	G1Codec() Codec[G1]
	G2Codec() Codec[G2]
}
