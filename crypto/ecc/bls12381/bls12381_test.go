package bls12381

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/ecc"
)

func TestScalarField(t *testing.T) {
	c := qt.New(t)
	f := New().Fr()

	a := f.FromUint64(7)
	inv, err := f.Inverse(a)
	c.Assert(err, qt.IsNil)
	c.Assert(f.Equal(f.Mul(a, inv), f.One()), qt.IsTrue)

	_, err = f.Inverse(f.Zero())
	c.Assert(err, qt.ErrorIs, ecc.ErrZeroInverse)

	c.Assert(f.Equal(f.Exp(a, 3), f.FromUint64(343)), qt.IsTrue)
	c.Assert(f.Equal(f.Add(a, f.Neg(a)), f.Zero()), qt.IsTrue)
	c.Assert(f.Equal(f.FromBytes([]byte{0x01, 0x00}), f.FromUint64(256)), qt.IsTrue)
	c.Assert(f.String(f.FromUint64(611)), qt.Equals, "611")
}

func TestPairingBilinearity(t *testing.T) {
	c := qt.New(t)
	e := New()
	f := e.Fr()

	a, b := f.FromUint64(12), f.FromUint64(31)
	lhs, err := e.Pair(e.G1().ScalarMul(e.G1().Generator(), a), e.G2().ScalarMul(e.G2().Generator(), b))
	c.Assert(err, qt.IsNil)
	rhs, err := e.Pair(e.G1().ScalarMul(e.G1().Generator(), f.Mul(a, b)), e.G2().Generator())
	c.Assert(err, qt.IsNil)
	c.Assert(e.EqualGT(lhs, rhs), qt.IsTrue)

	other, err := e.Pair(e.G1().Generator(), e.G2().Generator())
	c.Assert(err, qt.IsNil)
	c.Assert(e.EqualGT(lhs, other), qt.IsFalse)
}

func TestCodecs(t *testing.T) {
	c := qt.New(t)
	e := New()

	s, err := e.Fr().Random()
	c.Assert(err, qt.IsNil)
	p1 := e.G1().ScalarMul(e.G1().Generator(), s)
	p2 := e.G2().ScalarMul(e.G2().Generator(), s)

	for _, compressed := range []bool{true, false} {
		b := e.ScalarCodec().Encode(s, compressed)
		c.Assert(b, qt.HasLen, e.ScalarCodec().Size(compressed))
		gotS, err := e.ScalarCodec().Decode(b)
		c.Assert(err, qt.IsNil)
		c.Assert(e.Fr().Equal(gotS, s), qt.IsTrue)

		b = e.G1Codec().Encode(p1, compressed)
		c.Assert(b, qt.HasLen, e.G1Codec().Size(compressed))
		got1, err := e.G1Codec().Decode(b)
		c.Assert(err, qt.IsNil)
		c.Assert(e.G1().Equal(got1, p1), qt.IsTrue)

		b = e.G2Codec().Encode(p2, compressed)
		c.Assert(b, qt.HasLen, e.G2Codec().Size(compressed))
		got2, err := e.G2Codec().Decode(b)
		c.Assert(err, qt.IsNil)
		c.Assert(e.G2().Equal(got2, p2), qt.IsTrue)
	}

	c.Run("malformed", func(c *qt.C) {
		_, err := e.G1Codec().Decode([]byte{0x01, 0x02})
		c.Assert(err, qt.ErrorIs, ecc.ErrSerialization)

		b := e.G1Codec().Encode(p1, true)
		_, err = e.G1Codec().Decode(append(b, make([]byte, 48)...))
		c.Assert(err, qt.ErrorIs, ecc.ErrSerialization)

		_, err = e.G2Codec().Decode(make([]byte, 10))
		c.Assert(err, qt.ErrorIs, ecc.ErrSerialization)

		// values above the modulus are not canonical
		notCanonical := make([]byte, 32)
		for i := range notCanonical {
			notCanonical[i] = 0xff
		}
		_, err = e.ScalarCodec().Decode(notCanonical)
		c.Assert(err, qt.ErrorIs, ecc.ErrSerialization)
	})
}

func TestMultiExp(t *testing.T) {
	c := qt.New(t)
	e := New()
	f := e.Fr()

	bases1 := make([]G1, 5)
	bases2 := make([]G2, 5)
	scalars := make([]Scalar, 5)
	want1, want2 := e.G1().Identity(), e.G2().Identity()
	for i := range scalars {
		bases1[i] = e.G1().ScalarMul(e.G1().Generator(), f.FromUint64(uint64(i+2)))
		bases2[i] = e.G2().ScalarMul(e.G2().Generator(), f.FromUint64(uint64(i+3)))
		scalars[i] = f.FromUint64(uint64(100 * (i + 1)))
		want1 = e.G1().Add(want1, e.G1().ScalarMul(bases1[i], scalars[i]))
		want2 = e.G2().Add(want2, e.G2().ScalarMul(bases2[i], scalars[i]))
	}
	for _, workers := range []int{0, 1, 4, 2048} {
		got1, err := e.G1().MultiExp(bases1, scalars, workers)
		c.Assert(err, qt.IsNil)
		c.Assert(e.G1().Equal(got1, want1), qt.IsTrue, qt.Commentf("workers %d", workers))
		got2, err := e.G2().MultiExp(bases2, scalars, workers)
		c.Assert(err, qt.IsNil)
		c.Assert(e.G2().Equal(got2, want2), qt.IsTrue, qt.Commentf("workers %d", workers))
	}

	_, err := e.G1().MultiExp(bases1[:2], scalars, 1)
	c.Assert(err, qt.IsNotNil)
}

func TestPairingCheck(t *testing.T) {
	c := qt.New(t)
	e := New()
	f := e.Fr()

	a := f.FromUint64(19)
	aG1 := e.G1().ScalarMul(e.G1().Generator(), a)
	aG2 := e.G2().ScalarMul(e.G2().Generator(), a)

	// e(a·G1, G2)·e(-G1, a·G2) == 1
	ok, err := e.PairingCheck([]G1{aG1, e.G1().Neg(e.G1().Generator())}, []G2{e.G2().Generator(), aG2})
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	ok, err = e.PairingCheck([]G1{aG1, e.G1().Neg(e.G1().Generator())}, []G2{e.G2().Generator(), e.G2().Generator()})
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
}

func TestWithBigIntWipes(t *testing.T) {
	c := qt.New(t)
	f := New().Fr()

	var seen *big.Int
	withBigInt(f.FromUint64(0xdeadbeef), func(k *big.Int) {
		c.Assert(k.Uint64(), qt.Equals, uint64(0xdeadbeef))
		seen = k
	})
	c.Assert(seen.Bits(), qt.Not(qt.HasLen), 0)
	for _, w := range seen.Bits() {
		c.Assert(w, qt.Equals, big.Word(0))
	}
}
