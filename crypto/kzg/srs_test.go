package kzg

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bls12381"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
)

func TestSetup(t *testing.T) {
	c := qt.New(t)
	testSetup(c, bls12381.New())
	testSetup(c, bn254.New())
}

func testSetup[S, G1, G2, GT any](c *qt.C, e ecc.Engine[S, G1, G2, GT]) {
	c.Run(e.Name(), func(c *qt.C) {
		fr := e.Fr()
		tau := fr.FromUint64(987654321)
		secret := tau
		srs, err := Setup(e, &secret, 4)
		c.Assert(err, qt.IsNil)
		c.Assert(fr.IsZero(secret), qt.IsTrue, qt.Commentf("secret not zeroized"))

		c.Assert(srs.Degree(), qt.Equals, 4)
		c.Assert(srs.CRSG1, qt.HasLen, 5)
		c.Assert(srs.CRSG2, qt.HasLen, 5)
		for i := range srs.CRSG1 {
			pow := fr.Exp(tau, uint64(i))
			c.Assert(e.G1().Equal(srs.CRSG1[i], e.G1().ScalarMul(e.G1().Generator(), pow)), qt.IsTrue)
			c.Assert(e.G2().Equal(srs.CRSG2[i], e.G2().ScalarMul(e.G2().Generator(), pow)), qt.IsTrue)
		}
		c.Assert(e.G2().Equal(srs.G2Tau, e.G2().ScalarMul(srs.G2, tau)), qt.IsTrue)
		c.Assert(Check(e, srs), qt.IsNil)

		c.Run("invalid degree zeroizes secret", func(c *qt.C) {
			secret := fr.FromUint64(7)
			_, err := Setup(e, &secret, 0)
			c.Assert(err, qt.ErrorIs, ErrInvalidInput)
			c.Assert(fr.IsZero(secret), qt.IsTrue)
		})

		c.Run("zero secret", func(c *qt.C) {
			secret := fr.Zero()
			_, err := Setup(e, &secret, 3)
			c.Assert(err, qt.ErrorIs, ErrInvalidInput)
			_, err = Setup(e, nil, 3)
			c.Assert(err, qt.ErrorIs, ErrInvalidInput)
		})

		c.Run("random secret", func(c *qt.C) {
			srs1, err := NewSRS(e, 2)
			c.Assert(err, qt.IsNil)
			srs2, err := NewSRS(e, 2)
			c.Assert(err, qt.IsNil)
			c.Assert(e.G2().Equal(srs1.G2Tau, srs2.G2Tau), qt.IsFalse)
			c.Assert(Check(e, srs1), qt.IsNil)
		})
	})
}

func TestSetupFromSeed(t *testing.T) {
	c := qt.New(t)
	e := bls12381.New()

	seed := []byte("reproducible setup")
	srs1, err := SetupFromSeed(e, seed, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(seed, qt.DeepEquals, make([]byte, len(seed)), qt.Commentf("seed not zeroed"))

	srs2, err := SetupFromSeed(e, []byte("reproducible setup"), 3)
	c.Assert(err, qt.IsNil)
	for i := range srs1.CRSG1 {
		c.Assert(e.G1().Equal(srs1.CRSG1[i], srs2.CRSG1[i]), qt.IsTrue)
	}

	srs3, err := SetupFromSeed(e, []byte("another setup"), 3)
	c.Assert(err, qt.IsNil)
	c.Assert(e.G2().Equal(srs1.G2Tau, srs3.G2Tau), qt.IsFalse)

	_, err = SetupFromSeed(e, nil, 3)
	c.Assert(err, qt.ErrorIs, ErrInvalidInput)
}

func TestCheck(t *testing.T) {
	c := qt.New(t)
	e := bls12381.New()

	build := func() *SRS[bls12381.G1, bls12381.G2] {
		srs, err := SetupFromSeed(e, []byte("check"), 4)
		c.Assert(err, qt.IsNil)
		return srs
	}
	c.Assert(Check(e, build()), qt.IsNil)

	testCases := []struct {
		name   string
		tamper func(*SRS[bls12381.G1, bls12381.G2])
	}{
		{"nil powers", func(s *SRS[bls12381.G1, bls12381.G2]) { s.CRSG1, s.CRSG2 = nil, nil }},
		{"length mismatch", func(s *SRS[bls12381.G1, bls12381.G2]) { s.CRSG2 = s.CRSG2[:3] }},
		{"wrong generator", func(s *SRS[bls12381.G1, bls12381.G2]) { s.CRSG1[0] = s.CRSG1[1] }},
		{"wrong tau", func(s *SRS[bls12381.G1, bls12381.G2]) { s.G2Tau = s.CRSG2[2] }},
		{"wrong G1 power", func(s *SRS[bls12381.G1, bls12381.G2]) { s.CRSG1[3] = s.CRSG1[2] }},
		{"wrong G2 power", func(s *SRS[bls12381.G1, bls12381.G2]) {
			s.CRSG2[4] = e.G2().Add(s.CRSG2[4], s.G2)
		}},
		{"identity generator", func(s *SRS[bls12381.G1, bls12381.G2]) { s.G1 = e.G1().Identity() }},
	}
	for _, tc := range testCases {
		c.Run(tc.name, func(c *qt.C) {
			srs := build()
			tc.tamper(srs)
			c.Assert(Check(e, srs), qt.ErrorIs, ErrInvalidSRS)
		})
	}
	c.Assert(Check[bls12381.Scalar, bls12381.G1, bls12381.G2, bls12381.GT](e, nil), qt.ErrorIs, ErrInvalidSRS)
}
