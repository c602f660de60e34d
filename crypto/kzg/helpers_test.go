package kzg

import (
	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
)

func randomScalars[S any](c *qt.C, f ecc.Field[S], n int) []S {
	c.Helper()
	out := make([]S, n)
	for i := range out {
		v, err := f.Random()
		c.Assert(err, qt.IsNil)
		out[i] = v
	}
	return out
}

func randomPolynomial[S any](c *qt.C, f ecc.Field[S], n int) polynomial.Polynomial[S] {
	return polynomial.Polynomial[S](randomScalars(c, f, n))
}

func fromUint64s[S any](f ecc.Field[S], values ...uint64) []S {
	out := make([]S, len(values))
	for i, v := range values {
		out[i] = f.FromUint64(v)
	}
	return out
}

// newTestKZG builds an instance on a reproducible SRS.
func newTestKZG[S, G1, G2, GT any](c *qt.C, e ecc.Engine[S, G1, G2, GT], degree int, opts ...Option) *KZG[S, G1, G2, GT] {
	c.Helper()
	srs, err := SetupFromSeed(e, []byte(c.Name()), degree)
	c.Assert(err, qt.IsNil)
	k, err := New(e, srs, opts...)
	c.Assert(err, qt.IsNil)
	return k
}
