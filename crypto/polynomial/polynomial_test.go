package polynomial

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bls12381"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
)

func poly(r *Ring[bls12381.Scalar], coeffs ...uint64) Polynomial[bls12381.Scalar] {
	p := make(Polynomial[bls12381.Scalar], len(coeffs))
	for i, v := range coeffs {
		p[i] = r.Field().FromUint64(v)
	}
	return p
}

func newTestRing() *Ring[bls12381.Scalar] {
	return NewRing(bls12381.New().Fr())
}

func TestEvaluate(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()
	f := r.Field()

	tests := []struct {
		name   string
		coeffs []uint64
		x      uint64
		want   uint64
	}{
		{"empty", nil, 5, 0},
		{"constant", []uint64{9}, 123, 9},
		{"cubic", []uint64{2, 3, 5, 1}, 7, 611},
		{"trailing zeros", []uint64{2, 3, 5, 1, 0, 0}, 7, 611},
		{"at zero", []uint64{4, 8, 15}, 0, 4},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			got := r.Evaluate(poly(r, tt.coeffs...), f.FromUint64(tt.x))
			c.Assert(f.Equal(got, f.FromUint64(tt.want)), qt.IsTrue, qt.Commentf("got %s", f.String(got)))
		})
	}
}

func TestAddSub(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()

	p1 := poly(r, 1, 2, 3)
	p2 := poly(r, 5, 7)

	sum := r.Add(p1, p2)
	c.Assert(sum, qt.HasLen, 3)
	c.Assert(r.Equal(sum, poly(r, 6, 9, 3)), qt.IsTrue)

	diff := r.Sub(sum, p2)
	c.Assert(r.Equal(diff, p1), qt.IsTrue)

	// p2 - p1 has a negated leading coefficient
	neg := r.Sub(p2, p1)
	c.Assert(r.Equal(r.Add(neg, p1), p2), qt.IsTrue)
}

func TestMul(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()

	// (x + 1)(x + 2) = x² + 3x + 2
	got := r.Mul(poly(r, 1, 1), poly(r, 2, 1))
	c.Assert(got, qt.HasLen, 3)
	c.Assert(r.Equal(got, poly(r, 2, 3, 1)), qt.IsTrue)

	c.Assert(r.Mul(poly(r), poly(r, 1, 2)), qt.HasLen, 0)

	// product evaluates to the product of evaluations
	p1, p2 := poly(r, 3, 0, 4, 1), poly(r, 8, 6)
	x := r.Field().FromUint64(11)
	lhs := r.Evaluate(r.Mul(p1, p2), x)
	rhs := r.Field().Mul(r.Evaluate(p1, x), r.Evaluate(p2, x))
	c.Assert(r.Field().Equal(lhs, rhs), qt.IsTrue)
}

func TestDivRem(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()

	c.Run("exact", func(c *qt.C) {
		// x² + 3x + 2 = (x + 1)(x + 2)
		q, rem, err := r.DivRem(poly(r, 2, 3, 1), poly(r, 1, 1))
		c.Assert(err, qt.IsNil)
		c.Assert(r.Equal(q, poly(r, 2, 1)), qt.IsTrue)
		c.Assert(rem, qt.HasLen, 0)
	})

	c.Run("with remainder", func(c *qt.C) {
		num := poly(r, 2, 3, 5, 1)
		den := poly(r, 4, 0, 1)
		q, rem, err := r.DivRem(num, den)
		c.Assert(err, qt.IsNil)
		c.Assert(len(rem) < len(den), qt.IsTrue)
		c.Assert(r.Equal(r.Add(r.Mul(q, den), rem), num), qt.IsTrue)
	})

	c.Run("denominator with trailing zeros", func(c *qt.C) {
		q, err := r.Div(poly(r, 2, 3, 1), poly(r, 1, 1, 0, 0))
		c.Assert(err, qt.IsNil)
		c.Assert(r.Equal(q, poly(r, 2, 1)), qt.IsTrue)
	})

	c.Run("shorter numerator", func(c *qt.C) {
		q, err := r.Div(poly(r, 5), poly(r, 1, 1))
		c.Assert(err, qt.IsNil)
		c.Assert(q, qt.HasLen, 1)
		c.Assert(r.Field().IsZero(q[0]), qt.IsTrue)
	})

	c.Run("zero denominator", func(c *qt.C) {
		_, err := r.Div(poly(r, 1, 2), poly(r, 0, 0))
		c.Assert(err, qt.ErrorIs, ErrDivisionByZeroPolynomial)
		_, err = r.Div(poly(r, 1, 2), poly(r))
		c.Assert(err, qt.ErrorIs, ErrDivisionByZeroPolynomial)
	})

	c.Run("by linear factor", func(c *qt.C) {
		// p(x) - p(7) is divisible by x - 7
		p := poly(r, 2, 3, 5, 1)
		f := r.Field()
		z := f.FromUint64(7)
		num := r.Sub(p, Polynomial[bls12381.Scalar]{r.Evaluate(p, z)})
		q, rem, err := r.DivRem(num, Polynomial[bls12381.Scalar]{f.Neg(z), f.One()})
		c.Assert(err, qt.IsNil)
		c.Assert(rem, qt.HasLen, 0)
		c.Assert(q, qt.HasLen, 3)
	})
}

func TestInterpolate(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()
	f := r.Field()

	points := []bls12381.Scalar{f.FromUint64(1), f.FromUint64(2), f.FromUint64(3), f.FromUint64(10)}
	values := []bls12381.Scalar{f.FromUint64(6), f.FromUint64(0), f.FromUint64(42), f.FromUint64(7)}

	l, err := r.Interpolate(points, values)
	c.Assert(err, qt.IsNil)
	c.Assert(l, qt.HasLen, len(points))
	for i := range points {
		c.Assert(f.Equal(r.Evaluate(l, points[i]), values[i]), qt.IsTrue)
	}

	c.Run("recovers polynomial", func(c *qt.C) {
		p := poly(r, 2, 3, 5, 1)
		ys := make([]bls12381.Scalar, len(points))
		for i := range points {
			ys[i] = r.Evaluate(p, points[i])
		}
		got, err := r.Interpolate(points, ys)
		c.Assert(err, qt.IsNil)
		c.Assert(r.Equal(got, p), qt.IsTrue)
	})

	c.Run("empty", func(c *qt.C) {
		got, err := r.Interpolate(nil, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.HasLen, 0)
	})

	c.Run("length mismatch", func(c *qt.C) {
		_, err := r.Interpolate(points, values[:2])
		c.Assert(err, qt.ErrorIs, ErrInvalidInput)
	})

	c.Run("duplicate points", func(c *qt.C) {
		dup := []bls12381.Scalar{f.FromUint64(4), f.FromUint64(9), f.FromUint64(4)}
		_, err := r.Interpolate(dup, values[:3])
		c.Assert(err, qt.ErrorIs, ErrDuplicateEvaluationPoint)
	})
}

func TestVanishing(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()
	f := r.Field()

	points := []bls12381.Scalar{f.FromUint64(3), f.FromUint64(5), f.FromUint64(8)}
	z := r.Vanishing(points)
	c.Assert(z, qt.HasLen, len(points)+1)
	c.Assert(f.Equal(z[len(z)-1], f.One()), qt.IsTrue)
	for _, p := range points {
		c.Assert(f.IsZero(r.Evaluate(z, p)), qt.IsTrue)
	}
	c.Assert(f.IsZero(r.Evaluate(z, f.FromUint64(4))), qt.IsFalse)

	one := r.Vanishing(nil)
	c.Assert(r.Equal(one, poly(r, 1)), qt.IsTrue)
}

func TestTrimResizeEqual(t *testing.T) {
	c := qt.New(t)
	r := newTestRing()

	c.Assert(r.Trim(poly(r, 1, 2, 0, 0)), qt.HasLen, 2)
	c.Assert(r.Trim(poly(r, 0, 0)), qt.HasLen, 0)

	p := poly(r, 1, 2)
	c.Assert(r.Resize(p, 4), qt.HasLen, 4)
	c.Assert(r.Equal(r.Resize(p, 4), p), qt.IsTrue)
	c.Assert(r.Equal(r.Resize(p, 1), poly(r, 1)), qt.IsTrue)

	c.Assert(r.Equal(poly(r), poly(r, 0)), qt.IsTrue)
	c.Assert(r.Equal(poly(r, 1, 2), poly(r, 1, 3)), qt.IsFalse)
	c.Assert(poly(r, 1, 2, 3).Degree(), qt.Equals, 2)
}

func TestRingOverBN254(t *testing.T) {
	c := qt.New(t)
	r := NewRing(bn254.New().Fr())
	f := r.Field()

	p := Polynomial[bn254.Scalar]{f.FromUint64(2), f.FromUint64(3), f.FromUint64(5), f.FromUint64(1)}
	c.Assert(f.Equal(r.Evaluate(p, f.FromUint64(7)), f.FromUint64(611)), qt.IsTrue)

	points := []bn254.Scalar{f.FromUint64(1), f.FromUint64(2)}
	z := r.Vanishing(points)
	q, rem, err := r.DivRem(r.Mul(z, p), z)
	c.Assert(err, qt.IsNil)
	c.Assert(rem, qt.HasLen, 0)
	c.Assert(r.Equal(q, p), qt.IsTrue)
}
