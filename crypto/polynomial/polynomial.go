// Package polynomial implements arithmetic over univariate polynomials in
// coefficient form, generic over the scalar field provided by an ecc.Field.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
)

var (
	// ErrInvalidInput is returned when the arguments do not have the
	// expected shape, e.g. different number of points and values.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZeroPolynomial is returned when dividing by an empty or
	// identically zero polynomial.
	ErrDivisionByZeroPolynomial = errors.New("division by zero polynomial")
	// ErrDuplicateEvaluationPoint is returned when a set of evaluation
	// points contains the same point twice.
	ErrDuplicateEvaluationPoint = errors.New("duplicate evaluation point")
)

// Polynomial holds the coefficients of a polynomial, index i being the
// coefficient of degree i. Trailing zero coefficients are kept unless the
// operation documents otherwise.
type Polynomial[S any] []S

// Degree returns len(p)-1, which is -1 for the empty polynomial.
func (p Polynomial[S]) Degree() int {
	return len(p) - 1
}

// Ring performs polynomial arithmetic over the field F. It holds no state
// besides the field and is safe for concurrent use.
type Ring[S any] struct {
	f ecc.Field[S]
}

// NewRing returns a Ring over the provided field.
func NewRing[S any](f ecc.Field[S]) *Ring[S] {
	return &Ring[S]{f: f}
}

// Field returns the underlying scalar field.
func (r *Ring[S]) Field() ecc.Field[S] {
	return r.f
}

// Zero returns the zero polynomial as a single zero coefficient.
func (r *Ring[S]) Zero() Polynomial[S] {
	return Polynomial[S]{r.f.Zero()}
}

// Add returns p1+p2. The result has max(len(p1), len(p2)) coefficients,
// missing coefficients are treated as zero.
func (r *Ring[S]) Add(p1, p2 Polynomial[S]) Polynomial[S] {
	res := make(Polynomial[S], max(len(p1), len(p2)))
	for i := range res {
		switch {
		case i < len(p1) && i < len(p2):
			res[i] = r.f.Add(p1[i], p2[i])
		case i < len(p1):
			res[i] = p1[i]
		default:
			res[i] = p2[i]
		}
	}
	return res
}

// Sub returns p1-p2 with max(len(p1), len(p2)) coefficients.
func (r *Ring[S]) Sub(p1, p2 Polynomial[S]) Polynomial[S] {
	res := make(Polynomial[S], max(len(p1), len(p2)))
	for i := range res {
		switch {
		case i < len(p1) && i < len(p2):
			res[i] = r.f.Sub(p1[i], p2[i])
		case i < len(p1):
			res[i] = p1[i]
		default:
			res[i] = r.f.Neg(p2[i])
		}
	}
	return res
}

// Scale returns s·p.
func (r *Ring[S]) Scale(p Polynomial[S], s S) Polynomial[S] {
	res := make(Polynomial[S], len(p))
	for i := range p {
		res[i] = r.f.Mul(p[i], s)
	}
	return res
}

// Mul returns the product p1·p2 (discrete convolution of the coefficients).
// For non-empty inputs the result has len(p1)+len(p2)-1 coefficients, if any
// input is empty the result is empty.
func (r *Ring[S]) Mul(p1, p2 Polynomial[S]) Polynomial[S] {
	if len(p1) == 0 || len(p2) == 0 {
		return Polynomial[S]{}
	}
	res := make(Polynomial[S], len(p1)+len(p2)-1)
	for i := range res {
		res[i] = r.f.Zero()
	}
	for i := range p1 {
		for j := range p2 {
			res[i+j] = r.f.Add(res[i+j], r.f.Mul(p1[i], p2[j]))
		}
	}
	return res
}

// Evaluate returns p(x) using Horner's rule. The empty polynomial evaluates
// to zero.
func (r *Ring[S]) Evaluate(p Polynomial[S], x S) S {
	acc := r.f.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		acc = r.f.Add(r.f.Mul(acc, x), p[i])
	}
	return acc
}

// Div returns the quotient of numerator divided by denominator, discarding
// the remainder. See DivRem.
func (r *Ring[S]) Div(numerator, denominator Polynomial[S]) (Polynomial[S], error) {
	q, _, err := r.DivRem(numerator, denominator)
	return q, err
}

// DivRem performs polynomial long division and returns the quotient and the
// trimmed remainder, so that numerator = quotient·denominator + remainder.
// The leading term of the remainder is eliminated with the inverse of the
// denominator's leading coefficient until the remainder is shorter than the
// denominator. If the numerator is shorter than the denominator the quotient
// is the zero polynomial. An empty or identically zero denominator returns
// ErrDivisionByZeroPolynomial.
func (r *Ring[S]) DivRem(numerator, denominator Polynomial[S]) (Polynomial[S], Polynomial[S], error) {
	den := r.Trim(denominator)
	if len(den) == 0 {
		return nil, nil, ErrDivisionByZeroPolynomial
	}
	rem := r.Trim(numerator)
	if len(rem) < len(den) {
		return r.Zero(), rem, nil
	}
	leadInv, err := r.f.Inverse(den[len(den)-1])
	if err != nil {
		// unreachable after trimming, kept to never return a wrong quotient
		return nil, nil, fmt.Errorf("%w: %v", ErrDivisionByZeroPolynomial, err)
	}
	quotient := make(Polynomial[S], len(rem)-len(den)+1)
	for i := range quotient {
		quotient[i] = r.f.Zero()
	}
	for len(rem) >= len(den) {
		shift := len(rem) - len(den)
		coeff := r.f.Mul(rem[len(rem)-1], leadInv)
		quotient[shift] = coeff
		for i := range den {
			rem[shift+i] = r.f.Sub(rem[shift+i], r.f.Mul(coeff, den[i]))
		}
		rem = r.Trim(rem)
	}
	return quotient, rem, nil
}

// Trim returns a copy of p without trailing zero coefficients. The zero
// polynomial trims to the empty polynomial.
func (r *Ring[S]) Trim(p Polynomial[S]) Polynomial[S] {
	n := len(p)
	for n > 0 && r.f.IsZero(p[n-1]) {
		n--
	}
	res := make(Polynomial[S], n)
	copy(res, p[:n])
	return res
}

// Resize returns a copy of p with exactly n coefficients, padding with zeros
// or dropping the highest ones.
func (r *Ring[S]) Resize(p Polynomial[S], n int) Polynomial[S] {
	res := make(Polynomial[S], n)
	copy(res, p)
	for i := len(p); i < n; i++ {
		res[i] = r.f.Zero()
	}
	return res
}

// Equal reports whether p1 and p2 represent the same polynomial, ignoring
// trailing zero coefficients.
func (r *Ring[S]) Equal(p1, p2 Polynomial[S]) bool {
	a, b := r.Trim(p1), r.Trim(p2)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !r.f.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
