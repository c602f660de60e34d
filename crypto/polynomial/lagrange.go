package polynomial

import "fmt"

// Vanishing returns Z(x) = ∏ (x - pᵢ), the monic polynomial that is zero
// exactly on the given points. For no points it returns the constant 1.
func (r *Ring[S]) Vanishing(points []S) Polynomial[S] {
	z := Polynomial[S]{r.f.One()}
	for _, p := range points {
		z = r.Mul(z, Polynomial[S]{r.f.Neg(p), r.f.One()})
	}
	return z
}

// CheckDistinct returns ErrDuplicateEvaluationPoint if any two points are
// equal.
func (r *Ring[S]) CheckDistinct(points []S) error {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if r.f.Equal(points[i], points[j]) {
				return fmt.Errorf("%w: indexes %d and %d (%s)",
					ErrDuplicateEvaluationPoint, i, j, r.f.String(points[i]))
			}
		}
	}
	return nil
}

// Interpolate returns the Lagrange interpolating polynomial L with
// L(points[i]) = values[i] for every i. The result has len(points)
// coefficients, the empty input interpolates to the empty polynomial.
// The points must be pairwise distinct.
func (r *Ring[S]) Interpolate(points, values []S) (Polynomial[S], error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf("%w: %d points and %d values",
			ErrInvalidInput, len(points), len(values))
	}
	if err := r.CheckDistinct(points); err != nil {
		return nil, err
	}
	res := make(Polynomial[S], len(points))
	for i := range res {
		res[i] = r.f.Zero()
	}
	for i, xi := range points {
		basis := Polynomial[S]{r.f.One()}
		denom := r.f.One()
		for j, xj := range points {
			if i == j {
				continue
			}
			basis = r.Mul(basis, Polynomial[S]{r.f.Neg(xj), r.f.One()})
			denom = r.f.Mul(denom, r.f.Sub(xi, xj))
		}
		inv, err := r.f.Inverse(denom)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEvaluationPoint, err)
		}
		res = r.Add(res, r.Scale(basis, r.f.Mul(values[i], inv)))
	}
	return res, nil
}
