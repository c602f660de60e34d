package kzg

import (
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/log"
)

// checkPoints validates a set of evaluation points for a batch opening: it
// must not be empty, must fit the SRS (the vanishing polynomial has
// len(points)+1 coefficients) and must not contain duplicates.
func (k *KZG[S, G1, G2, GT]) checkPoints(points []S) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty point set", ErrInvalidInput)
	}
	if len(points) > k.Degree() {
		return fmt.Errorf("%w: %d points, SRS supports at most %d",
			ErrInvalidInput, len(points), k.Degree())
	}
	return k.ring.CheckDistinct(points)
}

// Lagrange evaluates poly at every point and returns the polynomial
// interpolating those evaluations, zero padded to the length of poly so both
// can be subtracted coefficient by coefficient.
func (k *KZG[S, G1, G2, GT]) Lagrange(poly polynomial.Polynomial[S], points []S) (polynomial.Polynomial[S], error) {
	values := make([]S, len(points))
	for i, p := range points {
		values[i] = k.ring.Evaluate(poly, p)
	}
	l, err := k.ring.Interpolate(points, values)
	if err != nil {
		return nil, err
	}
	return k.ring.Resize(l, max(len(poly), len(l))), nil
}

// MultiOpen returns a single proof for the evaluations of poly at all the
// points. The proof is the commitment to q(x) = (poly(x) - L(x)) / Z(x),
// where L interpolates poly on the points and Z vanishes on them.
func (k *KZG[S, G1, G2, GT]) MultiOpen(poly polynomial.Polynomial[S], points []S) (G1, error) {
	if err := k.checkPolynomial(poly); err != nil {
		return k.engine.G1().Identity(), err
	}
	if err := k.checkPoints(points); err != nil {
		return k.engine.G1().Identity(), err
	}
	z := k.ring.Vanishing(points)
	l, err := k.Lagrange(poly, points)
	if err != nil {
		return k.engine.G1().Identity(), err
	}
	quotient, remainder, err := k.ring.DivRem(k.ring.Sub(poly, l), z)
	if err != nil {
		return k.engine.G1().Identity(), fmt.Errorf("could not compute quotient: %w", err)
	}
	if len(remainder) != 0 {
		// poly - L vanishes on every point, so Z always divides it
		return k.engine.G1().Identity(), fmt.Errorf("non-zero remainder of degree %d", remainder.Degree())
	}
	proof, err := msm(k.engine.G1(), k.srs.CRSG1, quotient, k.config.Workers)
	if err != nil {
		return k.engine.G1().Identity(), err
	}
	log.Debugw("polynomial opened at multiple points", "curve", k.engine.Name(), "points", len(points))
	return proof, nil
}

// VerifyMulti checks a batch opening proof for the claimed values at the
// points. It commits to the vanishing polynomial Z in G2 and to the
// interpolation L of the claimed values in G1 and checks:
//
//	e(proof, [Z]₂) == e(commitment - [L]₁, G2)
//
// As with Verify, an invalid proof returns false and a nil error.
func (k *KZG[S, G1, G2, GT]) VerifyMulti(points, values []S, commitment, proof G1) (bool, error) {
	if len(points) != len(values) {
		return false, fmt.Errorf("%w: %d points and %d values", ErrInvalidInput, len(points), len(values))
	}
	if err := k.checkPoints(points); err != nil {
		return false, err
	}
	z := k.ring.Vanishing(points)
	commitmentZ, err := msm(k.engine.G2(), k.srs.CRSG2, z, k.config.Workers)
	if err != nil {
		return false, err
	}
	l, err := k.ring.Interpolate(points, values)
	if err != nil {
		return false, err
	}
	commitmentL, err := msm(k.engine.G1(), k.srs.CRSG1, l, k.config.Workers)
	if err != nil {
		return false, err
	}

	shifted := k.engine.G1().Sub(commitment, commitmentL)
	ok, err := pairingCheck(k.engine, proof, commitmentZ, shifted, k.srs.G2)
	if err != nil {
		return false, err
	}
	log.Debugw("multi opening proof verified", "curve", k.engine.Name(), "points", len(points), "valid", ok)
	return ok, nil
}
