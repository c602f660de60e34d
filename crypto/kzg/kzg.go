// Package kzg implements the KZG polynomial commitment scheme over any
// pairing-friendly curve exposed as an ecc.Engine. A prover commits to a
// polynomial with a single G1 element and later proves its evaluations at
// one or many points with a single G1 element each, and a verifier checks
// those proofs with two pairings using only the public SRS.
//
// All operations are pure functions of their inputs and the read-only SRS,
// so a KZG instance can be used concurrently.
package kzg

import (
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/log"
)

// Option configures a KZG instance.
type Option func(*Config)

// Config holds the tunables of a KZG instance.
type Config struct {
	// Workers is the number of goroutines used by multi-scalar
	// multiplications. Defaults to GOMAXPROCS.
	Workers int
}

// WithWorkers sets the number of goroutines used by multi-scalar
// multiplications. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// KZG commits, opens and verifies polynomials against a fixed SRS.
type KZG[S, G1, G2, GT any] struct {
	engine ecc.Engine[S, G1, G2, GT]
	srs    *SRS[G1, G2]
	ring   *polynomial.Ring[S]
	config Config
}

// New returns a KZG instance bound to the provided engine and SRS. Only the
// shape of the SRS is checked here, use Check to validate an SRS of unknown
// origin.
func New[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], srs *SRS[G1, G2], opts ...Option) (*KZG[S, G1, G2, GT], error) {
	if srs == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidSRS)
	}
	if srs.Degree() < 1 || len(srs.CRSG1) != len(srs.CRSG2) {
		return nil, fmt.Errorf("%w: got %d G1 and %d G2 powers", ErrInvalidSRS, len(srs.CRSG1), len(srs.CRSG2))
	}
	config := Config{Workers: defaultWorkers()}
	for _, opt := range opts {
		opt(&config)
	}
	return &KZG[S, G1, G2, GT]{
		engine: e,
		srs:    srs,
		ring:   polynomial.NewRing(e.Fr()),
		config: config,
	}, nil
}

// Engine returns the curve engine.
func (k *KZG[S, G1, G2, GT]) Engine() ecc.Engine[S, G1, G2, GT] {
	return k.engine
}

// SRS returns the structured reference string. It must not be modified.
func (k *KZG[S, G1, G2, GT]) SRS() *SRS[G1, G2] {
	return k.srs
}

// Ring returns the polynomial ring over the scalar field of the engine.
func (k *KZG[S, G1, G2, GT]) Ring() *polynomial.Ring[S] {
	return k.ring
}

// Degree returns the degree bound of the SRS.
func (k *KZG[S, G1, G2, GT]) Degree() int {
	return k.srs.Degree()
}

// CheckSRS validates the SRS of this instance, see Check.
func (k *KZG[S, G1, G2, GT]) CheckSRS() error {
	return Check(k.engine, k.srs)
}

// checkPolynomial rejects polynomials longer than the degree bound.
func (k *KZG[S, G1, G2, GT]) checkPolynomial(poly polynomial.Polynomial[S]) error {
	if len(poly) > k.Degree()+1 {
		return fmt.Errorf("%w: polynomial has %d coefficients, SRS supports at most %d",
			ErrInvalidInput, len(poly), k.Degree()+1)
	}
	return nil
}

// Commit returns Σ CRSG1[i]·poly[i], which equals G1·poly(τ). The
// polynomial must have at most Degree()+1 coefficients. The empty polynomial
// commits to the identity.
func (k *KZG[S, G1, G2, GT]) Commit(poly polynomial.Polynomial[S]) (G1, error) {
	if err := k.checkPolynomial(poly); err != nil {
		return k.engine.G1().Identity(), err
	}
	return msm(k.engine.G1(), k.srs.CRSG1, poly, k.config.Workers)
}

// Open returns the proof that poly evaluates to poly(point) at point.
func (k *KZG[S, G1, G2, GT]) Open(poly polynomial.Polynomial[S], point S) (G1, error) {
	proof, _, err := k.OpenAt(poly, point)
	return proof, err
}

// OpenAt returns the opening proof of poly at point together with the
// evaluated value. The proof is the commitment to the quotient
// q(x) = (poly(x) - value) / (x - point), which is exact because point is a
// root of the numerator.
func (k *KZG[S, G1, G2, GT]) OpenAt(poly polynomial.Polynomial[S], point S) (G1, S, error) {
	fr := k.engine.Fr()
	if err := k.checkPolynomial(poly); err != nil {
		return k.engine.G1().Identity(), fr.Zero(), err
	}
	value := k.ring.Evaluate(poly, point)

	numerator := k.ring.Resize(poly, max(len(poly), 1))
	numerator[0] = fr.Sub(numerator[0], value)
	denominator := polynomial.Polynomial[S]{fr.Neg(point), fr.One()}
	quotient, err := k.ring.Div(numerator, denominator)
	if err != nil {
		return k.engine.G1().Identity(), fr.Zero(), fmt.Errorf("could not compute quotient: %w", err)
	}
	proof, err := msm(k.engine.G1(), k.srs.CRSG1, quotient, k.config.Workers)
	if err != nil {
		return k.engine.G1().Identity(), fr.Zero(), err
	}
	log.Debugw("polynomial opened", "curve", k.engine.Name(), "point", fr.String(point), "value", fr.String(value))
	return proof, value, nil
}

// Verify checks that proof attests that the polynomial committed in
// commitment evaluates to value at point:
//
//	e(proof, G2Tau - G2·point) == e(commitment - G1·value, G2)
//
// A proof that does not verify returns false and a nil error; errors are
// reserved for failures of the pairing itself.
func (k *KZG[S, G1, G2, GT]) Verify(point, value S, commitment, proof G1) (bool, error) {
	g1, g2 := k.engine.G1(), k.engine.G2()
	shiftedTau := g2.Sub(k.srs.G2Tau, g2.ScalarMul(k.srs.G2, point))
	shiftedCommitment := g1.Sub(commitment, g1.ScalarMul(k.srs.G1, value))

	ok, err := pairingCheck(k.engine, proof, shiftedTau, shiftedCommitment, k.srs.G2)
	if err != nil {
		return false, err
	}
	log.Debugw("opening proof verified", "curve", k.engine.Name(), "point", k.engine.Fr().String(point), "valid", ok)
	return ok, nil
}
