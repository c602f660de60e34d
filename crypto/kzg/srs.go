package kzg

import (
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/log"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// SRS is the structured reference string: the powers of a secret scalar τ
// in both source groups. CRSG1[i] = G1·τⁱ and CRSG2[i] = G2·τⁱ for i in
// 0..=degree, and G2Tau = G2·τ. The secret itself is never part of it. An
// SRS is read-only once built and can be shared by any number of goroutines.
type SRS[G1, G2 any] struct {
	G1    G1
	G2    G2
	G2Tau G2
	CRSG1 []G1
	CRSG2 []G2
}

// Degree returns the maximum polynomial degree the SRS can commit to.
func (s *SRS[G1, G2]) Degree() int {
	return len(s.CRSG1) - 1
}

// Setup derives an SRS of the given degree from secret. Setup takes
// ownership of the secret: it is overwritten with zero before returning,
// on success and on error, and the caller must not reuse it.
func Setup[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], secret *S, degree int) (*SRS[G1, G2], error) {
	if secret == nil {
		return nil, fmt.Errorf("%w: nil secret", ErrInvalidInput)
	}
	fr := e.Fr()
	defer func() { *secret = fr.Zero() }()

	if degree < 1 {
		return nil, fmt.Errorf("%w: degree must be at least 1, got %d", ErrInvalidInput, degree)
	}
	if fr.IsZero(*secret) {
		return nil, fmt.Errorf("%w: zero secret", ErrInvalidInput)
	}

	powers := make([]S, degree+1)
	defer func() {
		for i := range powers {
			powers[i] = fr.Zero()
		}
	}()
	powers[0] = fr.One()
	for i := 1; i < len(powers); i++ {
		powers[i] = fr.Mul(powers[i-1], *secret)
	}

	srs := &SRS[G1, G2]{
		G1:    e.G1().Generator(),
		G2:    e.G2().Generator(),
		CRSG1: make([]G1, degree+1),
		CRSG2: make([]G2, degree+1),
	}
	var eg errgroup.Group
	for _, s := range partition(len(powers), defaultWorkers()) {
		eg.Go(func() error {
			for i := s.start; i < s.end; i++ {
				srs.CRSG1[i] = e.G1().ScalarMul(srs.G1, powers[i])
				srs.CRSG2[i] = e.G2().ScalarMul(srs.G2, powers[i])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	srs.G2Tau = srs.CRSG2[1]

	log.Debugw("structured reference string generated", "curve", e.Name(), "degree", degree)
	return srs, nil
}

// NewSRS samples a fresh secret from a cryptographically secure source and
// runs Setup with it.
func NewSRS[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], degree int) (*SRS[G1, G2], error) {
	secret, err := e.Fr().Random()
	if err != nil {
		return nil, fmt.Errorf("could not sample secret: %w", err)
	}
	return Setup(e, &secret, degree)
}

// SetupFromSeed derives the secret as the blake2b-256 digest of seed reduced
// into the scalar field and runs Setup with it. The same seed always yields
// the same SRS, so it is only meant for reproducible test setups. The seed
// buffer is zeroed before returning.
func SetupFromSeed[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], seed []byte, degree int) (*SRS[G1, G2], error) {
	defer clear(seed)
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", ErrInvalidInput)
	}
	digest := blake2b.Sum256(seed)
	defer clear(digest[:])

	secret := e.Fr().FromBytes(digest[:])
	return Setup(e, &secret, degree)
}

// Check validates an SRS, typically one received across a trust boundary,
// without knowing the secret. It verifies the length invariant, that both
// sequences start at the generators G1 and G2, that CRSG2[1] is G2Tau, and
// with pairings that every element is the previous one multiplied by the
// same τ in both groups:
//
//	e(CRSG1[i+1], G2) == e(CRSG1[i], G2Tau)
//	e(G1, CRSG2[i]) == e(CRSG1[i], G2)
func Check[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], srs *SRS[G1, G2]) error {
	if srs == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSRS)
	}
	if len(srs.CRSG1) < 2 || len(srs.CRSG1) != len(srs.CRSG2) {
		return fmt.Errorf("%w: got %d G1 and %d G2 powers", ErrInvalidSRS, len(srs.CRSG1), len(srs.CRSG2))
	}
	g1, g2 := e.G1(), e.G2()
	if g1.Equal(srs.G1, g1.Identity()) || g2.Equal(srs.G2, g2.Identity()) {
		return fmt.Errorf("%w: identity generator", ErrInvalidSRS)
	}
	if !g1.Equal(srs.CRSG1[0], srs.G1) || !g2.Equal(srs.CRSG2[0], srs.G2) {
		return fmt.Errorf("%w: first power is not the generator", ErrInvalidSRS)
	}
	if !g2.Equal(srs.CRSG2[1], srs.G2Tau) {
		return fmt.Errorf("%w: tau mismatch in G2", ErrInvalidSRS)
	}

	var eg errgroup.Group
	eg.SetLimit(defaultWorkers())
	for i := range srs.CRSG1 {
		eg.Go(func() error {
			if i+1 < len(srs.CRSG1) {
				ok, err := pairingCheck(e, srs.CRSG1[i+1], srs.G2, srs.CRSG1[i], srs.G2Tau)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: G1 power %d", ErrInvalidSRS, i+1)
				}
			}
			ok, err := pairingCheck(e, srs.G1, srs.CRSG2[i], srs.CRSG1[i], srs.G2)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: G2 power %d", ErrInvalidSRS, i)
			}
			return nil
		})
	}
	return eg.Wait()
}

// pairingCheck reports whether e(a, b) == e(c, d), evaluated as
// e(a, b)·e(-c, d) == 1 with one multi-Miller loop.
func pairingCheck[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], a G1, b G2, c G1, d G2) (bool, error) {
	ok, err := e.PairingCheck([]G1{a, e.G1().Neg(c)}, []G2{b, d})
	if err != nil {
		return false, fmt.Errorf("pairing: %w", err)
	}
	return ok, nil
}
