package kzg

import (
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
)

// msm computes the multi-scalar multiplication Σ bases[i]·scalars[i] with
// the group's bucket method over at most workers goroutines. Only the first
// len(scalars) bases are used.
func msm[S, P any](g ecc.Group[S, P], bases []P, scalars []S, workers int) (P, error) {
	if len(scalars) > len(bases) {
		return g.Identity(), fmt.Errorf("%w: %d scalars for %d bases",
			ErrInvalidInput, len(scalars), len(bases))
	}
	if len(scalars) == 0 {
		return g.Identity(), nil
	}
	res, err := g.MultiExp(bases[:len(scalars)], scalars, workers)
	if err != nil {
		return g.Identity(), err
	}
	return res, nil
}
