package main

import (
	"errors"
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bls12381"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/curves"
	"github.com/vocdoni/davinci-kzg/crypto/kzg"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
	"github.com/vocdoni/davinci-kzg/log"
	"github.com/vocdoni/davinci-kzg/types"
)

var errVerificationFailed = errors.New("verification failed")

// Report holds the outcome of a prover run.
type Report struct {
	Curve             string `json:"curve"`
	Degree            int    `json:"degree"`
	Points            int    `json:"points"`
	SRSBytes          int    `json:"srsBytes"`
	OpeningBytes      int    `json:"openingBytes"`
	MultiOpeningBytes int    `json:"multiOpeningBytes"`
	SingleValid       bool   `json:"singleValid"`
	MultiValid        bool   `json:"multiValid"`
	PerturbedRejected bool   `json:"perturbedRejected"`
}

// Ok reports whether every check of the run passed.
func (r *Report) Ok() bool {
	return r.SingleValid && r.MultiValid && r.PerturbedRejected
}

// run instantiates the engine of the configured curve and runs the prover.
func run(cfg *Config) (*Report, error) {
	switch cfg.Curve {
	case bls12381.CurveType:
		return prove(cfg, bls12381.New())
	case bn254.CurveType:
		return prove(cfg, bn254.New())
	default:
		return nil, fmt.Errorf("%w: %q", curves.ErrUnknownCurve, cfg.Curve)
	}
}

// prove builds an SRS, commits to a random polynomial and opens it at one
// and at cfg.Points random points. The SRS and both openings are encoded and
// decoded again, as a verifier in a separate environment would receive them,
// and verified on the decoded side.
func prove[S, G1, G2, GT any](cfg *Config, e ecc.Engine[S, G1, G2, GT]) (*Report, error) {
	encoding, err := types.ParseArtifactEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	fr := e.Fr()

	var srs *kzg.SRS[G1, G2]
	if cfg.Seed != "" {
		srs, err = kzg.SetupFromSeed(e, []byte(cfg.Seed), cfg.Degree)
	} else {
		srs, err = kzg.NewSRS(e, cfg.Degree)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to setup SRS: %w", err)
	}
	prover, err := kzg.New(e, srs, kzg.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}
	log.Infow("structured reference string ready", "curve", e.Name(), "degree", prover.Degree())

	poly, err := randomScalars(fr, cfg.Degree+1)
	if err != nil {
		return nil, err
	}
	commitment, err := prover.Commit(poly)
	if err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	point, err := fr.Random()
	if err != nil {
		return nil, err
	}
	proof, value, err := prover.OpenAt(poly, point)
	if err != nil {
		return nil, fmt.Errorf("failed to open: %w", err)
	}

	points, err := randomScalars(fr, cfg.Points)
	if err != nil {
		return nil, err
	}
	values := make([]S, len(points))
	for i := range points {
		values[i] = prover.Ring().Evaluate(poly, points[i])
	}
	multiProof, err := prover.MultiOpen(poly, points)
	if err != nil {
		return nil, fmt.Errorf("failed to open at multiple points: %w", err)
	}

	srsData, err := kzg.EncodeSRS(e, srs, cfg.Compressed, encoding)
	if err != nil {
		return nil, err
	}
	openingData, err := types.EncodeArtifact(prover.NewOpeningEnvelope(commitment, proof, point, value, cfg.Compressed), encoding)
	if err != nil {
		return nil, err
	}
	multiData, err := types.EncodeArtifact(prover.NewMultiOpeningEnvelope(commitment, multiProof, points, values, cfg.Compressed), encoding)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Curve:             e.Name(),
		Degree:            cfg.Degree,
		Points:            cfg.Points,
		SRSBytes:          len(srsData),
		OpeningBytes:      len(openingData),
		MultiOpeningBytes: len(multiData),
	}

	// verifier side, only the encoded artifacts cross over
	verifierSRS, err := kzg.DecodeSRS(e, srsData, encoding)
	if err != nil {
		return nil, err
	}
	if err := kzg.Check(e, verifierSRS); err != nil {
		return nil, err
	}
	verifier, err := kzg.New(e, verifierSRS, kzg.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, err
	}

	opening := verifier.EmptyOpeningEnvelope()
	if err := types.DecodeArtifact(openingData, opening, encoding); err != nil {
		return nil, err
	}
	if report.SingleValid, err = verifier.VerifyEnvelope(opening); err != nil {
		return nil, err
	}

	multiOpening := verifier.EmptyMultiOpeningEnvelope()
	if err := types.DecodeArtifact(multiData, multiOpening, encoding); err != nil {
		return nil, err
	}
	if report.MultiValid, err = verifier.VerifyMultiEnvelope(multiOpening); err != nil {
		return nil, err
	}

	opening.Value.Value = fr.Add(opening.Value.Value, fr.One())
	perturbedValid, err := verifier.VerifyEnvelope(opening)
	if err != nil {
		return nil, err
	}
	report.PerturbedRejected = !perturbedValid
	return report, nil
}

func randomScalars[S any](f ecc.Field[S], n int) (polynomial.Polynomial[S], error) {
	out := make(polynomial.Polynomial[S], n)
	for i := range out {
		v, err := f.Random()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
