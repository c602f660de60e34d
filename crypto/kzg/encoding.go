package kzg

import (
	"fmt"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/types"
)

// SRSArtifact is the wire form of an SRS.
type SRSArtifact[G1, G2 any] struct {
	Curve string                       `json:"curve" cbor:"0,keyasint"`
	G1    *types.Serializable[G1]      `json:"g1"    cbor:"1,keyasint"`
	G2    *types.Serializable[G2]      `json:"g2"    cbor:"2,keyasint"`
	G2Tau *types.Serializable[G2]      `json:"g2Tau" cbor:"3,keyasint"`
	CRSG1 *types.SerializableSlice[G1] `json:"crsG1" cbor:"4,keyasint"`
	CRSG2 *types.SerializableSlice[G2] `json:"crsG2" cbor:"5,keyasint"`
}

// OpeningEnvelope carries a single point opening across a trust boundary.
type OpeningEnvelope[S, G1 any] struct {
	Commitment *types.Serializable[G1] `json:"commitment" cbor:"1,keyasint"`
	Proof      *types.Serializable[G1] `json:"proof"      cbor:"2,keyasint"`
	Point      *types.Serializable[S]  `json:"point"      cbor:"3,keyasint"`
	Value      *types.Serializable[S]  `json:"value"      cbor:"4,keyasint"`
}

// MultiOpeningEnvelope carries a batch opening across a trust boundary.
type MultiOpeningEnvelope[S, G1 any] struct {
	Commitment *types.Serializable[G1]     `json:"commitment" cbor:"1,keyasint"`
	Proof      *types.Serializable[G1]     `json:"proof"      cbor:"2,keyasint"`
	Points     *types.SerializableSlice[S] `json:"points"     cbor:"3,keyasint"`
	Values     *types.SerializableSlice[S] `json:"values"     cbor:"4,keyasint"`
}

// EncodeSRS serializes srs with the given point form and artifact encoding
// (CBOR by default).
func EncodeSRS[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], srs *SRS[G1, G2], compressed bool,
	encoding ...types.ArtifactEncoding,
) ([]byte, error) {
	if srs == nil {
		return nil, fmt.Errorf("%w: nil SRS", ErrSerialization)
	}
	artifact := &SRSArtifact[G1, G2]{
		Curve: e.Name(),
		G1:    types.NewSerializable(e.G1Codec(), srs.G1, compressed),
		G2:    types.NewSerializable(e.G2Codec(), srs.G2, compressed),
		G2Tau: types.NewSerializable(e.G2Codec(), srs.G2Tau, compressed),
		CRSG1: types.NewSerializableSlice(e.G1Codec(), srs.CRSG1, compressed),
		CRSG2: types.NewSerializableSlice(e.G2Codec(), srs.CRSG2, compressed),
	}
	data, err := types.EncodeArtifact(artifact, encoding...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}

// DecodeSRS decodes an SRS produced by EncodeSRS. Points are checked to be in
// the right subgroup, but the powers are not validated, use Check for that.
func DecodeSRS[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], data []byte,
	encoding ...types.ArtifactEncoding,
) (*SRS[G1, G2], error) {
	artifact := &SRSArtifact[G1, G2]{
		G1:    types.EmptySerializable(e.G1Codec()),
		G2:    types.EmptySerializable(e.G2Codec()),
		G2Tau: types.EmptySerializable(e.G2Codec()),
		CRSG1: types.EmptySerializableSlice(e.G1Codec()),
		CRSG2: types.EmptySerializableSlice(e.G2Codec()),
	}
	if err := types.DecodeArtifact(data, artifact, encoding...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if artifact.Curve != e.Name() {
		return nil, fmt.Errorf("%w: SRS for curve %q, expected %q", ErrSerialization, artifact.Curve, e.Name())
	}
	if !artifact.G1.IsSet() || !artifact.G2.IsSet() || !artifact.G2Tau.IsSet() ||
		!artifact.CRSG1.IsSet() || !artifact.CRSG2.IsSet() {
		return nil, fmt.Errorf("%w: incomplete SRS", ErrSerialization)
	}
	return &SRS[G1, G2]{
		G1:    artifact.G1.Value,
		G2:    artifact.G2.Value,
		G2Tau: artifact.G2Tau.Value,
		CRSG1: artifact.CRSG1.Values,
		CRSG2: artifact.CRSG2.Values,
	}, nil
}

// EncodeProof returns the canonical encoding of a commitment or proof.
func EncodeProof[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], proof G1, compressed bool) []byte {
	return e.G1Codec().Encode(proof, compressed)
}

// DecodeProof decodes a commitment or proof in either form.
func DecodeProof[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT], data []byte) (G1, error) {
	return e.G1Codec().Decode(data)
}

// NewOpeningEnvelope wraps a single point opening for encoding.
func (k *KZG[S, G1, G2, GT]) NewOpeningEnvelope(commitment, proof G1, point, value S, compressed bool) *OpeningEnvelope[S, G1] {
	return &OpeningEnvelope[S, G1]{
		Commitment: types.NewSerializable(k.engine.G1Codec(), commitment, compressed),
		Proof:      types.NewSerializable(k.engine.G1Codec(), proof, compressed),
		Point:      types.NewSerializable(k.engine.ScalarCodec(), point, compressed),
		Value:      types.NewSerializable(k.engine.ScalarCodec(), value, compressed),
	}
}

// EmptyOpeningEnvelope returns an envelope ready to be decoded into.
func (k *KZG[S, G1, G2, GT]) EmptyOpeningEnvelope() *OpeningEnvelope[S, G1] {
	return &OpeningEnvelope[S, G1]{
		Commitment: types.EmptySerializable(k.engine.G1Codec()),
		Proof:      types.EmptySerializable(k.engine.G1Codec()),
		Point:      types.EmptySerializable(k.engine.ScalarCodec()),
		Value:      types.EmptySerializable(k.engine.ScalarCodec()),
	}
}

// VerifyEnvelope verifies a decoded single point opening.
func (k *KZG[S, G1, G2, GT]) VerifyEnvelope(env *OpeningEnvelope[S, G1]) (bool, error) {
	if env == nil || !env.Commitment.IsSet() || !env.Proof.IsSet() || !env.Point.IsSet() || !env.Value.IsSet() {
		return false, fmt.Errorf("%w: incomplete opening envelope", ErrInvalidInput)
	}
	return k.Verify(env.Point.Value, env.Value.Value, env.Commitment.Value, env.Proof.Value)
}

// NewMultiOpeningEnvelope wraps a batch opening for encoding.
func (k *KZG[S, G1, G2, GT]) NewMultiOpeningEnvelope(commitment, proof G1, points, values []S, compressed bool) *MultiOpeningEnvelope[S, G1] {
	return &MultiOpeningEnvelope[S, G1]{
		Commitment: types.NewSerializable(k.engine.G1Codec(), commitment, compressed),
		Proof:      types.NewSerializable(k.engine.G1Codec(), proof, compressed),
		Points:     types.NewSerializableSlice(k.engine.ScalarCodec(), points, compressed),
		Values:     types.NewSerializableSlice(k.engine.ScalarCodec(), values, compressed),
	}
}

// EmptyMultiOpeningEnvelope returns an envelope ready to be decoded into.
func (k *KZG[S, G1, G2, GT]) EmptyMultiOpeningEnvelope() *MultiOpeningEnvelope[S, G1] {
	return &MultiOpeningEnvelope[S, G1]{
		Commitment: types.EmptySerializable(k.engine.G1Codec()),
		Proof:      types.EmptySerializable(k.engine.G1Codec()),
		Points:     types.EmptySerializableSlice(k.engine.ScalarCodec()),
		Values:     types.EmptySerializableSlice(k.engine.ScalarCodec()),
	}
}

// VerifyMultiEnvelope verifies a decoded batch opening.
func (k *KZG[S, G1, G2, GT]) VerifyMultiEnvelope(env *MultiOpeningEnvelope[S, G1]) (bool, error) {
	if env == nil || !env.Commitment.IsSet() || !env.Proof.IsSet() || !env.Points.IsSet() || !env.Values.IsSet() {
		return false, fmt.Errorf("%w: incomplete multi opening envelope", ErrInvalidInput)
	}
	return k.VerifyMulti(env.Points.Values, env.Values.Values, env.Commitment.Value, env.Proof.Value)
}
