package curves

import (
	"fmt"
	"slices"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bls12381"
	"github.com/vocdoni/davinci-kzg/crypto/ecc/bn254"
)

// ErrUnknownCurve is returned for curve types not listed by Curves().
var ErrUnknownCurve = fmt.Errorf("unknown curve type")

// Info describes the encoding sizes of a supported curve.
type Info struct {
	Name           string `json:"name"`
	ScalarSize     int    `json:"scalarSize"`
	G1Compressed   int    `json:"g1Compressed"`
	G1Uncompressed int    `json:"g1Uncompressed"`
	G2Compressed   int    `json:"g2Compressed"`
	G2Uncompressed int    `json:"g2Uncompressed"`
}

// Describe returns the Info of the provided curve type. Engines are generic
// over their element types, so callers that need the engine itself switch on
// the curve type and instantiate bls12381.New() or bn254.New() directly. Use
// IsValid() to check a curve type beforehand.
func Describe(curveType string) (Info, error) {
	switch curveType {
	case bls12381.CurveType:
		return describe(bls12381.New()), nil
	case bn254.CurveType:
		return describe(bn254.New()), nil
	default:
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownCurve, curveType)
	}
}

func describe[S, G1, G2, GT any](e ecc.Engine[S, G1, G2, GT]) Info {
	return Info{
		Name:           e.Name(),
		ScalarSize:     e.ScalarCodec().Size(true),
		G1Compressed:   e.G1Codec().Size(true),
		G1Uncompressed: e.G1Codec().Size(false),
		G2Compressed:   e.G2Codec().Size(true),
		G2Uncompressed: e.G2Codec().Size(false),
	}
}

// Curves returns a list of supported curve types. The first one is the
// default.
func Curves() []string {
	return []string{
		bls12381.CurveType,
		bn254.CurveType,
	}
}

func IsValid(curveType string) bool {
	return slices.Contains(Curves(), curveType)
}
