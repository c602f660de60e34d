package types

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vocdoni/davinci-kzg/log"
)

// ArtifactEncoding defines the encoding formats used to move artifacts
// (SRS, commitments, opening envelopes) across a trust boundary. There are
// two supported formats: ArtifactEncodingCBOR and ArtifactEncodingJSON.
type ArtifactEncoding int

const (
	// ArtifactEncodingCBOR is the CBOR encoding format.
	ArtifactEncodingCBOR ArtifactEncoding = iota
	// ArtifactEncodingJSON is the JSON encoding format.
	ArtifactEncodingJSON
)

// String returns the name used for the encoding in configuration.
func (e ArtifactEncoding) String() string {
	switch e {
	case ArtifactEncodingCBOR:
		return "cbor"
	case ArtifactEncodingJSON:
		return "json"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// ParseArtifactEncoding returns the encoding named by s ("cbor" or "json").
func ParseArtifactEncoding(s string) (ArtifactEncoding, error) {
	switch s {
	case "cbor":
		return ArtifactEncodingCBOR, nil
	case "json":
		return ArtifactEncodingJSON, nil
	default:
		return 0, fmt.Errorf("unknown artifact encoding: %q", s)
	}
}

// EncodeArtifact encodes an artifact into the specified encoding format. If no
// format is specified, CBOR is used by default.
func EncodeArtifact(a any, encoding ...ArtifactEncoding) ([]byte, error) {
	if len(encoding) > 0 {
		switch encoding[0] {
		case ArtifactEncodingCBOR:
			return EncodeArtifactCBOR(a)
		case ArtifactEncodingJSON:
			return EncodeArtifactJSON(a)
		default:
			return nil, fmt.Errorf("unknown artifact encoding: %d", encoding[0])
		}
	}
	return EncodeArtifactCBOR(a)
}

// DecodeArtifact decodes an artifact from the specified format. If no format
// is specified, CBOR is used by default. Wrapped values inside out must have
// their codecs set before decoding, see EmptySerializable.
func DecodeArtifact(data []byte, out any, encoding ...ArtifactEncoding) error {
	if len(encoding) > 0 {
		switch encoding[0] {
		case ArtifactEncodingCBOR:
			return DecodeArtifactCBOR(data, out)
		case ArtifactEncodingJSON:
			return DecodeArtifactJSON(data, out)
		default:
			return fmt.Errorf("unknown artifact encoding: %d", encoding[0])
		}
	}
	return DecodeArtifactCBOR(data, out)
}

// EncodeArtifactCBOR encodes an artifact into deterministic CBOR, so the same
// artifact always produces the same bytes.
func EncodeArtifactCBOR(a any) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	data, err := em.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	log.Debugw("artifact encoded", "encoding", ArtifactEncodingCBOR.String(), "size", len(data))
	return data, nil
}

// DecodeArtifactCBOR decodes a CBOR-encoded artifact into the provided output
// variable.
func DecodeArtifactCBOR(data []byte, out any) error {
	if err := cbor.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	return nil
}

// EncodeArtifactJSON encodes an artifact into JSON format.
func EncodeArtifactJSON(a any) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	log.Debugw("artifact encoded", "encoding", ArtifactEncodingJSON.String(), "size", len(data))
	return data, nil
}

// DecodeArtifactJSON decodes a JSON-encoded artifact into the provided output
// variable.
func DecodeArtifactJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode artifact: %w", err)
	}
	return nil
}
