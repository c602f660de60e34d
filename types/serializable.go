package types

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/vocdoni/davinci-kzg/crypto/ecc"
)

// lengthPrefixSize is the size of the big-endian element count that
// precedes the elements of a SerializableSlice.
const lengthPrefixSize = 4

// Serializable wraps a single scalar or group element together with the
// codec that gives it a canonical fixed-size byte encoding. It implements
// the binary, CBOR and JSON (un)marshalers, so wrapped values can be
// embedded in any artifact. The CBOR form is a byte string and the JSON form
// a 0x-prefixed hex string.
//
// Decoding needs the codec, so the destination must be created with
// EmptySerializable (or NewSerializable) before unmarshaling into it.
type Serializable[T any] struct {
	Value      T
	codec      ecc.Codec[T]
	compressed bool
	set        bool
}

// NewSerializable wraps v to be encoded with codec in compressed or
// uncompressed form.
func NewSerializable[T any](codec ecc.Codec[T], v T, compressed bool) *Serializable[T] {
	return &Serializable[T]{Value: v, codec: codec, compressed: compressed, set: true}
}

// EmptySerializable returns a wrapper ready to be decoded into.
func EmptySerializable[T any](codec ecc.Codec[T]) *Serializable[T] {
	return &Serializable[T]{codec: codec, compressed: true}
}

// Compressed reports whether the value is (or was decoded from) the
// compressed form.
func (s *Serializable[T]) Compressed() bool {
	return s.compressed
}

// IsSet reports whether the wrapper holds a value, either given at
// construction or decoded. A nil wrapper holds none.
func (s *Serializable[T]) IsSet() bool {
	return s != nil && s.set
}

// MarshalBinary returns the canonical encoding of the wrapped value.
func (s *Serializable[T]) MarshalBinary() ([]byte, error) {
	if s.codec == nil {
		return nil, fmt.Errorf("%w: missing codec", ecc.ErrSerialization)
	}
	return s.codec.Encode(s.Value, s.compressed), nil
}

// UnmarshalBinary decodes data, accepting both forms.
func (s *Serializable[T]) UnmarshalBinary(data []byte) error {
	if s.codec == nil {
		return fmt.Errorf("%w: missing codec", ecc.ErrSerialization)
	}
	v, err := s.codec.Decode(data)
	if err != nil {
		return err
	}
	s.Value = v
	s.compressed = len(data) == s.codec.Size(true)
	s.set = true
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (s *Serializable[T]) MarshalCBOR() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(b)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *Serializable[T]) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %v", ecc.ErrSerialization, err)
	}
	return s.UnmarshalBinary(b)
}

// MarshalJSON implements json.Marshaler.
func (s *Serializable[T]) MarshalJSON() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return HexBytes(b).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Serializable[T]) UnmarshalJSON(data []byte) error {
	var b HexBytes
	if err := b.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %v", ecc.ErrSerialization, err)
	}
	return s.UnmarshalBinary(b)
}

// SerializableSlice wraps a vector of scalars or group elements. The binary
// form is a 4-byte big-endian element count followed by the fixed-size
// encodings of every element, all in the same form.
type SerializableSlice[T any] struct {
	Values     []T
	codec      ecc.Codec[T]
	compressed bool
	set        bool
}

// NewSerializableSlice wraps values to be encoded with codec.
func NewSerializableSlice[T any](codec ecc.Codec[T], values []T, compressed bool) *SerializableSlice[T] {
	return &SerializableSlice[T]{Values: values, codec: codec, compressed: compressed, set: true}
}

// EmptySerializableSlice returns a wrapper ready to be decoded into.
func EmptySerializableSlice[T any](codec ecc.Codec[T]) *SerializableSlice[T] {
	return &SerializableSlice[T]{codec: codec, compressed: true}
}

// Compressed reports whether the elements are (or were decoded from) the
// compressed form.
func (s *SerializableSlice[T]) Compressed() bool {
	return s.compressed
}

// IsSet reports whether the wrapper holds a vector, possibly empty, either
// given at construction or decoded. A nil wrapper holds none.
func (s *SerializableSlice[T]) IsSet() bool {
	return s != nil && s.set
}

// MarshalBinary returns the length-prefixed encoding of the elements.
func (s *SerializableSlice[T]) MarshalBinary() ([]byte, error) {
	if s.codec == nil {
		return nil, fmt.Errorf("%w: missing codec", ecc.ErrSerialization)
	}
	if uint64(len(s.Values)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: too many elements (%d)", ecc.ErrSerialization, len(s.Values))
	}
	size := s.codec.Size(s.compressed)
	out := make([]byte, lengthPrefixSize, lengthPrefixSize+len(s.Values)*size)
	binary.BigEndian.PutUint32(out, uint32(len(s.Values)))
	for _, v := range s.Values {
		out = append(out, s.codec.Encode(v, s.compressed)...)
	}
	return out, nil
}

// UnmarshalBinary decodes a length-prefixed vector. The element size is
// derived from the payload length and must match one of the codec forms.
func (s *SerializableSlice[T]) UnmarshalBinary(data []byte) error {
	if s.codec == nil {
		return fmt.Errorf("%w: missing codec", ecc.ErrSerialization)
	}
	if len(data) < lengthPrefixSize {
		return fmt.Errorf("%w: short vector encoding (%d bytes)", ecc.ErrSerialization, len(data))
	}
	n := int(binary.BigEndian.Uint32(data))
	payload := data[lengthPrefixSize:]
	if n == 0 {
		if len(payload) != 0 {
			return fmt.Errorf("%w: %d bytes after empty vector", ecc.ErrSerialization, len(payload))
		}
		s.Values = []T{}
		s.compressed = true
		s.set = true
		return nil
	}
	if len(payload)%n != 0 {
		return fmt.Errorf("%w: %d bytes do not hold %d elements", ecc.ErrSerialization, len(payload), n)
	}
	size := len(payload) / n
	if size != s.codec.Size(true) && size != s.codec.Size(false) {
		return fmt.Errorf("%w: unexpected element size %d", ecc.ErrSerialization, size)
	}
	values := make([]T, n)
	for i := range values {
		v, err := s.codec.Decode(payload[i*size : (i+1)*size])
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = v
	}
	s.Values = values
	s.compressed = size == s.codec.Size(true)
	s.set = true
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (s *SerializableSlice[T]) MarshalCBOR() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(b)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (s *SerializableSlice[T]) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %v", ecc.ErrSerialization, err)
	}
	return s.UnmarshalBinary(b)
}

// MarshalJSON implements json.Marshaler.
func (s *SerializableSlice[T]) MarshalJSON() ([]byte, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return HexBytes(b).MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SerializableSlice[T]) UnmarshalJSON(data []byte) error {
	var b HexBytes
	if err := b.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w: %v", ecc.ErrSerialization, err)
	}
	return s.UnmarshalBinary(b)
}
