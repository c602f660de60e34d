package kzg

import (
	"errors"

	"github.com/vocdoni/davinci-kzg/crypto/ecc"
	"github.com/vocdoni/davinci-kzg/crypto/polynomial"
)

var (
	// ErrInvalidInput is returned for polynomials longer than the SRS degree
	// bound, mismatched points and values, or empty point sets.
	ErrInvalidInput = polynomial.ErrInvalidInput
	// ErrDivisionByZeroPolynomial is returned when a quotient cannot be
	// computed because the divisor is zero.
	ErrDivisionByZeroPolynomial = polynomial.ErrDivisionByZeroPolynomial
	// ErrDuplicateEvaluationPoint is returned when a point set contains the
	// same point twice.
	ErrDuplicateEvaluationPoint = polynomial.ErrDuplicateEvaluationPoint
	// ErrSerialization is returned when an artifact cannot be decoded.
	ErrSerialization = ecc.ErrSerialization
	// ErrInvalidSRS is returned when a structured reference string is
	// malformed or inconsistent.
	ErrInvalidSRS = errors.New("invalid structured reference string")
)
