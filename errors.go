package xjwt

import (
	"github.com/cockroachdb/errors"
)

// Well-known errors returned by Encode and Decode. Returned errors may wrap
// these with additional context; match with errors.Is.
var (
	// ErrMalformedToken is returned when the token is structurally broken:
	// wrong segment count, invalid base64url, or invalid JSON in the header
	// or claims segment.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidType is returned when the header "typ" is not "JWT".
	ErrInvalidType = errors.New("invalid token type")

	// ErrMissingAlgorithm is returned when the header carries no "alg" value.
	ErrMissingAlgorithm = errors.New("missing alg header")

	// ErrUnknownAlgorithm is returned when an algorithm identifier is outside
	// the supported families.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrAlgorithmNotAllowed is returned when the token algorithm is not in
	// the set pinned with WithValidAlgorithms.
	ErrAlgorithmNotAllowed = errors.New("algorithm not allowed")

	// ErrSecretFormat is returned when a secret argument has an unsupported
	// shape, or a resolver produced unusable key material.
	ErrSecretFormat = errors.New("unsupported secret type")

	// ErrNoneProhibited is returned when an unsigned token is rejected by
	// policy; see WithAllowNone.
	ErrNoneProhibited = errors.New("none algorithm prohibited")

	// ErrSignatureInvalid is returned when signature verification fails.
	ErrSignatureInvalid = errors.New("invalid signature")

	// ErrSigning is returned when signature creation fails during encode.
	ErrSigning = errors.New("signing failed")

	// ErrUnsupportedHash is returned when the algorithm strength does not
	// map to a SHA-2 digest.
	ErrUnsupportedHash = errors.New("unsupported hash strength")

	// ErrTokenExpired is returned when the "exp" claim is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenNotYetValid is returned when the "nbf" claim is in the future.
	ErrTokenNotYetValid = errors.New("token not valid yet")
)
