// Package xjwt provides a compact codec for signed, self-contained claims
// tokens in the standard three-segment form:
// base64url(header) + "." + base64url(claims) + "." + base64url(signature).
//
// The package supports:
//   - HMAC (HS224..HS512) and RSA (RS224..RS512) signatures
//   - an explicitly opt-in unsigned mode ("none" algorithm)
//   - secret resolution from a literal key, a per-issuer key set,
//     or a callback invoked with the not-yet-verified claims
//   - expiry and not-before validation on decode
//   - optional pinning of the accepted algorithm set
//
// A Codec is immutable after construction; Encode and Decode return a fresh
// Token on every call, so a single Codec is safe for concurrent use.
package xjwt
