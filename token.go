package xjwt

import (
	"encoding/base64"
	"time"
)

// Token is the immutable result of Encode or Decode. Fields describe the
// token as it appeared on the wire; they are snapshots and must not be
// treated as shared state.
type Token struct {
	// Raw is the serialized three-segment form.
	Raw string
	// Header is the decoded first segment.
	Header map[string]any
	// Claims is the decoded second segment.
	Claims Claims
	// Algorithm is the parsed header algorithm.
	Algorithm Algorithm
	// ExpiresAt is the validated "exp" claim in epoch seconds, 0 if absent.
	ExpiresAt int64
	// NotBefore is the validated "nbf" claim in epoch seconds, 0 if absent.
	NotBefore int64
}

// String returns the serialized token.
func (t *Token) String() string {
	return t.Raw
}

// Expires returns the "exp" claim as time, or nil if absent.
func (t *Token) Expires() *time.Time {
	if t.ExpiresAt == 0 {
		return nil
	}
	ts := time.Unix(t.ExpiresAt, 0)
	return &ts
}

// DecodeSegment returns base64url decoded bytes, with padding stripped
func DecodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(seg)
}

// EncodeSegment returns base64url encoding with padding stripped
func EncodeSegment(seg []byte) string {
	return base64.RawURLEncoding.EncodeToString(seg)
}
