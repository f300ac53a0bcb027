package xjwt

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// Encode serializes and signs the claims with the configured algorithm and
// secret. The codec's "exp" and "nbf" values are merged in unless the claims
// already carry them; caller-set values always win. When the secret is a
// per-issuer key set or a callback, the key material is resolved from the
// claims being encoded.
func (c *Codec) Encode(claims Claims) (*Token, error) {
	return c.encode(claims, c.expiresAt, c.notBefore)
}

func (c *Codec) encode(claims Claims, expiresAt, notBefore int64) (*Token, error) {
	merged := Claims{}
	if claims != nil {
		if err := merged.Add(claims); err != nil {
			return nil, err
		}
	}

	if expiresAt != 0 {
		if _, ok := merged["exp"]; !ok {
			merged["exp"] = expiresAt
		}
	}
	if notBefore != 0 {
		if _, ok := merged["nbf"]; !ok {
			merged["nbf"] = notBefore
		}
	}

	// Normalize through the JSON codec so the returned claims compare equal
	// to the claims a decode of this token returns.
	m, err := normalize(merged)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	merged = Claims(m)

	header := map[string]any{
		"typ": "JWT",
		"alg": c.alg.Name,
	}
	for k, v := range c.headers {
		if k == "typ" || k == "alg" {
			continue
		}
		header[k] = v
	}

	jsonHeader, err := json.Marshal(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	jsonClaims, err := json.Marshal(merged)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sstr := EncodeSegment(jsonHeader) + "." + EncodeSegment(jsonClaims)

	var key any
	if c.secret != nil {
		key, err = c.secret.resolve(merged)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	sig, err := signPayload(c.alg, sstr, key)
	if err != nil {
		return nil, err
	}

	return &Token{
		Raw:       sstr + "." + EncodeSegment(sig),
		Header:    header,
		Claims:    merged,
		Algorithm: c.alg,
		ExpiresAt: merged.Int64("exp"),
		NotBefore: merged.Int64("nbf"),
	}, nil
}

// Builder assembles the claims of a single token before encoding. It is
// scoped to one Encode call and is not safe for concurrent use.
type Builder struct {
	codec     *Codec
	claims    Claims
	expiresAt int64
	notBefore int64
	err       error
}

// Builder returns a claims builder carrying the codec's "exp" and "nbf"
// values as its starting point.
func (c *Codec) Builder() *Builder {
	return &Builder{
		codec:     c,
		claims:    Claims{},
		expiresAt: c.expiresAt,
		notBefore: c.notBefore,
	}
}

// Set adds a single claim value.
func (b *Builder) Set(k string, v any) *Builder {
	b.claims[k] = v
	return b
}

// Add merges claim maps or structs; see Claims.Add.
func (b *Builder) Add(vals ...any) *Builder {
	if b.err == nil {
		b.err = b.claims.Add(vals...)
	}
	return b
}

// WithExpires overrides the "exp" value for this token, in epoch seconds.
func (b *Builder) WithExpires(epoch int64) *Builder {
	b.expiresAt = epoch
	return b
}

// WithExpiresIn sets the "exp" value relative to the current time.
func (b *Builder) WithExpiresIn(d time.Duration) *Builder {
	b.expiresAt = TimeNowFn().Add(d).Unix()
	return b
}

// WithNotBefore overrides the "nbf" value for this token, in epoch seconds.
func (b *Builder) WithNotBefore(epoch int64) *Builder {
	b.notBefore = epoch
	return b
}

// WithNotBeforeIn sets the "nbf" value relative to the current time.
func (b *Builder) WithNotBeforeIn(d time.Duration) *Builder {
	b.notBefore = TimeNowFn().Add(d).Unix()
	return b
}

// Encode signs the assembled claims and returns the token.
func (b *Builder) Encode() (*Token, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.codec.encode(b.claims, b.expiresAt, b.notBefore)
}
