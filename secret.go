package xjwt

import (
	"crypto/rsa"

	"github.com/cockroachdb/errors"
)

// Secret produces key material for signature verification. The set of
// implementations is closed: construct one with Key, IssuerKeys, SecretFunc,
// or NewSecret.
type Secret interface {
	resolve(claims Claims) (any, error)
}

// Key returns a Secret backed by a literal value: a shared secret for HMAC
// ([]byte or string), an *rsa.PrivateKey or *rsa.PublicKey, or PEM-encoded
// RSA key bytes.
func Key(v any) Secret {
	return literalSecret{key: v}
}

type literalSecret struct {
	key any
}

func (s literalSecret) resolve(Claims) (any, error) {
	return s.key, nil
}

// IssuerKeys maps the "iss" claim to per-issuer key material. An absent
// "iss" claim or an unknown issuer resolves to no key material, which fails
// signature verification downstream.
type IssuerKeys map[string]any

func (s IssuerKeys) resolve(claims Claims) (any, error) {
	return s[claims.String("iss")], nil
}

// SecretFunc resolves key material from the parsed claims. The claims passed
// to the callback are not yet verified; implementations must not trust their
// content beyond selecting a key.
type SecretFunc func(claims Claims) (any, error)

func (s SecretFunc) resolve(claims Claims) (any, error) {
	return s(claims)
}

// NewSecret adapts a raw secret argument into a Secret:
//   - a Secret is returned as is
//   - []byte, string, *rsa.PrivateKey, *rsa.PublicKey become a literal Key
//   - map[string]any, map[string][]byte, map[string]string become IssuerKeys
//   - func(Claims) (any, error) becomes a SecretFunc
//
// Any other shape fails with ErrSecretFormat.
func NewSecret(v any) (Secret, error) {
	switch tv := v.(type) {
	case nil:
		return nil, errors.WithMessage(ErrSecretFormat, "nil secret")
	case Secret:
		return tv, nil
	case []byte:
		return literalSecret{key: tv}, nil
	case string:
		return literalSecret{key: []byte(tv)}, nil
	case *rsa.PrivateKey:
		return literalSecret{key: tv}, nil
	case *rsa.PublicKey:
		return literalSecret{key: tv}, nil
	case map[string]any:
		return IssuerKeys(tv), nil
	case map[string][]byte:
		m := make(IssuerKeys, len(tv))
		for k, val := range tv {
			m[k] = val
		}
		return m, nil
	case map[string]string:
		m := make(IssuerKeys, len(tv))
		for k, val := range tv {
			m[k] = []byte(val)
		}
		return m, nil
	case func(Claims) (any, error):
		return SecretFunc(tv), nil
	}
	return nil, errors.WithMessagef(ErrSecretFormat, "%T", v)
}
