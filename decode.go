package xjwt

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/slices"
	"github.com/effective-security/xlog"
)

// Decode parses a serialized token, verifies its signature with the
// configured secret, and validates the temporal claims. On any failure no
// claims are returned.
func (c *Codec) Decode(raw string) (*Token, error) {
	return c.decode(raw, c.secret)
}

// DecodeWithSecret is Decode with key material supplied for this call only;
// see NewSecret for the accepted shapes. The codec's configured secret is
// not affected.
func (c *Codec) DecodeWithSecret(raw string, secret any) (*Token, error) {
	s, err := NewSecret(secret)
	if err != nil {
		return nil, err
	}
	return c.decode(raw, s)
}

// DecodeUnverified parses a token without checking the signature or the
// temporal claims. It's only ever useful in cases where you know the
// signature is valid, or for inspection tooling.
// WARNING: Don't use this method unless you know what you're doing
func (c *Codec) DecodeUnverified(raw string) (*Token, error) {
	token, _, err := c.parseUnverified(raw)
	if err != nil {
		return nil, err
	}
	if alg, err := ParseAlgorithm(token.Algorithm.Name); err == nil {
		token.Algorithm = alg
	}
	return token, nil
}

// decode drives the verification pipeline. Each step is terminal: the first
// failure is returned and no partial result escapes.
func (c *Codec) decode(raw string, secret Secret) (*Token, error) {
	token, parts, err := c.parseUnverified(raw)
	if err != nil {
		return nil, err
	}

	logger.KV(xlog.TRACE, "alg", token.Algorithm.Name)

	// The pinned set is checked on the declared name before any key
	// material is resolved.
	if len(c.validAlgs) > 0 && !slices.ContainsString(c.validAlgs, token.Algorithm.Name) {
		return nil, errors.WithMessagef(ErrAlgorithmNotAllowed, "alg %q", token.Algorithm.Name)
	}

	// Key material may be selected by the claims content; the claims are
	// not verified yet at this point.
	var key any
	if secret != nil {
		key, err = secret.resolve(token.Claims)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	alg, err := ParseAlgorithm(token.Algorithm.Name)
	if err != nil {
		return nil, err
	}
	token.Algorithm = alg

	if alg.Family == FamilyNone {
		// The signature segment of an unsigned token is ignored.
		if !c.allowNone {
			return nil, errors.WithStack(ErrNoneProhibited)
		}
	} else {
		sig, err := DecodeSegment(parts[2])
		if err != nil {
			return nil, errors.Mark(errors.WithMessage(err, "unable to decode signature"), ErrSignatureInvalid)
		}
		err = verifySignature(alg, strings.Join(parts[0:2], "."), sig, key)
		if err != nil {
			return nil, err
		}
	}

	now := TimeNowFn().Unix()
	if _, ok := token.Claims["exp"]; ok {
		exp := token.Claims.Int64("exp")
		if now > exp {
			return nil, errors.WithMessagef(ErrTokenExpired, "exp %d", exp)
		}
		token.ExpiresAt = exp
	}
	if _, ok := token.Claims["nbf"]; ok {
		nbf := token.Claims.Int64("nbf")
		if now < nbf {
			return nil, errors.WithMessagef(ErrTokenNotYetValid, "nbf %d", nbf)
		}
		token.NotBefore = nbf
	}

	return token, nil
}

// parseUnverified parses the structural part of a token: segment split,
// header and claims JSON, the type contract, and the presence of the
// algorithm header. Claims numbers are decoded as json.Number so they
// round-trip the wire unchanged.
func (c *Codec) parseUnverified(raw string) (*Token, []string, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, nil, errors.WithStack(ErrMalformedToken)
	}

	token := &Token{
		Raw: raw,
	}

	headerBytes, err := DecodeSegment(parts[0])
	if err != nil {
		return nil, nil, errors.Mark(errors.WithMessage(err, "unable to decode header"), ErrMalformedToken)
	}
	if err = json.Unmarshal(headerBytes, &token.Header); err != nil {
		return nil, nil, errors.Mark(errors.WithMessage(err, "unable to unmarshal header"), ErrMalformedToken)
	}

	claimBytes, err := DecodeSegment(parts[1])
	if err != nil {
		return nil, nil, errors.Mark(errors.WithMessage(err, "unable to decode claims"), ErrMalformedToken)
	}
	claims := Claims{}
	dec := json.NewDecoder(bytes.NewReader(claimBytes))
	dec.UseNumber()
	if err = dec.Decode(&claims); err != nil {
		return nil, nil, errors.Mark(errors.WithMessage(err, "unable to unmarshal claims"), ErrMalformedToken)
	}
	token.Claims = claims

	if typ, ok := token.Header["typ"].(string); !ok || typ != "JWT" {
		return nil, nil, errors.WithMessagef(ErrInvalidType, "typ %v", token.Header["typ"])
	}

	alg, ok := token.Header["alg"].(string)
	if !ok {
		return nil, nil, errors.WithStack(ErrMissingAlgorithm)
	}
	token.Algorithm = Algorithm{Name: alg}

	return token, parts, nil
}
