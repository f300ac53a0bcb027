package xjwt

import (
	"time"

	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "xjwt")

// TimeNowFn to override in unit tests
var TimeNowFn = time.Now

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = "HS256"

// Codec encodes and decodes signed claims tokens. A Codec is immutable after
// construction and safe for concurrent use; every Encode and Decode returns
// a fresh Token.
type Codec struct {
	alg       Algorithm
	secret    Secret
	allowNone bool
	validAlgs []string
	headers   map[string]any
	expiresAt int64
	notBefore int64
}

type codecOptions struct {
	alg       string
	secret    any
	hasSecret bool
	allowNone bool
	validAlgs []string
	headers   map[string]any
	expiresAt int64
	notBefore int64
}

// Option configures a Codec.
type Option func(*codecOptions)

// WithAlgorithm selects the signing algorithm, default HS256.
func WithAlgorithm(name string) Option {
	return func(o *codecOptions) {
		o.alg = name
	}
}

// WithSecret configures the key material used to sign and verify;
// see NewSecret for the accepted shapes.
func WithSecret(v any) Option {
	return func(o *codecOptions) {
		o.secret = v
		o.hasSecret = true
	}
}

// WithAllowNone permits unsigned tokens on decode. Encoding with the none
// algorithm is never blocked; only the decode side is gated.
func WithAllowNone(allow bool) Option {
	return func(o *codecOptions) {
		o.allowNone = allow
	}
}

// WithValidAlgorithms pins the algorithm names accepted on decode. When not
// set, any supported algorithm the key material verifies is accepted.
func WithValidAlgorithms(names ...string) Option {
	return func(o *codecOptions) {
		o.validAlgs = append(o.validAlgs, names...)
	}
}

// WithHeaders adds extra header values on encode.
// The "typ" and "alg" values cannot be overridden.
func WithHeaders(headers map[string]any) Option {
	return func(o *codecOptions) {
		if o.headers == nil {
			o.headers = map[string]any{}
		}
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithExpires sets the "exp" claim applied on encode, in epoch seconds,
// when the claims do not already carry one.
func WithExpires(epoch int64) Option {
	return func(o *codecOptions) {
		o.expiresAt = epoch
	}
}

// WithNotBefore sets the "nbf" claim applied on encode, in epoch seconds,
// when the claims do not already carry one.
func WithNotBefore(epoch int64) Option {
	return func(o *codecOptions) {
		o.notBefore = epoch
	}
}

// NewCodec returns a codec configured with the options. The algorithm, the
// secret shape, and the pinned algorithm names are validated here, so that
// misconfiguration surfaces at construction and not on the first token.
func NewCodec(opts ...Option) (*Codec, error) {
	o := codecOptions{
		alg: DefaultAlgorithm,
	}
	for _, opt := range opts {
		opt(&o)
	}

	alg, err := ParseAlgorithm(o.alg)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		alg:       alg,
		allowNone: o.allowNone,
		headers:   o.headers,
		expiresAt: o.expiresAt,
		notBefore: o.notBefore,
	}

	if o.hasSecret {
		c.secret, err = NewSecret(o.secret)
		if err != nil {
			return nil, err
		}
	}

	for _, name := range o.validAlgs {
		if _, err := ParseAlgorithm(name); err != nil {
			return nil, err
		}
	}
	c.validAlgs = o.validAlgs

	return c, nil
}

// MustNewCodec returns a codec or panics on invalid options.
func MustNewCodec(opts ...Option) *Codec {
	c, err := NewCodec(opts...)
	if err != nil {
		logger.Panicf("unable to create codec: %+v", err)
	}
	return c
}

// Algorithm returns the configured signing algorithm.
func (c *Codec) Algorithm() Algorithm {
	return c.alg
}
