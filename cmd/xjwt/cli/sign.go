package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/guid"
	"github.com/effective-security/xjwt"
)

// SignCmd specifies flags for the sign command
type SignCmd struct {
	Claims      string        `kong:"arg" required:"" help:"claims JSON file, or - for stdin"`
	Cfg         string        `help:"codec configuration file"`
	Alg         string        `help:"signing algorithm" default:"HS256"`
	Secret      string        `help:"shared secret value"`
	Key         string        `help:"PEM encoded private key file"`
	ExpiresIn   time.Duration `help:"expiry period, e.g. 60m"`
	NotBeforeIn time.Duration `help:"not-before period, e.g. 5m"`
	Jti         bool          `help:"add a unique jti claim"`
}

// Run the command
func (a *SignCmd) Run(ctx *Cli) error {
	codec, err := newCodec(a.Cfg, a.Alg, a.Secret, a.Key, false, nil)
	if err != nil {
		return err
	}

	raw, err := ctx.ReadFile(a.Claims)
	if err != nil {
		return errors.WithMessage(err, "unable to load claims")
	}

	claims := xjwt.Claims{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&claims); err != nil {
		return errors.WithMessage(err, "unable to parse claims")
	}

	b := codec.Builder().Add(claims)
	if a.ExpiresIn > 0 {
		b = b.WithExpiresIn(a.ExpiresIn)
	}
	if a.NotBeforeIn > 0 {
		b = b.WithNotBeforeIn(a.NotBeforeIn)
	}
	if a.Jti {
		b = b.Set("jti", guid.MustCreate())
	}

	token, err := b.Encode()
	if err != nil {
		return errors.WithMessage(err, "unable to sign token")
	}

	fmt.Fprintln(ctx.Writer(), token.String())
	return nil
}

// newCodec builds a codec from a configuration file, or from the command
// flags when no configuration is given.
func newCodec(cfgFile, alg, secret, keyFile string, allowNone bool, validAlgs []string) (*xjwt.Codec, error) {
	if cfgFile != "" {
		return xjwt.Load(cfgFile)
	}

	opts := []xjwt.Option{
		xjwt.WithAllowNone(allowNone),
	}
	if alg != "" {
		opts = append(opts, xjwt.WithAlgorithm(alg))
	}
	if len(validAlgs) > 0 {
		opts = append(opts, xjwt.WithValidAlgorithms(validAlgs...))
	}

	switch {
	case secret != "" && keyFile != "":
		return nil, errors.New("only one of --secret or --key can be used")
	case secret != "":
		opts = append(opts, xjwt.WithSecret(secret))
	case keyFile != "":
		pem, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, errors.WithMessage(err, "unable to load key")
		}
		opts = append(opts, xjwt.WithSecret(pem))
	}

	return xjwt.NewCodec(opts...)
}
