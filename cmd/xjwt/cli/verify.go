package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt"
)

// VerifyCmd specifies flags for the verify command
type VerifyCmd struct {
	Token     string   `kong:"arg" required:"" help:"token value, file name, or - for stdin"`
	Cfg       string   `help:"codec configuration file"`
	Secret    string   `help:"shared secret value"`
	Key       string   `help:"PEM encoded public or private key file"`
	AllowNone bool     `help:"allow unsigned tokens"`
	Alg       []string `help:"pin accepted algorithms"`
}

// Run the command
func (a *VerifyCmd) Run(ctx *Cli) error {
	codec, err := newCodec(a.Cfg, "", a.Secret, a.Key, a.AllowNone, a.Alg)
	if err != nil {
		return err
	}

	raw, err := ctx.ReadToken(a.Token)
	if err != nil {
		return err
	}

	token, err := codec.Decode(raw)
	if err != nil {
		return errors.WithMessage(err, "unable to verify token")
	}

	ctx.WriteJSON(token.Claims)
	return nil
}

// InspectCmd specifies flags for the inspect command
type InspectCmd struct {
	Token string `kong:"arg" required:"" help:"token value, file name, or - for stdin"`
}

// Run the command prints the header and claims without verification.
func (a *InspectCmd) Run(ctx *Cli) error {
	raw, err := ctx.ReadToken(a.Token)
	if err != nil {
		return err
	}

	token, err := xjwt.MustNewCodec().DecodeUnverified(raw)
	if err != nil {
		return errors.WithMessage(err, "unable to parse token")
	}

	ctx.WriteJSON(struct {
		Header map[string]any `json:"header"`
		Claims xjwt.Claims    `json:"claims"`
	}{
		Header: token.Header,
		Claims: token.Claims,
	})
	return nil
}
