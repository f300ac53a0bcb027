package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt"
	"github.com/effective-security/xjwt/keys"
)

// KeygenCmd specifies flags for the keygen command
type KeygenCmd struct {
	Alg  string `help:"algorithm to generate key material for" default:"HS256"`
	Bits int    `help:"RSA key size" default:"2048"`
	Out  string `help:"output file prefix; keys are printed when not set"`
}

// Run the command
func (a *KeygenCmd) Run(ctx *Cli) error {
	alg, err := xjwt.ParseAlgorithm(a.Alg)
	if err != nil {
		return err
	}
	if alg.Family != xjwt.FamilyNone {
		if _, err := alg.Hash(); err != nil {
			return err
		}
	}

	switch alg.Family {
	case xjwt.FamilyHMAC:
		// the secret carries as much entropy as the hash strength
		fmt.Fprintln(ctx.Writer(), keys.RandomString(alg.Bits/8))

	case xjwt.FamilyRSA:
		priv, err := keys.GenerateRSAKey(a.Bits)
		if err != nil {
			return err
		}
		privPEM := keys.EncodePrivateKeyToPEM(priv)
		pubPEM, err := keys.EncodePublicKeyToPEM(&priv.PublicKey)
		if err != nil {
			return err
		}

		if a.Out == "" {
			_, _ = ctx.Writer().Write(privPEM)
			_, _ = ctx.Writer().Write(pubPEM)
			return nil
		}
		if err := os.WriteFile(a.Out+".pem", privPEM, 0600); err != nil {
			return errors.WithStack(err)
		}
		if err := os.WriteFile(a.Out+".pub.pem", pubPEM, 0644); err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(ctx.Writer(), "wrote %s.pem and %s.pub.pem\n", a.Out, a.Out)

	default:
		return errors.Errorf("no key material for %q", alg.Name)
	}
	return nil
}
