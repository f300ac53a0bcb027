package xjwt

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/fileutil"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xjwt/keys"
	"gopkg.in/yaml.v3"
)

// IssuerKey pairs an issuer with a key seed. The shared secret is derived
// from the seed, so peers holding the same seed verify each other's tokens.
type IssuerKey struct {
	// Issuer is matched against the "iss" claim
	Issuer string `json:"issuer" yaml:"issuer"`
	// Seed of the shared secret
	Seed string `json:"seed" yaml:"seed"`
}

// Config provides codec configuration.
//
// The Secret, Seed, PrivateKey and PublicKey values support file:// and
// env:// prefixes to load the material from a file or the environment.
// At most one of Secret, Keys, PrivateKey, PublicKey may be set.
type Config struct {
	// Algorithm specifies the signing algorithm, default HS256
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	// AllowNone permits unsigned tokens on decode
	AllowNone bool `json:"allow_none" yaml:"allow_none"`
	// ValidAlgorithms pins the algorithms accepted on decode
	ValidAlgorithms []string `json:"valid_algorithms" yaml:"valid_algorithms"`
	// Secret specifies the shared secret
	Secret string `json:"secret" yaml:"secret"`
	// Keys specifies per-issuer key seeds
	Keys []*IssuerKey `json:"keys" yaml:"keys"`
	// PrivateKey specifies PEM encoded RSA private key
	PrivateKey string `json:"private_key" yaml:"private_key"`
	// PublicKey specifies PEM encoded RSA public key
	PublicKey string `json:"public_key" yaml:"public_key"`
	// Expires specifies the "exp" value applied on encode, in epoch seconds
	Expires int64 `json:"expires" yaml:"expires"`
	// NotBefore specifies the "nbf" value applied on encode, in epoch seconds
	NotBefore int64 `json:"not_before" yaml:"not_before"`
}

// LoadConfig returns configuration loaded from a file, with key material
// resolved through the file:// and env:// schemas.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return &Config{}, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var config Config
	if strings.HasSuffix(file, ".json") {
		err = json.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal JSON: %q", file)
		}
	} else {
		err = yaml.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal YAML: %q", file)
		}
	}

	if config.Secret != "" {
		config.Secret, err = fileutil.LoadConfigWithSchema(config.Secret)
		if err != nil {
			return nil, errors.WithMessage(err, "unable to resolve secret")
		}
	}
	if config.PrivateKey != "" {
		config.PrivateKey, err = fileutil.LoadConfigWithSchema(config.PrivateKey)
		if err != nil {
			return nil, errors.WithMessage(err, "unable to resolve private key")
		}
	}
	if config.PublicKey != "" {
		config.PublicKey, err = fileutil.LoadConfigWithSchema(config.PublicKey)
		if err != nil {
			return nil, errors.WithMessage(err, "unable to resolve public key")
		}
	}
	for _, key := range config.Keys {
		key.Seed, err = fileutil.LoadConfigWithSchema(key.Seed)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to resolve seed for issuer %q", key.Issuer)
		}
	}

	return &config, nil
}

// NewCodecFromConfig returns a codec built from the configuration. Issuer
// seeds are derived into shared secrets; a PEM private key can both sign
// and verify, a PEM public key only verifies.
func NewCodecFromConfig(cfg *Config) (*Codec, error) {
	sources := 0
	for _, set := range []bool{
		cfg.Secret != "",
		len(cfg.Keys) > 0,
		cfg.PrivateKey != "",
		cfg.PublicKey != "",
	} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.Errorf("multiple key sources configured")
	}

	opts := []Option{
		WithAlgorithm(values.Select(cfg.Algorithm != "", cfg.Algorithm, DefaultAlgorithm)),
		WithAllowNone(cfg.AllowNone),
		WithExpires(cfg.Expires),
		WithNotBefore(cfg.NotBefore),
	}
	if len(cfg.ValidAlgorithms) > 0 {
		opts = append(opts, WithValidAlgorithms(cfg.ValidAlgorithms...))
	}

	switch {
	case cfg.Secret != "":
		opts = append(opts, WithSecret(cfg.Secret))
	case len(cfg.Keys) > 0:
		m := IssuerKeys{}
		for _, key := range cfg.Keys {
			derived, err := keys.FromSeed(key.Seed)
			if err != nil {
				return nil, errors.WithMessagef(err, "unable to derive key for issuer %q", key.Issuer)
			}
			m[key.Issuer] = derived
		}
		opts = append(opts, WithSecret(m))
	case cfg.PrivateKey != "":
		opts = append(opts, WithSecret([]byte(cfg.PrivateKey)))
	case cfg.PublicKey != "":
		opts = append(opts, WithSecret([]byte(cfg.PublicKey)))
	}

	return NewCodec(opts...)
}

// Load returns a codec built from a configuration file.
func Load(cfgfile string) (*Codec, error) {
	cfg, err := LoadConfig(cfgfile)
	if err != nil {
		return nil, err
	}
	return NewCodecFromConfig(cfg)
}
