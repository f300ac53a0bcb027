// Package keys provides helpers for RSA key material in PEM form,
// deterministic derivation of shared secrets from seeds, and random secret
// generation.
package keys
