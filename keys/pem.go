package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	"github.com/cockroachdb/errors"
)

// ParseRSAPrivateKey parses a PEM encoded PKCS#8 or PKCS#1 RSA private key.
func ParseRSAPrivateKey(key []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, errors.New("key must be PEM encoded")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		k, err2 := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err2 != nil {
			// The parse errors are not included,
			// to not leak any info about the private key.
			return nil, errors.New("unable to parse private key")
		}
		parsed = k
	}

	pkey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.Errorf("not RSA private key: %T", parsed)
	}

	return pkey, nil
}

// ParseRSAPublicKey parses a PEM encoded RSA public key in PKIX form,
// a certificate carrying one, or a PKCS#1 block.
func ParseRSAPublicKey(key []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(key)
	if block == nil {
		return nil, errors.New("key must be PEM encoded")
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		if cert, err2 := x509.ParseCertificate(block.Bytes); err2 == nil {
			parsed = cert.PublicKey
		} else if k, err3 := x509.ParsePKCS1PublicKey(block.Bytes); err3 == nil {
			parsed = k
		} else {
			return nil, errors.New("unable to parse public key")
		}
	}

	pkey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.Errorf("not RSA public key: %T", parsed)
	}

	return pkey, nil
}

// GenerateRSAKey generates an RSA key pair of the given bit size.
func GenerateRSAKey(bits int) (*rsa.PrivateKey, error) {
	if bits < 2048 {
		return nil, errors.Errorf("insecure key size: %d", bits)
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return key, nil
}

// EncodePrivateKeyToPEM returns the key PEM encoded in PKCS#1 form.
func EncodePrivateKeyToPEM(priv *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(priv),
	})
}

// EncodePublicKeyToPEM returns the key PEM encoded in PKIX form.
func EncodePublicKeyToPEM(pub *rsa.PublicKey) ([]byte, error) {
	asn1Bytes, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: asn1Bytes,
	}), nil
}
