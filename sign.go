package xjwt

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/keys"
	"github.com/effective-security/xjwt/metricskey"
)

// signPayload produces the raw signature bytes over the signing string.
// The none family yields an empty signature.
func signPayload(alg Algorithm, payload string, key any) ([]byte, error) {
	defer metricskey.PerfTokenSign.MeasureSince(time.Now(), alg.Name)

	switch alg.Family {
	case FamilyNone:
		return nil, nil

	case FamilyHMAC:
		hash, err := alg.Hash()
		if err != nil {
			return nil, errors.Mark(err, ErrSigning)
		}
		mac, err := hmacKey(key)
		if err != nil {
			return nil, errors.Mark(err, ErrSigning)
		}
		h := hmac.New(hash.New, mac)
		h.Write([]byte(payload))
		return h.Sum(nil), nil

	case FamilyRSA:
		hash, err := alg.Hash()
		if err != nil {
			return nil, errors.Mark(err, ErrSigning)
		}
		priv, err := rsaPrivateKey(key)
		if err != nil {
			return nil, errors.Mark(err, ErrSigning)
		}
		hasher := hash.New()
		hasher.Write([]byte(payload))
		sig, err := rsa.SignPKCS1v15(rand.Reader, priv, hash, hasher.Sum(nil))
		if err != nil {
			return nil, errors.Mark(err, ErrSigning)
		}
		return sig, nil
	}

	return nil, errors.WithMessagef(ErrUnknownAlgorithm, "alg %q", alg.Name)
}

// verifySignature checks the decoded signature bytes against the signing
// string. Any failure reports ErrSignatureInvalid; the none family accepts
// regardless of the signature content.
func verifySignature(alg Algorithm, payload string, sig []byte, key any) error {
	defer metricskey.PerfTokenVerify.MeasureSince(time.Now(), alg.Name)

	switch alg.Family {
	case FamilyNone:
		return nil

	case FamilyHMAC:
		hash, err := alg.Hash()
		if err != nil {
			return err
		}
		mac, err := hmacKey(key)
		if err != nil {
			return errors.Mark(err, ErrSignatureInvalid)
		}
		h := hmac.New(hash.New, mac)
		h.Write([]byte(payload))
		if !hmac.Equal(h.Sum(nil), sig) {
			return errors.WithStack(ErrSignatureInvalid)
		}
		return nil

	case FamilyRSA:
		hash, err := alg.Hash()
		if err != nil {
			return err
		}
		pub, err := rsaPublicKey(key)
		if err != nil {
			return errors.Mark(err, ErrSignatureInvalid)
		}
		hasher := hash.New()
		hasher.Write([]byte(payload))
		if err := rsa.VerifyPKCS1v15(pub, hash, hasher.Sum(nil), sig); err != nil {
			return errors.WithStack(ErrSignatureInvalid)
		}
		return nil
	}

	return errors.WithMessagef(ErrUnknownAlgorithm, "alg %q", alg.Name)
}

// hmacKey coerces key material to a shared secret. Absent material is
// rejected here so that an unknown issuer can never pass verification with
// an empty key.
func hmacKey(key any) ([]byte, error) {
	switch tv := key.(type) {
	case []byte:
		if len(tv) == 0 {
			return nil, errors.New("no key material")
		}
		return tv, nil
	case string:
		if tv == "" {
			return nil, errors.New("no key material")
		}
		return []byte(tv), nil
	case nil:
		return nil, errors.New("no key material")
	}
	return nil, errors.Errorf("invalid key type %T for HMAC signature", key)
}

// rsaPrivateKey coerces key material to a signing key,
// parsing PEM when raw bytes are supplied.
func rsaPrivateKey(key any) (*rsa.PrivateKey, error) {
	switch tv := key.(type) {
	case *rsa.PrivateKey:
		return tv, nil
	case []byte:
		return keys.ParseRSAPrivateKey(tv)
	case string:
		return keys.ParseRSAPrivateKey([]byte(tv))
	case nil:
		return nil, errors.New("no key material")
	}
	return nil, errors.Errorf("invalid key type %T for RSA signature", key)
}

// rsaPublicKey coerces key material to a verification key. A private key is
// accepted and contributes its public half; raw bytes are parsed as PEM,
// falling back to the public part of a PEM private key.
func rsaPublicKey(key any) (*rsa.PublicKey, error) {
	switch tv := key.(type) {
	case *rsa.PublicKey:
		return tv, nil
	case *rsa.PrivateKey:
		return &tv.PublicKey, nil
	case []byte:
		pub, err := keys.ParseRSAPublicKey(tv)
		if err != nil {
			priv, err2 := keys.ParseRSAPrivateKey(tv)
			if err2 != nil {
				return nil, err
			}
			pub = &priv.PublicKey
		}
		return pub, nil
	case string:
		return rsaPublicKey([]byte(tv))
	case nil:
		return nil, errors.New("no key material")
	}
	return nil, errors.Errorf("invalid key type %T for RSA signature", key)
}
