package xjwt_test

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt"
	"github.com/effective-security/xjwt/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Codec(t *testing.T) {
	c, err := xjwt.NewCodec()
	require.NoError(t, err)
	assert.Equal(t, "HS256", c.Algorithm().Name)
	assert.Equal(t, xjwt.FamilyHMAC, c.Algorithm().Family)

	_, err = xjwt.NewCodec(xjwt.WithAlgorithm("ES256"))
	assert.EqualError(t, err, `alg "ES256": unknown algorithm`)

	_, err = xjwt.NewCodec(xjwt.WithSecret(42))
	assert.EqualError(t, err, "int: unsupported secret type")
	assert.ErrorIs(t, err, xjwt.ErrSecretFormat)

	_, err = xjwt.NewCodec(xjwt.WithSecret(nil))
	assert.EqualError(t, err, "nil secret: unsupported secret type")

	_, err = xjwt.NewCodec(xjwt.WithValidAlgorithms("HS256", "bogus"))
	assert.EqualError(t, err, `alg "bogus": unknown algorithm`)

	assert.Panics(t, func() {
		xjwt.MustNewCodec(xjwt.WithAlgorithm("bogus"))
	})
	assert.NotPanics(t, func() {
		xjwt.MustNewCodec(xjwt.WithSecret("seed"))
	})
}

func Test_EncodeDecode_HMAC(t *testing.T) {
	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))

	token, err := c.Encode(xjwt.Claims{
		"sub":  "denis@ekspand.com",
		"role": "admin",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token.Raw, "."), 3)
	assert.Equal(t, token.Raw, token.String())
	assert.Equal(t, "JWT", token.Header["typ"])
	assert.Equal(t, "HS256", token.Header["alg"])

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)
	assert.Equal(t, "denis@ekspand.com", parsed.Claims.String("sub"))
	assert.Equal(t, "admin", parsed.Claims.String("role"))
	assert.Equal(t, "HS256", parsed.Algorithm.Name)
	assert.Equal(t, xjwt.FamilyHMAC, parsed.Algorithm.Family)

	// the byte and string forms of the same secret are interchangeable
	parsed, err = c.DecodeWithSecret(token.Raw, []byte("s3cr3t"))
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	wrong := xjwt.MustNewCodec(xjwt.WithSecret("wrong"))
	_, err = wrong.Decode(token.Raw)
	assert.EqualError(t, err, "invalid signature")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)

	_, err = c.DecodeWithSecret(token.Raw, "wrong")
	assert.EqualError(t, err, "invalid signature")

	_, err = c.DecodeWithSecret(token.Raw, 42)
	assert.EqualError(t, err, "int: unsupported secret type")
	assert.ErrorIs(t, err, xjwt.ErrSecretFormat)

	// a tampered payload fails even with the right secret
	parts := strings.Split(token.Raw, ".")
	parts[1] = xjwt.EncodeSegment([]byte(`{"sub":"mallory"}`))
	_, err = c.Decode(strings.Join(parts, "."))
	assert.EqualError(t, err, "invalid signature")

	// without any key material nothing verifies
	bare := xjwt.MustNewCodec()
	_, err = bare.Decode(token.Raw)
	assert.EqualError(t, err, "no key material")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)

	_, err = bare.Encode(xjwt.Claims{"sub": "denis"})
	assert.EqualError(t, err, "no key material")
	assert.ErrorIs(t, err, xjwt.ErrSigning)

	empty := xjwt.MustNewCodec(xjwt.WithSecret([]byte{}))
	_, err = empty.Decode(token.Raw)
	assert.EqualError(t, err, "no key material")
}

func Test_EncodeDecode_AllHMAC(t *testing.T) {
	for _, alg := range []string{"HS224", "HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			c := xjwt.MustNewCodec(
				xjwt.WithAlgorithm(alg),
				xjwt.WithSecret("s3cr3t"),
			)
			token, err := c.Encode(xjwt.Claims{"sub": "denis"})
			require.NoError(t, err)
			assert.Equal(t, alg, token.Header["alg"])

			parsed, err := c.Decode(token.Raw)
			require.NoError(t, err)
			assert.Equal(t, token.Claims, parsed.Claims)

			_, err = c.DecodeWithSecret(token.Raw, "wrong")
			assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
		})
	}
}

func Test_EncodeDecode_RSA(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	for _, alg := range []string{"RS256", "RS384", "RS512"} {
		t.Run(alg, func(t *testing.T) {
			signer := xjwt.MustNewCodec(
				xjwt.WithAlgorithm(alg),
				xjwt.WithSecret(priv),
			)
			token, err := signer.Encode(xjwt.Claims{"sub": "denis@ekspand.com"})
			require.NoError(t, err)

			// the private key verifies through its public half
			parsed, err := signer.Decode(token.Raw)
			require.NoError(t, err)
			assert.Equal(t, token.Claims, parsed.Claims)
			assert.Equal(t, xjwt.FamilyRSA, parsed.Algorithm.Family)

			verifier := xjwt.MustNewCodec(
				xjwt.WithAlgorithm(alg),
				xjwt.WithSecret(&priv.PublicKey),
			)
			parsed, err = verifier.Decode(token.Raw)
			require.NoError(t, err)
			assert.Equal(t, token.Claims, parsed.Claims)

			_, err = verifier.DecodeWithSecret(token.Raw, &other.PublicKey)
			assert.EqualError(t, err, "invalid signature")
			assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
		})
	}
}

func Test_EncodeDecode_RSAPEM(t *testing.T) {
	priv, err := keys.GenerateRSAKey(2048)
	require.NoError(t, err)

	pemKey := keys.EncodePrivateKeyToPEM(priv)
	pemPub, err := keys.EncodePublicKeyToPEM(&priv.PublicKey)
	require.NoError(t, err)

	signer := xjwt.MustNewCodec(
		xjwt.WithAlgorithm("RS256"),
		xjwt.WithSecret(string(pemKey)),
	)
	token, err := signer.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)

	parsed, err := signer.DecodeWithSecret(token.Raw, pemPub)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	// a PEM private key serves for verification as well
	parsed, err = signer.DecodeWithSecret(token.Raw, string(pemKey))
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	_, err = signer.DecodeWithSecret(token.Raw, []byte("not a pem"))
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
}

func Test_AlgorithmConfusion(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	hs := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))
	token, err := hs.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)

	// an HMAC token is never verified with an RSA public key object
	_, err = hs.DecodeWithSecret(token.Raw, &priv.PublicKey)
	assert.EqualError(t, err, "invalid key type *rsa.PublicKey for HMAC signature")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)

	// and an RSA token is never verified with a shared secret
	rs := xjwt.MustNewCodec(xjwt.WithAlgorithm("RS256"), xjwt.WithSecret(priv))
	token, err = rs.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	_, err = rs.DecodeWithSecret(token.Raw, map[string]any{})
	assert.EqualError(t, err, "no key material")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
}

func Test_None(t *testing.T) {
	c := xjwt.MustNewCodec(
		xjwt.WithAlgorithm("none"),
		xjwt.WithAllowNone(true),
	)

	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(token.Raw, "."))
	assert.Equal(t, "none", token.Header["alg"])

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)
	assert.Equal(t, xjwt.FamilyNone, parsed.Algorithm.Family)

	// the signature segment of an unsigned token is ignored
	parsed, err = c.Decode(token.Raw + "garbage")
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	strict := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))
	_, err = strict.Decode(token.Raw)
	assert.EqualError(t, err, "none algorithm prohibited")
	assert.ErrorIs(t, err, xjwt.ErrNoneProhibited)

	// encoding unsigned tokens is not gated
	loose := xjwt.MustNewCodec(xjwt.WithAlgorithm("none"))
	token2, err := loose.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	_, err = loose.Decode(token2.Raw)
	assert.ErrorIs(t, err, xjwt.ErrNoneProhibited)
}

func Test_Expiry(t *testing.T) {
	now := time.Unix(1700000000, 0)
	xjwt.TimeNowFn = func() time.Time {
		return now
	}
	defer func() {
		xjwt.TimeNowFn = time.Now
	}()

	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))

	token, err := c.Builder().
		Set("sub", "denis").
		WithExpires(now.Add(time.Hour).Unix()).
		WithNotBefore(now.Unix()).
		Encode()
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), token.ExpiresAt)
	assert.Equal(t, now.Unix(), token.NotBefore)

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.ExpiresAt, parsed.ExpiresAt)
	assert.Equal(t, token.NotBefore, parsed.NotBefore)
	require.NotNil(t, parsed.Expires())
	assert.Equal(t, time.Unix(token.ExpiresAt, 0), *parsed.Expires())

	// a token expiring exactly now is still valid
	token, err = c.Builder().WithExpires(now.Unix()).Encode()
	require.NoError(t, err)
	_, err = c.Decode(token.Raw)
	require.NoError(t, err)

	token, err = c.Builder().WithExpires(now.Unix() - 1).Encode()
	require.NoError(t, err)
	_, err = c.Decode(token.Raw)
	assert.EqualError(t, err, "exp 1699999999: token expired")
	assert.ErrorIs(t, err, xjwt.ErrTokenExpired)

	// a token becoming valid exactly now is accepted
	token, err = c.Builder().WithNotBefore(now.Unix()).Encode()
	require.NoError(t, err)
	_, err = c.Decode(token.Raw)
	require.NoError(t, err)

	token, err = c.Builder().WithNotBefore(now.Unix() + 1).Encode()
	require.NoError(t, err)
	_, err = c.Decode(token.Raw)
	assert.EqualError(t, err, "nbf 1700000001: token not valid yet")
	assert.ErrorIs(t, err, xjwt.ErrTokenNotYetValid)

	token, err = c.Builder().WithNotBeforeIn(time.Second).Encode()
	require.NoError(t, err)
	assert.Equal(t, now.Unix()+1, token.NotBefore)
	_, err = c.Decode(token.Raw)
	assert.EqualError(t, err, "nbf 1700000001: token not valid yet")

	// expiry is checked only after the signature
	_, err = c.DecodeWithSecret(token.Raw, "wrong")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
}

func Test_ExpiryOptions(t *testing.T) {
	now := time.Unix(1700000000, 0)
	xjwt.TimeNowFn = func() time.Time {
		return now
	}
	defer func() {
		xjwt.TimeNowFn = time.Now
	}()

	c := xjwt.MustNewCodec(
		xjwt.WithSecret("s3cr3t"),
		xjwt.WithExpires(now.Add(time.Hour).Unix()),
		xjwt.WithNotBefore(now.Unix()),
	)

	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), token.ExpiresAt)
	assert.Equal(t, now.Unix(), token.NotBefore)

	// values already present in the claims win over the configured ones
	token, err = c.Encode(xjwt.Claims{
		"sub": "denis",
		"exp": now.Add(2 * time.Hour).Unix(),
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(2*time.Hour).Unix(), token.ExpiresAt)
}

func Test_Malformed(t *testing.T) {
	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))
	seg := func(s string) string {
		return xjwt.EncodeSegment([]byte(s))
	}
	hdr := seg(`{"typ":"JWT","alg":"HS256"}`)

	tcases := []struct {
		name   string
		token  string
		experr string
	}{
		{"empty", "", "malformed token"},
		{"two segments", "eyJhIjoxfQ.eyJhIjoxfQ", "malformed token"},
		{"four segments", "a.b.c.d", "malformed token"},
		{"bad header b64", "ab!c." + seg(`{}`) + ".c", "unable to decode header: illegal base64 data at input byte 2"},
		{"bad header json", seg("nojson") + "." + seg(`{}`) + ".c", "unable to unmarshal header: invalid character 'o' in literal null (expecting 'u')"},
		{"header not object", seg(`["a"]`) + "." + seg(`{}`) + ".c", "unable to unmarshal header: json: cannot unmarshal array into Go value of type map[string]interface {}"},
		{"bad claims b64", hdr + ".ab!c.c", "unable to decode claims: illegal base64 data at input byte 2"},
		{"bad claims json", hdr + "." + seg(`{`) + ".c", "unable to unmarshal claims: unexpected EOF"},
	}
	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Decode(tc.token)
			assert.EqualError(t, err, tc.experr)
			assert.ErrorIs(t, err, xjwt.ErrMalformedToken)
		})
	}

	_, err := c.Decode(seg(`{"typ":"JWS","alg":"HS256"}`) + "." + seg(`{}`) + ".c")
	assert.EqualError(t, err, "typ JWS: invalid token type")
	assert.ErrorIs(t, err, xjwt.ErrInvalidType)

	_, err = c.Decode(seg(`{"alg":"HS256"}`) + "." + seg(`{}`) + ".c")
	assert.EqualError(t, err, "typ <nil>: invalid token type")

	_, err = c.Decode(seg(`{"typ":"JWT"}`) + "." + seg(`{}`) + ".c")
	assert.EqualError(t, err, "missing alg header")
	assert.ErrorIs(t, err, xjwt.ErrMissingAlgorithm)

	_, err = c.Decode(seg(`{"typ":"JWT","alg":5}`) + "." + seg(`{}`) + ".c")
	assert.ErrorIs(t, err, xjwt.ErrMissingAlgorithm)

	_, err = c.Decode(seg(`{"typ":"JWT","alg":"XX555"}`) + "." + seg(`{}`) + ".c")
	assert.EqualError(t, err, `alg "XX555": unknown algorithm`)
	assert.ErrorIs(t, err, xjwt.ErrUnknownAlgorithm)

	// the signature segment must be valid base64url
	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	parts := strings.Split(token.Raw, ".")
	_, err = c.Decode(parts[0] + "." + parts[1] + ".ab!c")
	assert.EqualError(t, err, "unable to decode signature: illegal base64 data at input byte 2")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)
}

func Test_AlgorithmPinning(t *testing.T) {
	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))
	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)

	pinned := xjwt.MustNewCodec(
		xjwt.WithSecret("s3cr3t"),
		xjwt.WithValidAlgorithms("HS256", "HS384"),
	)
	parsed, err := pinned.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	rsOnly := xjwt.MustNewCodec(
		xjwt.WithSecret("s3cr3t"),
		xjwt.WithValidAlgorithms("RS256"),
	)
	_, err = rsOnly.Decode(token.Raw)
	assert.EqualError(t, err, `alg "HS256": algorithm not allowed`)
	assert.ErrorIs(t, err, xjwt.ErrAlgorithmNotAllowed)

	// pinning rejects unsigned tokens before the none gate
	unsigned := xjwt.MustNewCodec(xjwt.WithAlgorithm("none"))
	token, err = unsigned.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	_, err = rsOnly.Decode(token.Raw)
	assert.ErrorIs(t, err, xjwt.ErrAlgorithmNotAllowed)
}

func Test_IssuerKeys(t *testing.T) {
	c := xjwt.MustNewCodec(xjwt.WithSecret(map[string]string{
		"issuer1": "s3cr3t",
		"issuer2": "0th3r",
	}))

	token, err := c.Encode(xjwt.Claims{"iss": "issuer1", "sub": "denis"})
	require.NoError(t, err)

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, "issuer1", parsed.Claims.String("iss"))

	// tampering the issuer re-keys verification and fails the signature
	parts := strings.Split(token.Raw, ".")
	parts[1] = xjwt.EncodeSegment([]byte(`{"iss":"issuer2","sub":"denis"}`))
	_, err = c.Decode(strings.Join(parts, "."))
	assert.EqualError(t, err, "invalid signature")

	_, err = c.DecodeWithSecret(token.Raw, map[string]string{
		"issuer1": "0th3r",
	})
	assert.EqualError(t, err, "invalid signature")

	// an unknown issuer resolves no key material and never verifies
	unknown, err := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t")).
		Encode(xjwt.Claims{"iss": "evil", "sub": "denis"})
	require.NoError(t, err)
	_, err = c.Decode(unknown.Raw)
	assert.EqualError(t, err, "no key material")
	assert.ErrorIs(t, err, xjwt.ErrSignatureInvalid)

	// as does a token without the "iss" claim
	anon, err := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t")).
		Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	_, err = c.Decode(anon.Raw)
	assert.EqualError(t, err, "no key material")

	// encoding for an unknown issuer fails the same way
	_, err = c.Encode(xjwt.Claims{"iss": "evil"})
	assert.EqualError(t, err, "no key material")
	assert.ErrorIs(t, err, xjwt.ErrSigning)
}

func Test_SecretFunc(t *testing.T) {
	var seenIssuer string
	c := xjwt.MustNewCodec(xjwt.WithSecret(func(claims xjwt.Claims) (any, error) {
		seenIssuer = claims.String("iss")
		if seenIssuer == "issuer1" {
			return []byte("s3cr3t"), nil
		}
		return nil, errors.Errorf("unknown issuer %q", seenIssuer)
	}))

	token, err := c.Encode(xjwt.Claims{"iss": "issuer1", "sub": "denis"})
	require.NoError(t, err)
	assert.Equal(t, "issuer1", seenIssuer)

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	evil, err := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t")).
		Encode(xjwt.Claims{"iss": "evil"})
	require.NoError(t, err)
	_, err = c.Decode(evil.Raw)
	assert.EqualError(t, err, `unknown issuer "evil"`)
	assert.Equal(t, "evil", seenIssuer)
}

func Test_Headers(t *testing.T) {
	c := xjwt.MustNewCodec(
		xjwt.WithSecret("s3cr3t"),
		xjwt.WithHeaders(map[string]any{
			"kid": "key1",
			"typ": "custom",
			"alg": "none",
		}),
	)

	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)
	assert.Equal(t, "key1", token.Header["kid"])
	// the type and algorithm of the wire format cannot be overridden
	assert.Equal(t, "JWT", token.Header["typ"])
	assert.Equal(t, "HS256", token.Header["alg"])

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, "key1", parsed.Header["kid"])
}

func Test_Builder(t *testing.T) {
	now := time.Unix(1700000000, 0)
	xjwt.TimeNowFn = func() time.Time {
		return now
	}
	defer func() {
		xjwt.TimeNowFn = time.Now
	}()

	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))

	token, err := c.Builder().
		Set("sub", "denis@ekspand.com").
		Add(map[string]any{"role": "admin"}).
		WithExpiresIn(time.Hour).
		Encode()
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), token.ExpiresAt)

	parsed, err := c.Decode(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, "denis@ekspand.com", parsed.Claims.String("sub"))
	assert.Equal(t, "admin", parsed.Claims.String("role"))

	_, err = c.Builder().Add(3).Encode()
	assert.EqualError(t, err, "unsupported claims interface")

	// the builder starts from the codec's expiry values
	cfg := xjwt.MustNewCodec(
		xjwt.WithSecret("s3cr3t"),
		xjwt.WithExpires(now.Add(time.Minute).Unix()),
	)
	token, err = cfg.Builder().Set("sub", "denis").Encode()
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Minute).Unix(), token.ExpiresAt)
}

func Test_DecodeUnverified(t *testing.T) {
	c := xjwt.MustNewCodec(xjwt.WithSecret("s3cr3t"))
	token, err := c.Encode(xjwt.Claims{"sub": "denis"})
	require.NoError(t, err)

	inspect := xjwt.MustNewCodec()
	parsed, err := inspect.DecodeUnverified(token.Raw)
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)
	assert.Equal(t, xjwt.FamilyHMAC, parsed.Algorithm.Family)

	// the signature is not checked
	parts := strings.Split(token.Raw, ".")
	parsed, err = inspect.DecodeUnverified(parts[0] + "." + parts[1] + ".")
	require.NoError(t, err)
	assert.Equal(t, token.Claims, parsed.Claims)

	// but the structure still is
	_, err = inspect.DecodeUnverified("a.b")
	assert.ErrorIs(t, err, xjwt.ErrMalformedToken)

	// an unknown algorithm is carried through for inspection
	seg := xjwt.EncodeSegment
	parsed, err = inspect.DecodeUnverified(
		seg([]byte(`{"typ":"JWT","alg":"XX555"}`)) + "." + seg([]byte(`{}`)) + ".c")
	require.NoError(t, err)
	assert.Equal(t, "XX555", parsed.Algorithm.Name)
	assert.Equal(t, xjwt.FamilyUnknown, parsed.Algorithm.Family)
}
