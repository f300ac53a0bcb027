package xjwt

import (
	"crypto"
	"regexp"
	"strconv"

	// SHA-2 digest registrations for crypto.Hash.New
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/cockroachdb/errors"
)

// Family identifies the signature family of an algorithm.
type Family int

// Supported signature families. The set is closed: the header "alg" of an
// incoming token is parsed into this enumeration once, at the boundary, and
// anything outside it is rejected. FamilyUnknown is the zero value, carried
// only by algorithms that never went through ParseAlgorithm.
const (
	FamilyUnknown Family = iota
	FamilyNone
	FamilyHMAC
	FamilyRSA
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyHMAC:
		return "HMAC"
	case FamilyRSA:
		return "RSA"
	}
	return "unknown"
}

// AlgNone is the identifier of the unsigned mode.
const AlgNone = "none"

// Algorithm is a parsed algorithm identifier. The zero value is not usable;
// obtain one from ParseAlgorithm.
type Algorithm struct {
	// Name is the identifier as it appears in the header, e.g. "HS256".
	Name string
	// Family is the signature family.
	Family Family
	// Bits is the hash strength; 0 for the none family.
	Bits int
}

var algExpr = regexp.MustCompile(`^(HS|RS)(\d+)$`)

// ParseAlgorithm parses an identifier such as "HS256", "RS384" or "none"
// into its family and hash strength. Identifiers outside the supported
// families fail with ErrUnknownAlgorithm. The strength is not checked here:
// an algorithm without a matching SHA-2 digest fails at sign or verify time
// with ErrUnsupportedHash.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == AlgNone {
		return Algorithm{Name: AlgNone, Family: FamilyNone}, nil
	}
	m := algExpr.FindStringSubmatch(name)
	if m == nil {
		return Algorithm{}, errors.WithMessagef(ErrUnknownAlgorithm, "alg %q", name)
	}
	bits, err := strconv.Atoi(m[2])
	if err != nil {
		return Algorithm{}, errors.WithMessagef(ErrUnknownAlgorithm, "alg %q", name)
	}

	a := Algorithm{Name: name, Bits: bits}
	if m[1] == "HS" {
		a.Family = FamilyHMAC
	} else {
		a.Family = FamilyRSA
	}
	return a, nil
}

// Hash returns the SHA-2 digest matching the algorithm strength.
func (a Algorithm) Hash() (crypto.Hash, error) {
	switch a.Bits {
	case 224:
		return crypto.SHA224, nil
	case 256:
		return crypto.SHA256, nil
	case 384:
		return crypto.SHA384, nil
	case 512:
		return crypto.SHA512, nil
	}
	return 0, errors.WithMessagef(ErrUnsupportedHash, "SHA-%d", a.Bits)
}
