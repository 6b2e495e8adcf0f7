// Package identifier defines the normalized form of protocol nicknames and
// channel names. Two raw strings designate the same entity exactly when their
// folded Identifiers are equal, following the casemapping rules IRC servers
// advertise (RFC 1459 treats []\~ as the uppercase forms of {}|^).
package identifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bot-lab/errors"
)

// Identifier is the comparison-ready form of a raw textual key. It is a plain
// string so it can be used directly as a map key.
type Identifier string

// Factory converts a raw key into its Identifier. Implementations must be
// deterministic and total over valid UTF-8, and the induced equality must be
// an equivalence relation. A Factory rejects input it cannot convert instead
// of coercing it silently.
type Factory func(raw string) (Identifier, error)

// Casemapping names recognized by FactoryFor, matching the values servers
// advertise in ISUPPORT.
const (
	CasemappingRFC1459       = "rfc1459"
	CasemappingStrictRFC1459 = "strict-rfc1459"
	CasemappingASCII         = "ascii"
)

// Casefold folds raw under RFC 1459 casemapping, the default identity rule
// for nicknames. ASCII letters are lowercased and []\~ map to {}|^.
func Casefold(raw string) (Identifier, error) {
	return fold(raw, true)
}

// RFC1459StrictFold is Casefold without the ~ to ^ mapping, for servers
// advertising CASEMAPPING=strict-rfc1459.
func RFC1459StrictFold(raw string) (Identifier, error) {
	return fold(raw, false)
}

// ASCIIFold lowercases ASCII letters only.
func ASCIIFold(raw string) (Identifier, error) {
	if err := checkRaw(raw); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return Identifier(b.String()), nil
}

// FactoryFor resolves a casemapping name into its Factory.
func FactoryFor(casemapping string) (Factory, error) {
	switch casemapping {
	case CasemappingRFC1459:
		return Casefold, nil
	case CasemappingStrictRFC1459:
		return RFC1459StrictFold, nil
	case CasemappingASCII:
		return ASCIIFold, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCasemapping, casemapping)
	}
}

func fold(raw string, mapTilde bool) (Identifier, error) {
	if err := checkRaw(raw); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		case r == '[':
			r = '{'
		case r == ']':
			r = '}'
		case r == '\\':
			r = '|'
		case r == '~' && mapTilde:
			r = '^'
		}
		b.WriteRune(r)
	}
	return Identifier(b.String()), nil
}

func checkRaw(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty key", errors.ErrInvalidIdentifier)
	}
	if !utf8.ValidString(raw) {
		return fmt.Errorf("%w: %q is not valid UTF-8", errors.ErrInvalidIdentifier, raw)
	}
	return nil
}
