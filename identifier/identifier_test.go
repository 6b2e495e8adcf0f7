package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bot-lab/errors"
)

func TestCasefold_RFC1459Mapping(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		raw  string
		want Identifier
	}{
		{"plain lowercase", "exirel", "exirel"},
		{"uppercase folds", "Exirel", "exirel"},
		{"brackets are uppercase braces", "Nick[away]", "nick{away}"},
		{"backslash is uppercase pipe", `a\b`, "a|b"},
		{"tilde is uppercase caret", "power~user", "power^user"},
		{"non-ascii untouched", "Żółć", "Żółć"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Casefold(tt.raw)
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestCasefold_IsAnEquivalence(t *testing.T) {
	req := require.New(t)

	a, err := Casefold(`FOO[]\~`)
	req.NoError(err)
	b, err := Casefold("foo{}|^")
	req.NoError(err)

	req.Equal(a, b)

	// Folding is idempotent: normalizing a normalized key changes nothing.
	again, err := Casefold(string(a))
	req.NoError(err)
	req.Equal(a, again)
}

func TestRFC1459StrictFold_KeepsTilde(t *testing.T) {
	req := require.New(t)

	got, err := RFC1459StrictFold("Nick[~]")
	req.NoError(err)
	req.Equal(Identifier("nick{~}"), got)
}

func TestASCIIFold_LettersOnly(t *testing.T) {
	req := require.New(t)

	got, err := ASCIIFold(`Nick[A]\~`)
	req.NoError(err)
	req.Equal(Identifier(`nick[a]\~`), got)
}

func TestFold_RejectsBadInput(t *testing.T) {
	req := require.New(t)

	_, err := Casefold("")
	req.ErrorIs(err, errors.ErrInvalidIdentifier)

	_, err = Casefold("nick\xff")
	req.ErrorIs(err, errors.ErrInvalidIdentifier)
	req.Contains(err.Error(), `nick\xff`)
}

func TestFactoryFor(t *testing.T) {
	req := require.New(t)

	for _, name := range []string{CasemappingRFC1459, CasemappingStrictRFC1459, CasemappingASCII} {
		fold, err := FactoryFor(name)
		req.NoError(err)
		req.NotNil(fold)
	}

	_, err := FactoryFor("unicode")
	req.ErrorIs(err, errors.ErrUnknownCasemapping)
}
