package identifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bot-lab/errors"
)

func TestHostmask_WildcardsAndCase(t *testing.T) {
	req := require.New(t)

	re, err := Hostmask("*!*@*.example.com")
	req.NoError(err)

	req.True(re.MatchString("Nick!user@host.example.com"))
	req.True(re.MatchString("NICK!USER@HOST.EXAMPLE.COM"))
	req.False(re.MatchString("nick!user@example.org"))
	// Anchored: a matching suffix inside a longer string is not a match.
	req.False(re.MatchString("prefix nick!user@host.example.com suffix"))
}

func TestHostmask_LiteralCharactersAreEscaped(t *testing.T) {
	req := require.New(t)

	re, err := Hostmask("nick!user@host.example.com")
	req.NoError(err)

	// The dots are literal dots, not regex wildcards.
	req.False(re.MatchString("nick!user@hostXexampleXcom"))
	req.True(re.MatchString("nick!user@host.example.com"))
}

func TestHostmask_Empty(t *testing.T) {
	_, err := Hostmask("")
	require.ErrorIs(t, err, errors.ErrEmptyHostmask)
}
