package identifier

import (
	"fmt"
	"regexp"
	"strings"

	"bot-lab/errors"
)

// Hostmask compiles an IRC hostmask such as "nick!*@*.example.com" into a
// case-insensitive pattern. The * wildcard matches any run of characters;
// every other character is literal. The pattern is anchored at both ends:
// a mask describes the whole hostmask, never a substring.
func Hostmask(mask string) (*regexp.Regexp, error) {
	if mask == "" {
		return nil, errors.ErrEmptyHostmask
	}

	quoted := regexp.QuoteMeta(mask)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)

	re, err := regexp.Compile(`(?i)^` + quoted + `$`)
	if err != nil {
		return nil, fmt.Errorf("hostmask %q: %w", mask, err)
	}
	return re, nil
}
