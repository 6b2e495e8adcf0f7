// Package segment bounds outbound text by encoded byte length. The wire
// protocol budget is byte-oriented while messages are Unicode strings, so the
// splitter works on code points and checks the UTF-8 length of each candidate,
// never cutting a multi-byte code point in half.
package segment

import (
	"strings"
	"unicode"
)

// DefaultMaxBytes is the assumed safe payload size for one protocol line.
// Anything larger would have to account for the sender's hostmask, which the
// caller cannot know reliably.
const DefaultMaxBytes = 400

// Split returns the longest sendable prefix of text whose UTF-8 encoding fits
// maxBytes, plus the leftover excess with its leading whitespace trimmed.
// Short input comes back untouched with an empty excess.
//
// The word-boundary search uses the byte budget as a code-point offset on the
// first pass. That is only exact for single-byte text; the offset shrinks on
// each hard cut until the prefix fits. Callers depend on this approximation,
// so it must not be made byte-exact.
//
// A budget smaller than one code point's encoding yields a single-rune chunk
// that still exceeds the budget; it cannot be split further.
func Split(text string, maxBytes int) (string, string) {
	runes := []rune(text)
	offset := maxBytes
	var excess []rune

	for len(string(runes)) > maxBytes {
		if i := lastSpace(runes, offset); i >= 0 {
			// Cut at the best space found. The space itself travels
			// with the excess and is trimmed at the very end.
			excess = prepend(runes[i:], excess)
			runes = runes[:i]
			continue
		}

		// Single unbreakable token: hard cut, then retreat one code
		// point so the prefix keeps shrinking until it fits.
		cut := offset
		if cut > len(runes)-1 {
			cut = len(runes) - 1
		}
		if cut < 1 {
			if len(runes) <= 1 {
				// One rune left and it alone exceeds the budget.
				break
			}
			cut = 1
		}
		excess = prepend(runes[cut:], excess)
		runes = runes[:cut]
		offset = cut - 1
	}

	return string(runes), strings.TrimLeftFunc(string(excess), unicode.IsSpace)
}

// Chunks applies Split until nothing is left over, returning every sendable
// piece in order. This is the loop an outbound pipeline runs per message.
func Chunks(text string, maxBytes int) []string {
	var out []string
	for text != "" {
		sendable, excess := Split(text, maxBytes)
		if sendable != "" {
			out = append(out, sendable)
		}
		text = excess
	}
	return out
}

// lastSpace returns the index of the last ASCII space strictly before limit,
// or -1. Only the plain space splits words; other whitespace is preserved
// inside chunks, matching the protocol's notion of a word boundary.
func lastSpace(runes []rune, limit int) int {
	if limit > len(runes) {
		limit = len(runes)
	}
	for i := limit - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func prepend(head, tail []rune) []rune {
	out := make([]rune, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
