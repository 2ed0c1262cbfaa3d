package chatfmt

import (
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// MaxMessageLength is the longest message content the platform accepts,
// counted in characters.
const MaxMessageLength = 2000

const ellipsis = "…"

// Truncate fits text into limit terminal cells, replacing the tail with an
// ellipsis when it does not fit. It measures display width, so it suits
// raw text shown in a terminal; use TruncateMessage for the platform limit.
func Truncate(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return ellipsis
	}
	return truncate.String(text, uint(limit-1)) + ellipsis
}

// TruncateMessage fits text into MaxMessageLength characters, ending a cut
// with an ellipsis. When the policy escapes backslashes, a cut never leaves
// a lone escaping backslash in front of the ellipsis. Under a policy that
// leaves backslashes alone they are user text and are kept.
func (f *Formatter) TruncateMessage(text string) string {
	if utf8.RuneCountInString(text) <= MaxMessageLength {
		return text
	}
	kept := cutRunes(text, MaxMessageLength-1)
	if f.policy.Contains('\\') {
		kept = trimDanglingEscape(kept)
	}
	return kept + ellipsis
}

// TruncateMessage fits escaped text into MaxMessageLength characters using
// the extended policy.
func TruncateMessage(text string) string { return std.TruncateMessage(text) }

// cutRunes returns the first n runes of s.
func cutRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func trimDanglingEscape(s string) string {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	if n%2 == 1 {
		return s[:len(s)-1]
	}
	return s
}
