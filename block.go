package chatfmt

import (
	"strconv"
	"strings"
)

const (
	minHeaderLevel = 1
	maxHeaderLevel = 3
)

// Header returns text as a header of the given level. Levels outside 1..3
// are rejected with a *ValidationError before any output is built.
func (f *Formatter) Header(text string, level int) (string, error) {
	if level < minHeaderLevel || level > maxHeaderLevel {
		return "", &ValidationError{
			Field:  "header level",
			Value:  strconv.Itoa(level),
			Reason: "must be between 1 and 3",
		}
	}
	return header(f.EscapeString(text), level), nil
}

func header(escaped string, level int) string {
	var b strings.Builder
	b.Grow(level + 1 + len(escaped))
	for i := 0; i < level; i++ {
		b.WriteByte('#')
	}
	b.WriteByte(' ')
	b.WriteString(escaped)
	return b.String()
}

func (f *Formatter) H1(text string) string { return header(f.EscapeString(text), 1) }
func (f *Formatter) H2(text string) string { return header(f.EscapeString(text), 2) }
func (f *Formatter) H3(text string) string { return header(f.EscapeString(text), 3) }

// Subtext returns text as small subtext.
func (f *Formatter) Subtext(text string) string {
	return "-# " + f.EscapeString(text)
}

// Quote returns text as a single-line quote.
func (f *Formatter) Quote(text string) string {
	return "> " + f.EscapeString(text)
}

// BlockQuote returns text as a quote that extends to the end of the message.
func (f *Formatter) BlockQuote(text string) string {
	return ">>> " + f.EscapeString(text)
}

// List returns a bulleted list with one line per item, in order. No items
// yields an empty string.
func (f *Formatter) List(items ...string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(f.EscapeString(item))
	}
	return b.String()
}

// NumberedList returns a list numbered from 1, in order. No items yields an
// empty string.
func (f *Formatter) NumberedList(items ...string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(f.EscapeString(item))
	}
	return b.String()
}

// CodeBlock returns text in a fenced code block. A language, if
// given, is written verbatim right after the opening fence.
func (f *Formatter) CodeBlock(text string, language ...string) string {
	lang := ""
	if len(language) > 0 {
		lang = language[0]
	}
	return "```" + lang + "\n" + f.EscapeString(text) + "\n```"
}

// Header formats text with the extended policy. See Formatter.Header.
func Header(text string, level int) (string, error) { return std.Header(text, level) }

// H1 formats a level 1 header with the extended policy.
func H1(text string) string { return std.H1(text) }

// H2 formats a level 2 header with the extended policy.
func H2(text string) string { return std.H2(text) }

// H3 formats a level 3 header with the extended policy.
func H3(text string) string { return std.H3(text) }

// Subtext formats text with the extended policy.
func Subtext(text string) string { return std.Subtext(text) }

// Quote formats a single-line quote with the extended policy.
func Quote(text string) string { return std.Quote(text) }

// BlockQuote quotes text to the end of the message with the extended policy.
func BlockQuote(text string) string { return std.BlockQuote(text) }

// List formats a bulleted list with the extended policy.
func List(items ...string) string { return std.List(items...) }

// NumberedList formats a numbered list with the extended policy.
func NumberedList(items ...string) string { return std.NumberedList(items...) }

// CodeBlock formats a fenced code block with the extended policy.
func CodeBlock(text string, language ...string) string { return std.CodeBlock(text, language...) }
