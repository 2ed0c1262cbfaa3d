package chatfmt

import (
	"sort"
	"strings"
)

// TextFunc formats a single piece of text.
type TextFunc func(text string) string

var textFormats = map[string]func(*Formatter, string) string{
	"bold":          (*Formatter).Bold,
	"bold-italic":   (*Formatter).BoldItalic,
	"italic":        (*Formatter).Italic,
	"strikethrough": (*Formatter).Strikethrough,
	"underline":     (*Formatter).Underline,
	"spoiler":       (*Formatter).Spoiler,
	"h1":            (*Formatter).H1,
	"h2":            (*Formatter).H2,
	"h3":            (*Formatter).H3,
	"subtext":       (*Formatter).Subtext,
	"quote":         (*Formatter).Quote,
	"block-quote":   (*Formatter).BlockQuote,
	"code":          (*Formatter).Code,
	"code-block": func(f *Formatter, text string) string {
		return f.CodeBlock(text)
	},
	"list": func(f *Formatter, text string) string {
		return f.List(splitLines(text)...)
	},
	"numbered-list": func(f *Formatter, text string) string {
		return f.NumberedList(splitLines(text)...)
	},
	"escape": (*Formatter).EscapeString,
}

// TextFormats returns the names accepted by TextFormat, sorted.
func TextFormats() []string {
	names := make([]string, 0, len(textFormats))
	for name := range textFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TextFormat returns the formatter registered under name. The list formats
// take one item per line of text.
func (f *Formatter) TextFormat(name string) (TextFunc, bool) {
	fn, ok := textFormats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return func(text string) string { return fn(f, text) }, true
}

// TextFormat looks up name on the default formatter.
func TextFormat(name string) (TextFunc, bool) { return std.TextFormat(name) }

// splitLines splits text on newlines, dropping carriage returns. Empty text
// has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
