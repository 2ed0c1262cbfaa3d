package chatfmt

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

const (
	minimalChars  = "*_~"
	extendedChars = "*_~|\\`>#-+!.()"
)

// Policy is the set of characters treated as markup syntax. Every character
// in the set is prefixed with a backslash when escaped.
type Policy struct {
	name  string
	chars string
	ascii [utf8.RuneSelf]bool
	other string
}

// NewPolicy returns a Policy escaping every rune in chars.
func NewPolicy(name, chars string) Policy {
	p := Policy{name: name}
	var other strings.Builder
	for _, r := range chars {
		if r < utf8.RuneSelf {
			if !p.ascii[r] {
				p.ascii[r] = true
				p.chars += string(r)
			}
			continue
		}
		if !strings.ContainsRune(other.String(), r) {
			other.WriteRune(r)
			p.chars += string(r)
		}
	}
	p.other = other.String()
	return p
}

// Name returns the policy name.
func (p Policy) Name() string { return p.name }

// Chars returns the escaped characters in the order they were declared.
func (p Policy) Chars() string { return p.chars }

// Contains reports whether r is escaped under the policy.
func (p Policy) Contains(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return p.ascii[r]
	}
	return p.other != "" && strings.ContainsRune(p.other, r)
}

// Escape prefixes every policy character in s with a single backslash.
// Escaping is one pass and per character; it is not idempotent, so escaping
// already escaped text doubles its backslashes. Bytes that are not valid
// UTF-8 are copied through untouched.
func (p Policy) Escape(s string) string {
	n := 0
	for _, r := range s {
		if p.Contains(r) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + n)
	last := 0
	for i, r := range s {
		if !p.Contains(r) {
			continue
		}
		b.WriteString(s[last:i])
		b.WriteByte('\\')
		last = i
	}
	b.WriteString(s[last:])
	return b.String()
}

// Escape escapes v with the formatter's policy. Values that are not strings
// (including nil, byte slices and numbers) yield an empty string rather than
// an error. Named string types are escaped like plain strings.
func (f *Formatter) Escape(v any) string {
	if s, ok := v.(string); ok {
		return f.policy.Escape(s)
	}
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return ""
	}
	return f.policy.Escape(rv.String())
}

// EscapeString escapes s with the formatter's policy.
func (f *Formatter) EscapeString(s string) string {
	return f.policy.Escape(s)
}

// Escape escapes v with the extended policy. See Formatter.Escape.
func Escape(v any) string { return std.Escape(v) }

// EscapeString escapes s with the extended policy.
func EscapeString(s string) string { return std.EscapeString(s) }
