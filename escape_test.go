package chatfmt

import (
	"strings"
	"testing"
)

func TestEscapeExtendedPolicy(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a*b_c~d", `a\*b\_c\~d`},
		{"||spoiler||", `\|\|spoiler\|\|`},
		{`back\slash`, `back\\slash`},
		{"`code`", "\\`code\\`"},
		{"> quote", `\> quote`},
		{"# header", `\# header`},
		{"- item", `\- item`},
		{"+ item", `\+ item`},
		{"1. step", `1\. step`},
		{"2) step", `2\) step`},
		{"(!)", `\(\!\)`},
		{"[link](url)", `[link]\(url\)`},
		{"naïve ☃ *snow*", `naïve ☃ \*snow\*`},
	}
	for _, tc := range cases {
		if got := EscapeString(tc.in); got != tc.want {
			t.Fatalf("EscapeString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeMinimalPolicy(t *testing.T) {
	f := New(WithPolicy(MinimalPolicy))
	got := f.EscapeString("# *a* _b_ ~c~ - 1. > |x| `y` \\")
	want := `# \*a\* \_b\_ \~c\~ - 1. > |x| ` + "`y`" + ` \`
	if got != want {
		t.Fatalf("minimal escape = %q, want %q", got, want)
	}
}

func TestEscapeNonStringReturnsEmpty(t *testing.T) {
	for _, v := range []any{42, nil, 3.5, []byte("a*b"), true, struct{}{}} {
		if got := Escape(v); got != "" {
			t.Fatalf("Escape(%#v) = %q, want empty", v, got)
		}
	}
}

func TestEscapeNamedStringType(t *testing.T) {
	type name string
	if got := Escape(name("a*b")); got != `a\*b` {
		t.Fatalf("Escape(named) = %q", got)
	}
	if got := Escape("a*b"); got != `a\*b` {
		t.Fatalf("Escape(string) = %q", got)
	}
}

func TestEscapeIsNotIdempotent(t *testing.T) {
	once := EscapeString("*")
	twice := EscapeString(once)
	if once != `\*` {
		t.Fatalf("first escape = %q", once)
	}
	if twice != `\\\*` {
		t.Fatalf("second escape = %q, want doubled backslash", twice)
	}
	if Bold(Bold("x")) == Bold("x") {
		t.Fatalf("nested bold collapsed")
	}
	if got := Bold(Bold("x")); got != `**\*\*x\*\***` {
		t.Fatalf("nested bold = %q", got)
	}

	minimal := New(WithPolicy(MinimalPolicy))
	if got := minimal.EscapeString(minimal.EscapeString("*")); got != `\\*` {
		t.Fatalf("minimal re-escape = %q", got)
	}
}

func TestEscapePreservesInvalidUTF8(t *testing.T) {
	in := "a\xff*b"
	if got := EscapeString(in); got != "a\xff\\*b" {
		t.Fatalf("EscapeString(invalid) = %q", got)
	}
}

func TestEscapeNoUnescapedPolicyCharacters(t *testing.T) {
	inputs := []string{
		`\*already escaped\*`,
		`\\*`,
		"**__~~||``>>>##--++!!..(())",
		"mixed \\ text * with _ all ~ the | chars ` > # - + ! . ( )",
		strings.Repeat(`\`, 7) + "*",
	}
	for _, policy := range []Policy{ExtendedPolicy, MinimalPolicy} {
		f := New(WithPolicy(policy))
		for _, in := range inputs {
			out := f.EscapeString(in)
			if len(out) < len(in) {
				t.Fatalf("%s: output shorter than input for %q", policy.Name(), in)
			}
			assertFullyEscaped(t, policy, in, out)
		}
	}
}

// assertFullyEscaped walks out and checks every policy character is
// consumed by an escaping backslash. Under the minimal policy backslashes
// from the input are literal, so the walk tracks which ones were inserted.
func assertFullyEscaped(t *testing.T, policy Policy, in, out string) {
	t.Helper()
	inRunes := []rune(in)
	outRunes := []rune(out)
	j := 0
	for _, r := range inRunes {
		if policy.Contains(r) {
			if j+1 >= len(outRunes) || outRunes[j] != '\\' || outRunes[j+1] != r {
				t.Fatalf("%s: %q not escaped at rune %d of %q", policy.Name(), r, j, out)
			}
			j += 2
			continue
		}
		if j >= len(outRunes) || outRunes[j] != r {
			t.Fatalf("%s: unexpected rune at %d of %q", policy.Name(), j, out)
		}
		j++
	}
	if j != len(outRunes) {
		t.Fatalf("%s: trailing output in %q", policy.Name(), out)
	}
}

func TestNewPolicyDeduplicates(t *testing.T) {
	p := NewPolicy("custom", "**é§é")
	if p.Chars() != "*é§" {
		t.Fatalf("Chars() = %q", p.Chars())
	}
	if !p.Contains('é') || !p.Contains('*') || p.Contains('_') {
		t.Fatalf("unexpected membership for %q", p.Chars())
	}
	if got := p.Escape("é*_"); got != `\é\*_` {
		t.Fatalf("custom escape = %q", got)
	}
}

func TestZeroPolicyEscapesNothing(t *testing.T) {
	f := New(WithPolicy(Policy{}))
	if got := f.Bold("*x*"); got != "***x***" {
		t.Fatalf("zero policy bold = %q", got)
	}
}
