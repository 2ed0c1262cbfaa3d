package chatfmt

import "testing"

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"extended", "minimal", " MINIMAL ", ""} {
		if _, ok := PolicyByName(name); !ok {
			t.Fatalf("expected policy %q to be available", name)
		}
	}
	if p, _ := PolicyByName(""); p.Name() != DefaultPolicy().Name() {
		t.Fatalf("empty name selected %q", p.Name())
	}
	if _, ok := PolicyByName("strict"); ok {
		t.Fatalf("unexpected policy %q", "strict")
	}

	available := AvailablePolicies()
	if len(available) != 2 || available[0] != "extended" || available[1] != "minimal" {
		t.Fatalf("unexpected policies %v", available)
	}
}

func TestPolicyCharacterSets(t *testing.T) {
	if got := MinimalPolicy.Chars(); got != "*_~" {
		t.Fatalf("minimal chars = %q", got)
	}
	want := "*_~|\\`>#-+!.()"
	if got := ExtendedPolicy.Chars(); got != want {
		t.Fatalf("extended chars = %q, want %q", got, want)
	}
	for _, r := range want {
		if !ExtendedPolicy.Contains(r) {
			t.Fatalf("extended policy missing %q", r)
		}
	}
	for _, r := range "[]<=@:" {
		if ExtendedPolicy.Contains(r) {
			t.Fatalf("extended policy unexpectedly contains %q", r)
		}
	}
}
