package chatfmt

import (
	"errors"
	"testing"
)

func TestGuildNavigationLink(t *testing.T) {
	cases := map[GuildNavigation]string{
		Customize:   "<id:customize>",
		Browse:      "<id:browse>",
		Guide:       "<id:guide>",
		LinkedRoles: "<id:linked-roles>",
	}
	for target, want := range cases {
		got, err := GuildNavigationLink(target)
		if err != nil {
			t.Fatalf("GuildNavigationLink(%q): %v", target, err)
		}
		if got != want {
			t.Fatalf("GuildNavigationLink(%q) = %q, want %q", target, got, want)
		}
	}
	if got, err := GuildNavigationLink("browse"); err != nil || got != "<id:browse>" {
		t.Fatalf("GuildNavigationLink(\"browse\") = %q, %v", got, err)
	}
}

func TestGuildNavigationLinkRejectsUnknown(t *testing.T) {
	for _, target := range []GuildNavigation{"invalid", "", "Browse", "linked_roles"} {
		got, err := GuildNavigationLink(target)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("GuildNavigationLink(%q): expected ErrValidation, got %v", target, err)
		}
		if got != "" {
			t.Fatalf("GuildNavigationLink(%q): expected no output, got %q", target, got)
		}
	}
}

func TestParseGuildNavigation(t *testing.T) {
	got, err := ParseGuildNavigation(" Linked-Roles ")
	if err != nil || got != LinkedRoles {
		t.Fatalf("ParseGuildNavigation = %q, %v", got, err)
	}
	if _, err := ParseGuildNavigation("home"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	all := GuildNavigations()
	if len(all) != 4 {
		t.Fatalf("expected 4 targets, got %v", all)
	}
	all[0] = "mutated"
	if GuildNavigations()[0] != Customize {
		t.Fatalf("GuildNavigations exposed internal state")
	}
}
