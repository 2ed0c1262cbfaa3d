package chatfmt

import (
	"fmt"
	"strings"
)

// GuildNavigation is an in-client destination reachable with a navigation
// link.
type GuildNavigation string

const (
	Customize   GuildNavigation = "customize"
	Browse      GuildNavigation = "browse"
	Guide       GuildNavigation = "guide"
	LinkedRoles GuildNavigation = "linked-roles"
)

var guildNavigations = []GuildNavigation{Customize, Browse, Guide, LinkedRoles}

// GuildNavigations returns every valid navigation target.
func GuildNavigations() []GuildNavigation {
	return append([]GuildNavigation(nil), guildNavigations...)
}

// Valid reports whether g is one of the known targets.
func (g GuildNavigation) Valid() bool {
	switch g {
	case Customize, Browse, Guide, LinkedRoles:
		return true
	}
	return false
}

func (g GuildNavigation) String() string { return string(g) }

// ParseGuildNavigation returns the target named s, ignoring case and
// surrounding space.
func ParseGuildNavigation(s string) (GuildNavigation, error) {
	g := GuildNavigation(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", invalidGuildNavigation(s)
	}
	return g, nil
}

// GuildNavigationLink returns <id:target>. Targets outside the known set
// are rejected with a *ValidationError.
func GuildNavigationLink(to GuildNavigation) (string, error) {
	if !to.Valid() {
		return "", invalidGuildNavigation(string(to))
	}
	return "<id:" + string(to) + ">", nil
}

func invalidGuildNavigation(value string) error {
	return &ValidationError{
		Field:  "guild navigation",
		Value:  value,
		Reason: fmt.Sprintf("expected one of %v", guildNavigations),
	}
}
