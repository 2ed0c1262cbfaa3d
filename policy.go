package chatfmt

import (
	"sort"
	"strings"
)

var (
	// ExtendedPolicy escapes emphasis markers together with the block and
	// inline syntax the chat dialect recognizes: spoiler bars, backslash,
	// code fences, quotes, headers, list bullets and list punctuation.
	ExtendedPolicy = NewPolicy("extended", extendedChars)
	// MinimalPolicy escapes emphasis markers only. It leaves headers, lists,
	// quotes and code open to injection and exists for callers that depend
	// on the older output.
	MinimalPolicy = NewPolicy("minimal", minimalChars)
)

var builtinPolicies = map[string]Policy{
	"extended": ExtendedPolicy,
	"minimal":  MinimalPolicy,
}

// AvailablePolicies returns the names of built-in policies.
func AvailablePolicies() []string {
	names := make([]string, 0, len(builtinPolicies))
	for name := range builtinPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PolicyByName returns a built-in policy by name. An empty name selects the
// default policy.
func PolicyByName(name string) (Policy, bool) {
	if name == "" {
		return DefaultPolicy(), true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	policy, ok := builtinPolicies[normalized]
	return policy, ok
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return ExtendedPolicy
}
