// Package chatfmt builds chat Markdown fragments from plain text.
//
// Every formatter escapes the free text it is given, so user input cannot
// open or close emphasis, inject a header or list item, or break out of a
// quote or code span. Structural parameters are validated instead: header
// levels, navigation targets and timestamp styles outside their closed sets
// fail with an error wrapping ErrValidation before any output is built.
//
// Core properties:
//   - Escaping is per character, single pass and never idempotent
//   - The escaped character set is a Policy, not a hardcoded pattern
//   - Mentions accept string, uint64 or *big.Int identifiers
//   - No I/O and no shared mutable state
//
// Example:
//
//	msg := chatfmt.Bold("release *v2*") + " by " + chatfmt.User(uint64(80351110224678912))
//	ts, err := chatfmt.Timestamp("1618953600", chatfmt.RelativeTime)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(msg, ts)
//
// The package-level functions use the extended policy. Use New with
// WithPolicy to format with another one.
package chatfmt
