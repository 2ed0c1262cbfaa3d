package chatfmt

import (
	"math/big"
	"strconv"
)

// ID is a snowflake identifier given as a decimal string, a uint64 or an
// arbitrary-precision integer. Strings are used as-is and must already be
// plain decimal digits.
type ID interface {
	string | uint64 | *big.Int
}

// IDString normalizes id to its decimal form. A nil *big.Int yields "".
func IDString[T ID](id T) string {
	switch v := any(id).(type) {
	case string:
		return v
	case uint64:
		return strconv.FormatUint(v, 10)
	case *big.Int:
		if v == nil {
			return ""
		}
		return v.String()
	}
	return ""
}

// User returns a user mention, <@id>.
func User[T ID](id T) string {
	return "<@" + IDString(id) + ">"
}

// Channel returns a channel mention, <#id>.
func Channel[T ID](id T) string {
	return "<#" + IDString(id) + ">"
}

// Role returns a role mention, <@&id>.
func Role[T ID](id T) string {
	return "<@&" + IDString(id) + ">"
}

// Emoji returns a custom emoji. Neither name nor id is escaped.
func Emoji[T ID](name string, id T, animated bool) string {
	prefix := "<:"
	if animated {
		prefix = "<a:"
	}
	return prefix + name + ":" + IDString(id) + ">"
}

// Email wraps address to suppress auto-linking. It is not escaped.
func Email(address string) string {
	return "<" + address + ">"
}

// Phone wraps number to suppress auto-linking. It is not escaped.
func Phone(number string) string {
	return "<+" + number + ">"
}
