package chatfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampStyle selects how a client renders a timestamp.
type TimestampStyle string

const (
	// ShortTime renders like "4:20 PM".
	ShortTime TimestampStyle = "t"
	// LongTime renders like "4:20:30 PM".
	LongTime TimestampStyle = "T"
	// ShortDate renders like "20/04/2021".
	ShortDate TimestampStyle = "d"
	// LongDate renders like "20 April 2021".
	LongDate TimestampStyle = "D"
	// ShortDateTime renders like "20 April 2021 4:20 PM". It is the default.
	ShortDateTime TimestampStyle = "f"
	// LongDateTime renders like "Tuesday, 20 April 2021 4:20 PM".
	LongDateTime TimestampStyle = "F"
	// RelativeTime renders like "2 months ago".
	RelativeTime TimestampStyle = "R"
)

var timestampStyleNames = map[string]TimestampStyle{
	"short-time":      ShortTime,
	"long-time":       LongTime,
	"short-date":      ShortDate,
	"long-date":       LongDate,
	"short-date-time": ShortDateTime,
	"long-date-time":  LongDateTime,
	"relative-time":   RelativeTime,
	"relative":        RelativeTime,
}

var timestampStyles = []TimestampStyle{ShortTime, LongTime, ShortDate, LongDate, ShortDateTime, LongDateTime, RelativeTime}

// TimestampStyles returns every valid style in declaration order.
func TimestampStyles() []TimestampStyle {
	return append([]TimestampStyle(nil), timestampStyles...)
}

// Valid reports whether s is one of the seven style codes.
func (s TimestampStyle) Valid() bool {
	switch s {
	case ShortTime, LongTime, ShortDate, LongDate, ShortDateTime, LongDateTime, RelativeTime:
		return true
	}
	return false
}

func (s TimestampStyle) String() string { return string(s) }

// ParseTimestampStyle accepts a style code ("R") or a long name
// ("relative-time"). Codes are case sensitive, names are not.
func ParseTimestampStyle(s string) (TimestampStyle, error) {
	trimmed := strings.TrimSpace(s)
	if style := TimestampStyle(trimmed); style.Valid() {
		return style, nil
	}
	if style, ok := timestampStyleNames[strings.ToLower(trimmed)]; ok {
		return style, nil
	}
	return "", invalidTimestampStyle(s)
}

// Timestamp returns <t:epoch:style> for a Unix epoch in seconds. The style
// defaults to ShortDateTime; an unknown style is rejected with a
// *ValidationError.
func Timestamp(epoch string, style ...TimestampStyle) (string, error) {
	s := ShortDateTime
	if len(style) > 0 {
		s = style[0]
	}
	if !s.Valid() {
		return "", invalidTimestampStyle(string(s))
	}
	return "<t:" + epoch + ":" + string(s) + ">", nil
}

// TimestampTime returns a timestamp for t, truncated to whole seconds.
func TimestampTime(t time.Time, style ...TimestampStyle) (string, error) {
	return Timestamp(strconv.FormatInt(t.Unix(), 10), style...)
}

func invalidTimestampStyle(value string) error {
	return &ValidationError{
		Field:  "timestamp style",
		Value:  value,
		Reason: fmt.Sprintf("expected one of %v", timestampStyles),
	}
}
