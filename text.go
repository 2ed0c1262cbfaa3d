package chatfmt

// Bold returns **text**.
func (f *Formatter) Bold(text string) string {
	return "**" + f.EscapeString(text) + "**"
}

// Italic returns *text*.
func (f *Formatter) Italic(text string) string {
	return "*" + f.EscapeString(text) + "*"
}

// BoldItalic returns ***text***.
func (f *Formatter) BoldItalic(text string) string {
	return "***" + f.EscapeString(text) + "***"
}

// Strikethrough returns ~~text~~.
func (f *Formatter) Strikethrough(text string) string {
	return "~~" + f.EscapeString(text) + "~~"
}

// Underline returns __text__.
func (f *Formatter) Underline(text string) string {
	return "__" + f.EscapeString(text) + "__"
}

// Spoiler returns ||text||.
func (f *Formatter) Spoiler(text string) string {
	return "||" + f.EscapeString(text) + "||"
}

// Code returns text as inline code.
func (f *Formatter) Code(text string) string {
	return "`" + f.EscapeString(text) + "`"
}

// Link returns a masked link. The URL is inserted verbatim.
func (f *Formatter) Link(text, url string) string {
	return "[" + f.EscapeString(text) + "](" + url + ")"
}

// NoEmbedLink wraps url so the client does not render an embed preview.
func NoEmbedLink(url string) string {
	return "<" + url + ">"
}

// Bold formats text with the extended policy.
func Bold(text string) string { return std.Bold(text) }

// Italic formats text with the extended policy.
func Italic(text string) string { return std.Italic(text) }

// BoldItalic formats text with the extended policy.
func BoldItalic(text string) string { return std.BoldItalic(text) }

// Strikethrough formats text with the extended policy.
func Strikethrough(text string) string { return std.Strikethrough(text) }

// Underline formats text with the extended policy.
func Underline(text string) string { return std.Underline(text) }

// Spoiler hides text behind a spoiler using the extended policy.
func Spoiler(text string) string { return std.Spoiler(text) }

// Code formats inline code with the extended policy.
func Code(text string) string { return std.Code(text) }

// Link formats a masked link with the extended policy.
func Link(text, url string) string { return std.Link(text, url) }
