package cursor

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsWhitespace reports whether r is a space, tab, carriage return, or line feed.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func IsAlphanumeric(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}
