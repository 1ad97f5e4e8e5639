package codec

// Is8BitChar returns whether c is outside 7bit ASCII.
func Is8BitChar(c byte) bool {
	return c > HighestASCIIChar
}

// IsUTF8String returns whether s has at least one 8bit character. It looks
// at byte values only, s is not checked for valid UTF-8.
func IsUTF8String(s string) bool {
	for i := 0; i < len(s); i++ {
		if Is8BitChar(s[i]) {
			return true
		}
	}
	return false
}

// CharsetFor returns the charset name to declare for text s: CharsetUTF8 if it
// has 8bit characters, CharsetASCII otherwise.
func CharsetFor(s string) string {
	if IsUTF8String(s) {
		return CharsetUTF8
	}
	return CharsetASCII
}
