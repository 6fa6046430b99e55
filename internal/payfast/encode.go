package payfast

import (
	"strings"
	"unicode"
)

const upperhex = "0123456789ABCDEF"

// uriComponentSafe reports whether encodeURIComponent-style escaping
// leaves b as-is. The gateway's reference implementation builds its
// signature strings with encodeURIComponent, whose unreserved set
// (alphanumerics plus -_.!~*'()) differs from RFC 3986 form encoding.
func uriComponentSafe(b byte) bool {
	if 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' {
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// percentEncode escapes s the way encodeURIComponent does: every byte
// outside the unreserved set becomes %XX with uppercase hex.
func percentEncode(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if uriComponentSafe(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0x0f])
	}
	return sb.String()
}

// encodeValue produces the gateway's expected form of a field value:
// whitespace is collapsed to literal '+' before percent-encoding, then
// the '+' runes the encoder turned into %2B are restored. Spaces and
// genuine plus characters both come out as '+'. This two-pass rule is
// what the gateway hashes over; it is not standard form encoding.
func encodeValue(s string) string {
	plussed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '+'
		}
		return r
	}, s)

	return strings.ReplaceAll(percentEncode(plussed), "%2B", "+")
}
