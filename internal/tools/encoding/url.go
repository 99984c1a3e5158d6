package encoding

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidURLEncoding is returned for malformed percent escapes
var ErrInvalidURLEncoding = errors.New("invalid URL-encoded string")

const (
	upperhex = "0123456789ABCDEF"

	componentSafe = "-_.!~*'()"
	uriReserved   = ";,/?:@&=+$#"
)

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func escape(text string, keep string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidInput
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isAlnum(c) || strings.IndexByte(componentSafe, c) >= 0 || strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String(), nil
}

// EncodeURIComponent percent-encodes everything outside the URI unreserved set,
// the way browsers encode a single query value or path segment.
func EncodeURIComponent(text string) (string, error) {
	return escape(text, "")
}

// EncodeURI percent-encodes a full URI, leaving reserved delimiters intact.
func EncodeURI(text string) (string, error) {
	return escape(text, uriReserved)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeURIComponent reverses EncodeURIComponent. '+' is kept literally.
func DecodeURIComponent(text string) (string, error) {
	if strings.IndexByte(text, '%') < 0 {
		return text, nil
	}

	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			out = append(out, text[i])
			continue
		}
		if i+2 >= len(text) {
			return "", fmt.Errorf("%w: truncated escape at offset %d", ErrInvalidURLEncoding, i)
		}
		hi, ok1 := unhex(text[i+1])
		lo, ok2 := unhex(text[i+2])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("%w: bad escape %q at offset %d", ErrInvalidURLEncoding, text[i:i+3], i)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}

	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: escapes do not form UTF-8", ErrInvalidURLEncoding)
	}
	return string(out), nil
}
