// Package encoding implements the Base64 and URL encoder tools.
package encoding

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidBase64 is returned when the input is not decodable Base64 text
	ErrInvalidBase64 = errors.New("invalid base64 string")
	// ErrInvalidInput is returned when the input is not valid UTF-8
	ErrInvalidInput = errors.New("invalid input for encoding")
)

// EncodeBase64 encodes the UTF-8 bytes of text as padded standard Base64
func EncodeBase64(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidInput
	}
	return base64.StdEncoding.EncodeToString([]byte(text)), nil
}

// DecodeBase64 decodes standard Base64 the way browsers do: whitespace is
// ignored and padding is optional, but a length of 1 mod 4 is rejected. The
// decoded bytes must form valid UTF-8 text.
func DecodeBase64(text string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	// padding only counts when it completes a quantum
	if len(compact)%4 == 0 {
		compact = strings.TrimSuffix(strings.TrimSuffix(compact, "="), "=")
	}
	if len(compact)%4 == 1 {
		return "", ErrInvalidBase64
	}

	raw, err := base64.RawStdEncoding.DecodeString(compact)
	if err != nil {
		return "", errors.Join(ErrInvalidBase64, err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidBase64
	}
	return string(raw), nil
}
