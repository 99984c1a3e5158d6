package commands

import (
	"time"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/tools/encoding"
)

const (
	msgEncodeFailed = "Error: Invalid input for encoding"
	msgBadBase64    = "Error: Invalid Base64 string"
	msgBadURL       = "Error: Invalid URL-encoded string"
)

// EncodeBase64 encodes text as Base64
func (c *Commands) EncodeBase64(text string) Result {
	defer c.traced("encode_base64", time.Now(), len(text))

	out, err := encoding.EncodeBase64(text)
	if err != nil {
		return c.fail("encode_base64", apperrors.HandleValidationError("encode_base64", "text", "", err.Error()), msgEncodeFailed)
	}
	return Result{Output: out}
}

// DecodeBase64 decodes Base64 text
func (c *Commands) DecodeBase64(text string) Result {
	defer c.traced("decode_base64", time.Now(), len(text))

	out, err := encoding.DecodeBase64(text)
	if err != nil {
		return c.fail("decode_base64", apperrors.HandleDecodeError("decode_base64", "base64", err), msgBadBase64)
	}
	return Result{Output: out}
}

// EncodeURIComponent encodes a single URL component
func (c *Commands) EncodeURIComponent(text string) Result {
	defer c.traced("encode_uri_component", time.Now(), len(text))

	out, err := encoding.EncodeURIComponent(text)
	if err != nil {
		return c.fail("encode_uri_component", apperrors.HandleValidationError("encode_uri_component", "text", "", err.Error()), msgEncodeFailed)
	}
	return Result{Output: out}
}

// EncodeURI encodes a full URI and keeps its delimiters
func (c *Commands) EncodeURI(text string) Result {
	defer c.traced("encode_uri", time.Now(), len(text))

	out, err := encoding.EncodeURI(text)
	if err != nil {
		return c.fail("encode_uri", apperrors.HandleValidationError("encode_uri", "text", "", err.Error()), msgEncodeFailed)
	}
	return Result{Output: out}
}

// DecodeURIComponent decodes percent escapes
func (c *Commands) DecodeURIComponent(text string) Result {
	defer c.traced("decode_uri_component", time.Now(), len(text))

	out, err := encoding.DecodeURIComponent(text)
	if err != nil {
		return c.fail("decode_uri_component", apperrors.HandleDecodeError("decode_uri_component", "url", err), msgBadURL)
	}
	return Result{Output: out}
}
