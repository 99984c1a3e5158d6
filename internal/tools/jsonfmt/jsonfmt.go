// Package jsonfmt pretty-prints and minifies JSON documents without
// reordering keys or rewriting numbers.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const indent = "  "

// SyntaxError reports why a document could not be formatted
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Invalid JSON: %s (at offset %d)", e.Msg, e.Offset)
}

func prepare(input string) ([]byte, error) {
	src := bytes.TrimSpace([]byte(input))

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, toSyntaxError(err, int64(len(src)))
	}

	var extra interface{}
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &SyntaxError{Offset: dec.InputOffset(), Msg: "unexpected data after top-level value"}
	}
	return src, nil
}

func toSyntaxError(err error, size int64) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset, Msg: se.Error()}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: size, Msg: "unexpected end of JSON input"}
	}
	return &SyntaxError{Offset: size, Msg: err.Error()}
}

// Pretty validates input and re-indents it with two spaces per level
func Pretty(input string) (string, error) {
	src, err := prepare(input)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", indent); err != nil {
		return "", toSyntaxError(err, int64(len(src)))
	}
	return out.String(), nil
}

// Minify validates input and strips insignificant whitespace
func Minify(input string) (string, error) {
	src, err := prepare(input)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Compact(&out, src); err != nil {
		return "", toSyntaxError(err, int64(len(src)))
	}
	return out.String(), nil
}
