// Package text decodes the variable-width character encoding used by
// Digimon World 2 data files. Strings are sequences of 1- or 2-byte
// character codes terminated by 0xFF; codes map to display tokens
// (letters, punctuation markers, or whole words) via a fixed glyph table.
package text

import (
	"errors"
	"fmt"
	"strings"
)

// Text decoding errors.
var (
	ErrTruncatedData    = errors.New("truncated string data")
	ErrIllegalCharacter = errors.New("illegal character code")
)

const (
	// Terminator ends a string.
	Terminator = 0xFF
	// ExtendedPrefix introduces a two-byte code addressing the word table.
	ExtendedPrefix = 0xF0
)

// DecodeString decodes a terminated string starting at the beginning of
// data. Bytes past the terminator are ignored.
func DecodeString(data []byte) (string, error) {
	s, _, err := DecodeStringLen(data)
	return s, err
}

// DecodeStringLen decodes a terminated string and reports how many bytes
// were consumed, terminator included.
func DecodeStringLen(data []byte) (string, int, error) {
	var sb strings.Builder
	i := 0
	for {
		if i >= len(data) {
			return "", i, fmt.Errorf("%w: reading character", ErrTruncatedData)
		}
		b := data[i]
		i++
		if b == Terminator {
			return sb.String(), i, nil
		}
		code := uint16(b)
		if b == ExtendedPrefix {
			if i >= len(data) {
				return "", i, fmt.Errorf("%w: reading extended character", ErrTruncatedData)
			}
			code = code<<8 | uint16(data[i])
			i++
		}
		token, ok := glyphTable[code]
		if !ok {
			return "", i, fmt.Errorf("%w: 0x%02X", ErrIllegalCharacter, code)
		}
		sb.WriteString(token)
	}
}
