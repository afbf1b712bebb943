package hexcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrOddLength indicates the cleaned hex digit string has odd length.
	ErrOddLength = errors.New("odd-length hex input")

	// ErrInvalidHexDigit indicates a byte pair contains a non-hex character.
	ErrInvalidHexDigit = errors.New("invalid hex digit")

	// ErrInvalidUTF8 indicates the decoded bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("unknown hex format")
)

// Format selects the hex surface shape produced by Encode.
type Format int

const (
	// FormatDefault renders contiguous digit pairs: F09F8DA3
	FormatDefault Format = iota
	// FormatSpaced renders space-separated digit pairs: F0 9F 8D A3
	FormatSpaced
	// FormatEscaped renders \x-prefixed digit pairs: \xF0\x9F\x8D\xA3
	FormatEscaped
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "default", "":
		return FormatDefault, nil
	case "spaced":
		return FormatSpaced, nil
	case "escaped":
		return FormatEscaped, nil
	}
	return FormatDefault, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatSpaced:
		return "spaced"
	case FormatEscaped:
		return "escaped"
	default:
		return "default"
	}
}

const (
	hexUpper = "0123456789ABCDEF"
	hexLower = "0123456789abcdef"
)

// Encode renders every byte of data as two hex digits joined according to
// format. Empty input yields an empty string.
func Encode(data []byte, lower bool, format Format) string {
	digits := hexUpper
	if lower {
		digits = hexLower
	}

	var b strings.Builder
	switch format {
	case FormatSpaced:
		b.Grow(len(data) * 3)
	case FormatEscaped:
		b.Grow(len(data) * 4)
	default:
		b.Grow(len(data) * 2)
	}

	for i, c := range data {
		switch format {
		case FormatSpaced:
			if i > 0 {
				b.WriteByte(' ')
			}
		case FormatEscaped:
			b.WriteString(`\x`)
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0F])
	}
	return b.String()
}

// Decode converts hex text in any of the three surface formats back to
// the UTF-8 text it encodes. The format is detected from the input's
// shape. The decoded bytes must form valid UTF-8; no replacement
// characters are ever substituted.
func Decode(text string) (string, error) {
	data, err := DecodeBytes(text)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoded bytes: %w", ErrInvalidUTF8)
	}
	return string(data), nil
}

// DecodeBytes converts hex text in any of the three surface formats to
// the raw bytes it encodes, without requiring those bytes to be valid
// UTF-8. The scrub package uses this as the pre-decode step for its hex
// source format.
func DecodeBytes(text string) ([]byte, error) {
	cleaned := stripFormat(text)
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%d hex digits: %w", len(cleaned), ErrOddLength)
	}

	data := make([]byte, 0, len(cleaned)/2)
	for i := 0; i < len(cleaned); i += 2 {
		hi, ok1 := hexVal(cleaned[i])
		lo, ok2 := hexVal(cleaned[i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("pair %q at digit %d: %w", cleaned[i:i+2], i, ErrInvalidHexDigit)
		}
		data = append(data, hi<<4|lo)
	}
	return data, nil
}

// stripFormat detects the surface format by shape and removes its
// markers, leaving a bare digit string (possibly with junk characters,
// which the pair decoder rejects).
func stripFormat(text string) string {
	switch {
	case strings.HasPrefix(text, `\x`):
		return strings.ReplaceAll(text, `\x`, "")
	case strings.Contains(text, " "):
		return strings.ReplaceAll(text, " ", "")
	default:
		return text
	}
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
