package escape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnknownFormat indicates an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown escape format")

// Format selects the escape notation produced by Escape.
type Format int

const (
	// FormatDefault emits one \u{HEX} token per codepoint, uppercase,
	// no leading zeros.
	FormatDefault Format = iota
	// FormatJSON emits fixed 4-digit \uHHHH tokens, using UTF-16
	// surrogate pairs for codepoints above U+FFFF.
	FormatJSON
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "default", "":
		return FormatDefault, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatDefault, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "default"
}

const (
	surrHighStart = 0xD800
	surrHighEnd   = 0xDBFF
	surrLowStart  = 0xDC00
	surrLowEnd    = 0xDFFF
	surrSelf      = 0x10000
	maxCodepoint  = 0x10FFFF
)

func isHighSurrogate(u uint32) bool { return u >= surrHighStart && u <= surrHighEnd }
func isLowSurrogate(u uint32) bool  { return u >= surrLowStart && u <= surrLowEnd }

// Escape renders every codepoint of text as a backslash escape token in
// the given format. Tokens are concatenated without separators. Never
// fails; empty input yields an empty string.
func Escape(text string, format Format) string {
	var b strings.Builder
	for _, r := range text {
		if format == FormatJSON {
			if r >= surrSelf {
				adjusted := uint32(r) - surrSelf
				high := surrHighStart + (adjusted >> 10)
				low := surrLowStart + (adjusted & 0x3FF)
				fmt.Fprintf(&b, `\u%04X\u%04X`, high, low)
			} else {
				fmt.Fprintf(&b, `\u%04X`, r)
			}
			continue
		}
		fmt.Fprintf(&b, `\u{%X}`, r)
	}
	return b.String()
}

// Unescape decodes backslash escape tokens back to text. The function is
// total: malformed tokens become U+FFFD replacement characters and the
// scan always advances, so a result is returned for arbitrary input.
// Both notations are recognized, mixed freely with literal text.
func Unescape(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], `\u{`) {
			end := strings.IndexByte(text[i+3:], '}')
			if end < 0 {
				// Unterminated token: the whole remainder collapses
				// into a single replacement character.
				b.WriteRune(utf8.RuneError)
				break
			}
			if r, ok := parseBraced(text[i+3 : i+3+end]); ok {
				b.WriteRune(r)
			} else {
				b.WriteRune(utf8.RuneError)
			}
			i += 3 + end + 1
			continue
		}

		if strings.HasPrefix(text[i:], `\u`) {
			unit, ok := parseUnit(text[i+2:])
			if !ok {
				// Fewer than 4 hex digits after the marker: one
				// replacement, resume at the first non-hex character.
				b.WriteRune(utf8.RuneError)
				i += 2 + countHex(text[i+2:], 4)
				continue
			}
			i += 6

			switch {
			case isHighSurrogate(unit):
				next, okNext := uint32(0), false
				if strings.HasPrefix(text[i:], `\u`) {
					next, okNext = parseUnit(text[i+2:])
				}
				switch {
				case !okNext:
					// No complete second token: the high surrogate
					// alone becomes one replacement.
					b.WriteRune(utf8.RuneError)
				case isLowSurrogate(next):
					cp := surrSelf + ((unit - surrHighStart) << 10) + (next - surrLowStart)
					b.WriteRune(rune(cp))
					i += 6
				default:
					// Complete second token that is not a low
					// surrogate: one replacement each, both consumed.
					b.WriteRune(utf8.RuneError)
					b.WriteRune(utf8.RuneError)
					i += 6
				}
			case isLowSurrogate(unit):
				b.WriteRune(utf8.RuneError)
			default:
				b.WriteRune(rune(unit))
			}
			continue
		}

		r, w := utf8.DecodeRuneInString(text[i:])
		b.WriteRune(r)
		i += w
	}
	return b.String()
}

// parseBraced interprets the contents of a \u{...} token. It reports
// false for empty bodies, non-hex bodies, values beyond U+10FFFF, and
// lone surrogate values.
func parseBraced(body string) (rune, bool) {
	if body == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(body, 16, 64)
	if err != nil {
		return 0, false
	}
	if v > maxCodepoint || isHighSurrogate(uint32(v)) || isLowSurrogate(uint32(v)) {
		return 0, false
	}
	return rune(v), true
}

// parseUnit reads exactly 4 hex digits as a UTF-16 code unit. It reports
// false when fewer than 4 hex digits are available.
func parseUnit(s string) (uint32, bool) {
	if countHex(s, 4) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// countHex counts leading ASCII hex digits in s, up to max.
func countHex(s string, max int) int {
	n := 0
	for n < len(s) && n < max && isHexDigit(s[n]) {
		n++
	}
	return n
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
