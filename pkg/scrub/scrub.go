// Package scrub performs lossy UTF-8 recovery: invalid or truncated
// byte sequences become U+FFFD replacement characters.
//
// Substitution follows the Unicode "maximal subpart" recommendation
// (the one Rust's from_utf8_lossy and the W3C TextDecoder implement):
// each maximal run of bytes that could still begin a valid sequence is
// replaced by exactly one U+FFFD, so a truncated three-byte sequence
// yields one replacement while two independently invalid bytes yield
// two. The stdlib utf8.DecodeRune replaces byte-by-byte and cannot be
// used for the invalid path.
//
// Input can be raw bytes or hex text in any of the hexcodec surface
// formats; hex structural errors (odd length, bad digit) still fail
// fast, but malformed UTF-8 content never does.
package scrub

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mojibox/mojibox/pkg/hexcodec"
)

// ErrUnknownSourceFormat indicates an unrecognized source format name.
var ErrUnknownSourceFormat = errors.New("unknown source format")

// SourceFormat tells Scrub how to obtain the bytes to scrub.
type SourceFormat int

const (
	// SourceBinary treats the input's raw bytes as the data.
	SourceBinary SourceFormat = iota
	// SourceHex decodes the input as hex text first, using the
	// hexcodec cleaning rules but without its strict UTF-8 check.
	SourceHex
)

// ParseSourceFormat maps a source format name to a SourceFormat.
func ParseSourceFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(name) {
	case "binary", "":
		return SourceBinary, nil
	case "hex":
		return SourceHex, nil
	}
	return SourceBinary, fmt.Errorf("%w: %q", ErrUnknownSourceFormat, name)
}

// String returns the format name accepted by ParseSourceFormat.
func (f SourceFormat) String() string {
	if f == SourceHex {
		return "hex"
	}
	return "binary"
}

// Scrub decodes input into text, replacing every invalid UTF-8 subpart
// with one U+FFFD. The only possible errors are the hex pre-decode
// failures of SourceHex; scrubbing itself is total and idempotent.
func Scrub(input string, format SourceFormat) (string, error) {
	var data []byte
	switch format {
	case SourceHex:
		decoded, err := hexcodec.DecodeBytes(input)
		if err != nil {
			return "", err
		}
		data = decoded
	default:
		data = []byte(input)
	}
	return Bytes(data), nil
}

// Bytes scrubs a raw byte sequence. Output is always valid UTF-8.
func Bytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r != utf8.RuneError || size > 1 {
			// A maximal valid sequence (possibly a literal U+FFFD,
			// which decodes with size 3): emit verbatim.
			b.Write(data[i : i+size])
			i += size
			continue
		}
		b.WriteRune(utf8.RuneError)
		i += invalidLen(data[i:])
	}
	return b.String()
}

// invalidLen returns the length of the maximal subpart starting at
// data[0], which is known not to begin a complete valid sequence. The
// result is at least 1: an invalid lead byte is consumed alone, while a
// valid lead byte drags along the continuation bytes that stay inside
// its admissible ranges (RFC 3629 table, including the tightened second
// byte for E0, ED, F0 and F4).
func invalidLen(data []byte) int {
	lead := data[0]

	var need int
	var lo, hi byte
	switch {
	case lead < 0xC2: // continuation byte or overlong lead C0/C1
		return 1
	case lead <= 0xDF:
		need, lo, hi = 1, 0x80, 0xBF
	case lead == 0xE0:
		need, lo, hi = 2, 0xA0, 0xBF
	case lead <= 0xEC:
		need, lo, hi = 2, 0x80, 0xBF
	case lead == 0xED: // surrogates
		need, lo, hi = 2, 0x80, 0x9F
	case lead <= 0xEF:
		need, lo, hi = 2, 0x80, 0xBF
	case lead == 0xF0:
		need, lo, hi = 3, 0x90, 0xBF
	case lead <= 0xF3:
		need, lo, hi = 3, 0x80, 0xBF
	case lead == 0xF4:
		need, lo, hi = 3, 0x80, 0x8F
	default: // F5..FF can never start a sequence
		return 1
	}

	n := 1
	for ; n <= need && n < len(data); n++ {
		c := data[n]
		if c < lo || c > hi {
			break
		}
		// Only the first continuation byte has a tightened range.
		lo, hi = 0x80, 0xBF
	}
	return n
}
