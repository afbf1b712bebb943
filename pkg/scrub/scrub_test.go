package scrub

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mojibox/mojibox/pkg/hexcodec"
)

const fffd = "�"

func TestScrub_Binary(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "valid ascii", input: []byte("hello"), want: "hello"},
		{name: "valid multibyte", input: []byte("あ🍣"), want: "あ🍣"},
		{name: "empty", input: nil, want: ""},
		{
			name:  "bare continuation byte",
			input: []byte{0x80},
			want:  fffd,
		},
		{
			name:  "two overlong bytes replaced separately",
			input: []byte{0xC0, 0x80},
			want:  fffd + fffd,
		},
		{
			name:  "truncated three-byte sequence is one subpart",
			input: []byte{0xE3, 0x81},
			want:  fffd,
		},
		{
			name:  "truncated four-byte sequence is one subpart",
			input: []byte{0xF0, 0x9F, 0x8D},
			want:  fffd,
		},
		{
			name:  "invalid byte between valid text",
			input: []byte{'a', 0xFF, 'b'},
			want:  "a" + fffd + "b",
		},
		{
			name:  "surrogate encoding replaced per subpart",
			input: []byte{0xED, 0xA0, 0x80}, // would be U+D800
			want:  fffd + fffd + fffd,
		},
		{
			name:  "overlong four-byte lead",
			input: []byte{0xF0, 0x80, 0x80},
			want:  fffd + fffd + fffd,
		},
		{
			name:  "truncation at end of buffer",
			input: append([]byte("ok"), 0xE3),
			want:  "ok" + fffd,
		},
		{
			name:  "literal replacement character survives",
			input: []byte(fffd),
			want:  fffd,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Scrub(string(tc.input), SourceBinary)
			if err != nil {
				t.Fatalf("Scrub failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Scrub(%x) = %q, want %q", tc.input, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Scrub output %q is not valid UTF-8", got)
			}
		})
	}
}

func TestScrub_Hex(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid text", input: "F09F8DA3", want: "🍣"},
		{name: "spaced form", input: "F0 9F 8D A3", want: "🍣"},
		{name: "escaped form", input: `\xF0\x9F\x8D\xA3`, want: "🍣"},
		{name: "overlong pair", input: "C080", want: fffd + fffd},
		{name: "truncated sequence", input: "E381", want: fffd},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Scrub(tc.input, SourceHex)
			if err != nil {
				t.Fatalf("Scrub failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Scrub(%q, Hex) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestScrub_HexStructuralErrors(t *testing.T) {
	if _, err := Scrub("F0F", SourceHex); !errors.Is(err, hexcodec.ErrOddLength) {
		t.Errorf("odd-length error = %v, want ErrOddLength", err)
	}
	if _, err := Scrub("F0ZZ", SourceHex); !errors.Is(err, hexcodec.ErrInvalidHexDigit) {
		t.Errorf("bad-digit error = %v, want ErrInvalidHexDigit", err)
	}
}

func TestScrub_Idempotent(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain"),
		{0xC0, 0x80, 'a', 0xE3, 0x81, 0xF4, 0x90, 0x80, 0x80},
		[]byte(strings.Repeat("あ", 10) + string([]byte{0xFF})),
		{0x80, 0x80, 0x80},
	}

	for _, in := range inputs {
		once := Bytes(in)
		twice := Bytes([]byte(once))
		if once != twice {
			t.Errorf("scrub not idempotent for %x: %q != %q", in, once, twice)
		}
	}
}
