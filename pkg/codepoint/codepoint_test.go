package codepoint

import (
	"errors"
	"reflect"
	"testing"
)

func TestOrd(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		lower    bool
		noPrefix bool
		want     []string
	}{
		{
			name:  "ascii default",
			input: "AB",
			want:  []string{"0x41", "0x42"},
		},
		{
			name:  "multibyte",
			input: "あ🍣",
			want:  []string{"0x3042", "0x1F363"},
		},
		{
			name:  "lowercase",
			input: "🍣",
			lower: true,
			want:  []string{"0x1f363"},
		},
		{
			name:     "no prefix",
			input:    "🍣",
			noPrefix: true,
			want:     []string{"1F363"},
		},
		{
			name:     "lower and no prefix",
			input:    "A🍣",
			lower:    true,
			noPrefix: true,
			want:     []string{"41", "1f363"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Ord(tc.input, tc.lower, tc.noPrefix)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Ord(%q, %v, %v) = %v, want %v", tc.input, tc.lower, tc.noPrefix, got, tc.want)
			}
		})
	}
}

func TestChr(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "prefixed", tokens: []string{"0x41", "0x42"}, want: "AB"},
		{name: "bare", tokens: []string{"3042"}, want: "あ"},
		{name: "uppercase prefix", tokens: []string{"0X1F363"}, want: "🍣"},
		{name: "mixed case digits", tokens: []string{"0x1f363", "0x1F363"}, want: "🍣🍣"},
		{name: "max codepoint", tokens: []string{"0x10FFFF"}, want: "\U0010FFFF"},
		{name: "empty list", tokens: nil, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Chr(tc.tokens)
			if err != nil {
				t.Fatalf("Chr(%v) failed: %v", tc.tokens, err)
			}
			if got != tc.want {
				t.Errorf("Chr(%v) = %q, want %q", tc.tokens, got, tc.want)
			}
		})
	}
}

func TestChr_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		want   error
	}{
		{name: "not hex", tokens: []string{"zz"}, want: ErrInvalidHex},
		{name: "empty token", tokens: []string{""}, want: ErrInvalidHex},
		{name: "prefix only", tokens: []string{"0x"}, want: ErrInvalidHex},
		{name: "negative-looking token", tokens: []string{"-41"}, want: ErrInvalidHex},
		{name: "beyond max", tokens: []string{"0x110000"}, want: ErrInvalidCodepoint},
		{name: "uint64 overflow", tokens: []string{"0xFFFFFFFFFFFFFFFFFF"}, want: ErrInvalidCodepoint},
		{name: "high surrogate", tokens: []string{"0xD800"}, want: ErrInvalidCodepoint},
		{name: "low surrogate", tokens: []string{"DFFF"}, want: ErrInvalidCodepoint},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Chr(tc.tokens)
			if !errors.Is(err, tc.want) {
				t.Errorf("Chr(%v) error = %v, want %v", tc.tokens, err, tc.want)
			}
		})
	}
}

func TestChr_FailFast(t *testing.T) {
	// A failing token aborts the whole call: no partial output.
	out, err := Chr([]string{"0x41", "0x42", "bogus", "0x43"})
	if !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("error = %v, want ErrInvalidHex", err)
	}
	if out != "" {
		t.Errorf("partial output %q returned alongside error", out)
	}
}

func TestOrdChr_RoundTrip(t *testing.T) {
	inputs := []string{"hello", "あいうえお", "🍣🍺", "a🎯b", ""}

	for _, in := range inputs {
		for _, lower := range []bool{false, true} {
			for _, noPrefix := range []bool{false, true} {
				tokens := Ord(in, lower, noPrefix)
				got, err := Chr(tokens)
				if err != nil {
					t.Fatalf("Chr(Ord(%q)) failed: %v", in, err)
				}
				if got != in {
					t.Errorf("Chr(Ord(%q, %v, %v)) = %q", in, lower, noPrefix, got)
				}
			}
		}
	}
}
