// Package codepoint lists the codepoints of a text as hex tokens and
// converts such tokens back to text.
//
// Ord never fails. Chr is fail-fast: the first token that is not valid
// hex (ErrInvalidHex) or does not name a definable character
// (ErrInvalidCodepoint — above U+10FFFF or a lone surrogate) aborts the
// call with no partial result.
package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidHex indicates a token is not parseable as hex.
	ErrInvalidHex = errors.New("invalid hex token")

	// ErrInvalidCodepoint indicates a value above U+10FFFF or a lone
	// surrogate.
	ErrInvalidCodepoint = errors.New("invalid codepoint")
)

// Ord renders each codepoint of text as a hex token, one per codepoint,
// in input order. Tokens carry a 0x prefix unless noPrefix is set and
// use uppercase digits unless lower is set. Empty input yields an empty
// slice.
func Ord(text string, lower, noPrefix bool) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		var token string
		if lower {
			token = strconv.FormatInt(int64(r), 16)
		} else {
			token = strings.ToUpper(strconv.FormatInt(int64(r), 16))
		}
		if !noPrefix {
			token = "0x" + token
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Chr converts hex codepoint tokens to the text they spell. Each token
// may carry an optional 0x or 0X prefix; digits are case-insensitive.
// Processing stops at the first failing token. An empty token list
// yields empty text.
func Chr(tokens []string) (string, error) {
	var b strings.Builder
	for _, token := range tokens {
		r, err := parseToken(token)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func parseToken(token string) (rune, error) {
	body := token
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		body = body[2:]
	}
	if body == "" {
		return 0, fmt.Errorf("token %q: %w", token, ErrInvalidHex)
	}

	v, err := strconv.ParseUint(body, 16, 64)
	if err != nil {
		// A syntactically valid hex run that overflows uint64 is
		// certainly beyond U+10FFFF; report it as such.
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("token %q: %w", token, ErrInvalidCodepoint)
		}
		return 0, fmt.Errorf("token %q: %w", token, ErrInvalidHex)
	}
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, fmt.Errorf("token %q: %w", token, ErrInvalidCodepoint)
	}
	return rune(v), nil
}
