// Package escape converts text to and from backslash Unicode escape
// notation.
//
// Two notations are supported:
//
//	Default:  \u{1F363}        (one variable-width token per codepoint)
//	JSON:     \uD83C\uDF63     (fixed 4-digit UTF-16 units, surrogate
//	                            pairs for codepoints above U+FFFF)
//
// Escape never fails. Unescape is total as well: malformed tokens
// degrade to U+FFFD replacement characters one token at a time instead
// of aborting, so the function tolerates arbitrary pasted input. The
// decoder is a single left-to-right cursor scan with at most one token
// of lookahead (needed to pair surrogates).
//
// One deliberate strictness: a \u{ token with no closing brace swallows
// the entire remainder of the input as a single replacement character.
package escape
