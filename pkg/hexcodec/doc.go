// Package hexcodec provides byte-sequence to hexadecimal text conversion
// for mojibox.
//
// The package implements the three concrete hex surface formats accepted
// and produced by the mojibox tool. Encoding never fails; decoding is
// strict and fail-fast.
//
// # Surface Formats
//
// A byte sequence can be rendered in three shapes:
//
//	Default:  F09F8DA3          (contiguous hex digit pairs)
//	Spaced:   F0 9F 8D A3       (one space between byte pairs)
//	Escaped:  \xF0\x9F\x8D\xA3  (each pair prefixed with \x)
//
// Digit case (upper or lower) is an independent rendering option on
// encode. Decoding accepts upper, lower, and mixed case in any of the
// three formats; the format is detected from the shape of the input:
// a leading \x selects Escaped, an embedded space selects Spaced, and
// anything else is treated as Default.
//
// # Error Handling
//
// Decoding fails with ErrOddLength when the cleaned digit string has an
// odd number of digits, and with ErrInvalidHexDigit when a pair contains
// a non-hex character. Decode additionally requires the decoded bytes to
// be valid UTF-8 and fails with ErrInvalidUTF8 otherwise; it never
// substitutes replacement characters — lossy recovery is the scrub
// package's job. DecodeBytes skips the UTF-8 requirement and is the
// entry point used by the scrubber's hex source format.
//
// All errors wrap the package sentinels and can be classified with
// errors.Is.
//
// # Round Trips
//
// For any valid-UTF-8 text t, Decode(Encode([]byte(t), lower, format))
// returns t for every combination of case and format.
//
// # Thread Safety
//
// All functions are pure and operate only on their arguments; concurrent
// use requires no coordination.
package hexcodec
