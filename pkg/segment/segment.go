// Package segment splits text into units: grapheme clusters, codepoints,
// or bytes.
//
// Grapheme segmentation is delegated to an Engine, a narrow read-only
// collaborator that reports cluster boundary offsets; the default engine
// wraps the runeseg UAX #29 implementation. Codepoint and byte modes
// need no engine. All functions are pure.
package segment

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/scalecode-solutions/runeseg"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnknownMode indicates an unrecognized mode name.
	ErrUnknownMode = errors.New("unknown segmentation mode")

	// ErrUnknownEngine indicates an unrecognized engine name.
	ErrUnknownEngine = errors.New("unknown segmentation engine")
)

// Mode selects the unit text is split into.
type Mode int

const (
	// ModeGrapheme splits into user-perceived characters (default).
	ModeGrapheme Mode = iota
	// ModeCodepoint splits into Unicode scalar values.
	ModeCodepoint
	// ModeByte splits into single bytes.
	ModeByte
)

// ParseMode maps a mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "grapheme", "":
		return ModeGrapheme, nil
	case "codepoint":
		return ModeCodepoint, nil
	case "byte":
		return ModeByte, nil
	}
	return ModeGrapheme, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeCodepoint:
		return "codepoint"
	case ModeByte:
		return "byte"
	default:
		return "grapheme"
	}
}

// Engine reports grapheme cluster boundaries for a text. Boundaries
// returns the ordered byte offsets of every cluster boundary, including
// 0 and len(text); for empty text it returns nil. Implementations must
// be stateless across calls.
type Engine interface {
	Boundaries(text string) []int
}

// RunesegEngine is the default Engine, backed by the runeseg UAX #29
// grapheme cluster segmenter.
type RunesegEngine struct{}

// Boundaries implements Engine.
func (RunesegEngine) Boundaries(text string) []int {
	if text == "" {
		return nil
	}
	offsets := make([]int, 1, utf8.RuneCountInString(text)+1)

	state := -1
	off := 0
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = runeseg.StepString(rest, state)
		off += len(cluster)
		offsets = append(offsets, off)
	}
	return offsets
}

// ParseEngine maps an engine name to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "runeseg", "":
		return RunesegEngine{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Iter splits text into units of the given mode, in input order. Byte
// mode maps each byte value to the character with that codepoint, the
// way a byte-wise dump renders non-ASCII bytes.
func Iter(text string, mode Mode, engine Engine) []string {
	switch mode {
	case ModeCodepoint:
		units := make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			units = append(units, string(r))
		}
		return units
	case ModeByte:
		units := make([]string, 0, len(text))
		for i := 0; i < len(text); i++ {
			units = append(units, string(rune(text[i])))
		}
		return units
	default:
		offsets := engine.Boundaries(text)
		if len(offsets) < 2 {
			return []string{}
		}
		units := make([]string, 0, len(offsets)-1)
		for i := 1; i < len(offsets); i++ {
			units = append(units, text[offsets[i-1]:offsets[i]])
		}
		return units
	}
}

// Count returns the number of units text splits into.
func Count(text string, mode Mode, engine Engine) int {
	switch mode {
	case ModeCodepoint:
		return utf8.RuneCountInString(text)
	case ModeByte:
		return len(text)
	default:
		offsets := engine.Boundaries(text)
		if len(offsets) == 0 {
			return 0
		}
		return len(offsets) - 1
	}
}

// Take returns the first n units. When n meets or exceeds the unit
// count, every unit is returned.
func Take(text string, mode Mode, engine Engine, n int) []string {
	units := Iter(text, mode, engine)
	if n > len(units) {
		n = len(units)
	}
	return units[:n]
}

// Drop returns all but the first n units. When n meets or exceeds the
// unit count, the result is empty.
func Drop(text string, mode Mode, engine Engine, n int) []string {
	units := Iter(text, mode, engine)
	if n > len(units) {
		n = len(units)
	}
	return units[n:]
}
