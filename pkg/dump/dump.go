// Package dump builds per-grapheme-cluster codepoint tables and renders
// them as plain text, JSON, or JSON Lines.
//
// Character names come from a NameLookup, a narrow read-only
// collaborator; the default implementation wraps the Unicode name table
// in golang.org/x/text/unicode/runenames.
package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/mojibox/mojibox/pkg/hexcodec"
	"github.com/mojibox/mojibox/pkg/segment"
)

// ErrUnknownFormat indicates an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown dump format")

// Format selects the rendering of a cluster table.
type Format int

const (
	// FormatText renders a human-readable listing.
	FormatText Format = iota
	// FormatJSON renders one indented JSON document.
	FormatJSON
	// FormatJSONL renders one compact JSON object per cluster per line.
	FormatJSONL
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "jsonl":
		return FormatJSONL, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	default:
		return "text"
	}
}

// NameLookup resolves a codepoint to its Unicode character name, or ""
// when no name is known.
type NameLookup interface {
	Name(r rune) string
}

// RuneNames is the default NameLookup, backed by the x/text Unicode
// name table.
type RuneNames struct{}

// Name implements NameLookup.
func (RuneNames) Name(r rune) string {
	return runenames.Name(r)
}

// Codepoint describes one scalar value inside a cluster.
type Codepoint struct {
	Char string `json:"char"`
	Hex  string `json:"hex"`
	Dec  int32  `json:"dec"`
	UTF8 string `json:"utf8_bytes"`
	Name string `json:"name,omitempty"`
}

// Cluster describes one grapheme cluster of the input.
type Cluster struct {
	Index      int         `json:"index"`
	Grapheme   string      `json:"grapheme"`
	Offset     int         `json:"offset"`
	ByteLen    int         `json:"byte_len"`
	Codepoints []Codepoint `json:"codepoints"`
}

// Inspect splits text into grapheme clusters using engine and describes
// every codepoint of every cluster. Empty input yields an empty slice.
func Inspect(text string, engine segment.Engine, names NameLookup) []Cluster {
	graphemes := segment.Iter(text, segment.ModeGrapheme, engine)

	clusters := make([]Cluster, 0, len(graphemes))
	offset := 0
	for i, g := range graphemes {
		c := Cluster{
			Index:    i,
			Grapheme: g,
			Offset:   offset,
			ByteLen:  len(g),
		}
		for _, r := range g {
			c.Codepoints = append(c.Codepoints, Codepoint{
				Char: string(r),
				Hex:  fmt.Sprintf("U+%04X", r),
				Dec:  int32(r),
				UTF8: hexcodec.Encode([]byte(string(r)), false, hexcodec.FormatSpaced),
				Name: names.Name(r),
			})
		}
		clusters = append(clusters, c)
		offset += len(g)
	}
	return clusters
}

// Render serializes clusters in the given format. Text output ends with
// a newline unless clusters is empty; JSONL emits one line per cluster.
func Render(clusters []Cluster, format Format) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(clusters, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal clusters: %w", err)
		}
		return string(out) + "\n", nil
	case FormatJSONL:
		var b strings.Builder
		for _, c := range clusters {
			line, err := json.Marshal(c)
			if err != nil {
				return "", fmt.Errorf("failed to marshal cluster %d: %w", c.Index, err)
			}
			b.Write(line)
			b.WriteByte('\n')
		}
		return b.String(), nil
	default:
		return renderText(clusters), nil
	}
}

func renderText(clusters []Cluster) string {
	var b strings.Builder
	for _, c := range clusters {
		fmt.Fprintf(&b, "[%d] %q offset=%d bytes=%d\n", c.Index, c.Grapheme, c.Offset, c.ByteLen)
		for _, cp := range c.Codepoints {
			fmt.Fprintf(&b, "    %-8s %-12s %s\n", cp.Hex, cp.UTF8, cp.Name)
		}
	}
	return b.String()
}
