package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind string
	Port int
}

// HexEncodeRequest asks for text rendered as hex.
type HexEncodeRequest struct {
	Text   string `json:"text"`
	Lower  bool   `json:"lower"`
	Format string `json:"format"`
}

// HexDecodeRequest asks for hex text decoded back to text.
type HexDecodeRequest struct {
	Hex string `json:"hex"`
}

// EscapeRequest asks for text rendered as backslash escapes.
type EscapeRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

// UnescapeRequest asks for escape notation decoded back to text.
type UnescapeRequest struct {
	Text string `json:"text"`
}

// ScrubRequest asks for lossy UTF-8 recovery of the input.
type ScrubRequest struct {
	Input       string `json:"input"`
	InputFormat string `json:"input_format"`
}

// OrdRequest asks for the codepoint listing of a text.
type OrdRequest struct {
	Text     string `json:"text"`
	Lower    bool   `json:"lower"`
	NoPrefix bool   `json:"no_prefix"`
}

// ChrRequest asks for the text spelled by codepoint tokens.
type ChrRequest struct {
	Codepoints []string `json:"codepoints"`
}

// DumpRequest asks for a per-cluster codepoint table.
type DumpRequest struct {
	Text string `json:"text"`
}
