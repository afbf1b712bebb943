package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mojibox/mojibox/pkg/codepoint"
	"github.com/mojibox/mojibox/pkg/dump"
	"github.com/mojibox/mojibox/pkg/escape"
	"github.com/mojibox/mojibox/pkg/hexcodec"
	"github.com/mojibox/mojibox/pkg/scrub"
	"github.com/mojibox/mojibox/pkg/segment"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
	engine  segment.Engine
	names   dump.NameLookup
}

// NewServer creates a new API server with the default segmentation
// engine and name lookup.
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
		engine:  segment.RunesegEngine{},
		names:   dump.RuneNames{},
	}
}

// decodeBody parses the JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleHexEncode(w http.ResponseWriter, r *http.Request) {
	var req HexEncodeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := hexcodec.ParseFormat(req.Format)
	if err != nil {
		s.metrics.RecordCodecOperation("hex_encode", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("hex_encode", true)
	sendSuccess(w, map[string]string{"hex": hexcodec.Encode([]byte(req.Text), req.Lower, format)})
}

func (s *Server) handleHexDecode(w http.ResponseWriter, r *http.Request) {
	var req HexDecodeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := hexcodec.Decode(req.Hex)
	if err != nil {
		s.metrics.RecordCodecOperation("hex_decode", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("hex_decode", true)
	sendSuccess(w, map[string]string{"text": text})
}

func (s *Server) handleEscape(w http.ResponseWriter, r *http.Request) {
	var req EscapeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := escape.ParseFormat(req.Format)
	if err != nil {
		s.metrics.RecordCodecOperation("escape", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("escape", true)
	sendSuccess(w, map[string]string{"escaped": escape.Escape(req.Text, format)})
}

func (s *Server) handleUnescape(w http.ResponseWriter, r *http.Request) {
	var req UnescapeRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Total operation: always succeeds, malformed tokens degrade to
	// replacement characters.
	s.metrics.RecordCodecOperation("unescape", true)
	sendSuccess(w, map[string]string{"text": escape.Unescape(req.Text)})
}

func (s *Server) handleScrub(w http.ResponseWriter, r *http.Request) {
	var req ScrubRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := scrub.ParseSourceFormat(req.InputFormat)
	if err != nil {
		s.metrics.RecordCodecOperation("scrub", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := scrub.Scrub(req.Input, format)
	if err != nil {
		s.metrics.RecordCodecOperation("scrub", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("scrub", true)
	sendSuccess(w, map[string]string{"text": text})
}

func (s *Server) handleOrd(w http.ResponseWriter, r *http.Request) {
	var req OrdRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("ord", true)
	sendSuccess(w, map[string][]string{"codepoints": codepoint.Ord(req.Text, req.Lower, req.NoPrefix)})
}

func (s *Server) handleChr(w http.ResponseWriter, r *http.Request) {
	var req ChrRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := codepoint.Chr(req.Codepoints)
	if err != nil {
		s.metrics.RecordCodecOperation("chr", false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("chr", true)
	sendSuccess(w, map[string]string{"text": text})
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	var req DumpRequest
	if err := decodeBody(r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordCodecOperation("dump", true)
	sendSuccess(w, dump.Inspect(req.Text, s.engine, s.names))
}
