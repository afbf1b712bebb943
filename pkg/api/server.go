// Package api exposes the mojibox codecs over a small JSON REST
// surface.
//
// Endpoints live under /api/v1 and wrap the codec packages one to one:
//
//	POST /api/v1/hex/encode   {text, lower, format}  -> {hex}
//	POST /api/v1/hex/decode   {hex}                  -> {text}
//	POST /api/v1/escape       {text, format}         -> {escaped}
//	POST /api/v1/unescape     {text}                 -> {text}
//	POST /api/v1/scrub        {input, input_format}  -> {text}
//	POST /api/v1/ord          {text, lower, no_prefix} -> {codepoints}
//	POST /api/v1/chr          {codepoints}           -> {text}
//	POST /api/v1/dump         {text}                 -> cluster table
//	GET  /api/v1/health
//
// Responses use the {success, data, error} envelope. Fail-fast codec
// errors map to 400; lossy operations always answer 200. Prometheus
// metrics are scraped from /metrics.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the chi router for a server. Split out from
// StartServer so tests can drive the full middleware stack with
// httptest.
func NewRouter(server *Server, metrics *Metrics) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Post("/hex/encode", metrics.InstrumentHandler("POST", "/api/v1/hex/encode", server.handleHexEncode))
		r.Post("/hex/decode", metrics.InstrumentHandler("POST", "/api/v1/hex/decode", server.handleHexDecode))
		r.Post("/escape", metrics.InstrumentHandler("POST", "/api/v1/escape", server.handleEscape))
		r.Post("/unescape", metrics.InstrumentHandler("POST", "/api/v1/unescape", server.handleUnescape))
		r.Post("/scrub", metrics.InstrumentHandler("POST", "/api/v1/scrub", server.handleScrub))
		r.Post("/ord", metrics.InstrumentHandler("POST", "/api/v1/ord", server.handleOrd))
		r.Post("/chr", metrics.InstrumentHandler("POST", "/api/v1/chr", server.handleChr))
		r.Post("/dump", metrics.InstrumentHandler("POST", "/api/v1/dump", server.handleDump))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(config, metrics)
	router := NewRouter(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting mojibox REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, router))

	return nil
}
