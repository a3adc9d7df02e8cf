// Package server exposes the renderer over HTTP. The render endpoint is the
// re-invocation surface of the system: a new request with new dimensions
// triggers a fresh render, and requests arriving while one is in flight are
// rejected by the renderer's single-flight guard instead of being queued.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"runtime"
	"strconv"

	"github.com/nfnt/resize"

	"github.com/tyler-conrad/ray-tracer/pkg/renderer"
)

// Server handles web requests for the ray tracer
type Server struct {
	port     int
	renderer *renderer.Renderer
}

// NewServer creates a new web server with its own single-flight renderer
func NewServer(port int) *Server {
	return &Server{
		port:     port,
		renderer: renderer.NewRenderer(renderer.WithLogger(log.Default())),
	}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/render", s.handleRender)
	mux.HandleFunc("/render/preview", s.handlePreview)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders at the requested dimensions and serves the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	width, height, err := parseDimensions(r, 800, 450)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, err := s.renderImage(width, height)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	s.writePNG(w, img)
}

// handlePreview renders full size, then serves a downscaled preview
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	width, height, err := parseDimensions(r, 800, 450)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, err := s.renderImage(width, height)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	preview := resize.Resize(uint(width/4), 0, img, resize.Lanczos3)
	s.writePNG(w, preview)
}

// renderImage runs the renderer and wraps the flat buffer into an image
func (s *Server) renderImage(width, height int) (image.Image, error) {
	buffer, err := s.renderer.Render(width, height, runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    buffer,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// writeRenderError maps an in-flight rejection to 429 and everything else
// to a bad request
func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	if errors.Is(err, renderer.ErrRenderInFlight) {
		http.Error(w, "render already in progress", http.StatusTooManyRequests)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// writePNG encodes img and writes it with a PNG content type
func (s *Server) writePNG(w http.ResponseWriter, img image.Image) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, fmt.Sprintf("PNG encoding failed: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// parseDimensions reads width/height query parameters with defaults
func parseDimensions(r *http.Request, defaultWidth, defaultHeight int) (int, int, error) {
	width, err := parseIntParam(r, "width", defaultWidth)
	if err != nil {
		return 0, 0, err
	}
	height, err := parseIntParam(r, "height", defaultHeight)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func parseIntParam(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return value, nil
}
