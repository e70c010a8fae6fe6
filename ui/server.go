package ui

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"namestat/internal/report"
)

// Server serves the generated report, summary and chart artifacts over HTTP
type Server struct {
	outputDir string
	router    chi.Router
}

// NewServer creates a report server over the given output directory
func NewServer(outputDir string) *Server {
	s := &Server{outputDir: outputDir}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleReport)
	r.Get("/api/summary", s.handleSummary)
	r.Handle("/artifacts/*", http.StripPrefix("/artifacts/", http.FileServer(http.Dir(outputDir))))

	s.router = r
	return s
}

// Router exposes the HTTP handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given address
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[ui] serving analysis results from %s on %s", s.outputDir, addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	md, err := os.ReadFile(filepath.Join(s.outputDir, report.ReportFile))
	if err != nil {
		http.Error(w, "no report found, run the analyze command first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(report.RenderHTML(string(md)))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	payload, err := os.ReadFile(filepath.Join(s.outputDir, report.SummaryFile))
	if err != nil {
		http.Error(w, "no summary found, run the analyze command first", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
