package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"namestat/internal/report"
)

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestReportNotFound verifies the hint shown before any analysis has run
func TestReportNotFound(t *testing.T) {
	server := NewServer(t.TempDir())

	rec := get(t, server.Router(), "/")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "run the analyze command first") {
		t.Errorf("Expected a hint to run the analysis, got %q", rec.Body.String())
	}
}

// TestReportRendered verifies the Markdown report is served as HTML
func TestReportRendered(t *testing.T) {
	outputDir := t.TempDir()
	md := "# Name roster analysis\n\nTotal names: 3\n"
	if err := os.WriteFile(filepath.Join(outputDir, report.ReportFile), []byte(md), 0o644); err != nil {
		t.Fatalf("Failed to write report: %v", err)
	}

	server := NewServer(outputDir)
	rec := get(t, server.Router(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Expected HTML content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "<h1") {
		t.Errorf("Expected rendered HTML heading, got %q", rec.Body.String())
	}
}

// TestSummaryEndpoint verifies the raw summary JSON is served
func TestSummaryEndpoint(t *testing.T) {
	outputDir := t.TempDir()
	payload := `{"total_names": 3}`
	if err := os.WriteFile(filepath.Join(outputDir, report.SummaryFile), []byte(payload), 0o644); err != nil {
		t.Fatalf("Failed to write summary: %v", err)
	}

	server := NewServer(outputDir)
	rec := get(t, server.Router(), "/api/summary")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected JSON content type, got %q", got)
	}
	if rec.Body.String() != payload {
		t.Errorf("Expected summary payload passed through, got %q", rec.Body.String())
	}
}

// TestArtifactFileServer verifies chart files are served under /artifacts/
func TestArtifactFileServer(t *testing.T) {
	outputDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outputDir, "length_distribution.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	server := NewServer(outputDir)
	rec := get(t, server.Router(), "/artifacts/length_distribution.png")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("Expected the artifact bytes, got %q", rec.Body.String())
	}
}
