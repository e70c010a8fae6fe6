package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"namestat/internal/analysis"
	"namestat/internal/errors"
)

// Filenames written next to the chart artifacts
const (
	SummaryFile = "summary.json"
	ReportFile  = "report.md"
)

// BuildMarkdown renders the summary as a Markdown report
func BuildMarkdown(summary *analysis.Summary, artifacts []string, inputFile string, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Name roster analysis\n\n")
	fmt.Fprintf(&b, "Input: `%s`  \nGenerated: %s\n\n", inputFile, generatedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total names | %d |\n", summary.TotalNames)
	fmt.Fprintf(&b, "| Unique names | %d |\n", summary.UniqueNames)
	fmt.Fprintf(&b, "| Length min/max | %.0f / %.0f |\n", summary.Length.Min, summary.Length.Max)
	fmt.Fprintf(&b, "| Length mean/median | %.2f / %.2f |\n", summary.Length.Mean, summary.Length.Median)
	fmt.Fprintf(&b, "| Length std dev | %.2f |\n", summary.Length.StdDev)
	fmt.Fprintf(&b, "| Length p25/p75 | %.2f / %.2f |\n", summary.Length.P25, summary.Length.P75)
	fmt.Fprintf(&b, "| Vowel initial share | %.2f |\n", summary.VowelInitialShare)
	fmt.Fprintf(&b, "| Vowel ending share | %.2f |\n", summary.VowelEndingShare)
	fmt.Fprintf(&b, "| Total letters | %d |\n\n", summary.TotalLetters)

	writeFrequencySection(&b, "Most common initials", summary.TopInitials)
	writeFrequencySection(&b, "Most common endings", summary.TopEndings)
	writeFrequencySection(&b, "Top letters used", summary.TopLetters)

	if len(artifacts) > 0 {
		fmt.Fprintf(&b, "## Visualisations\n\n")
		for _, artifact := range artifacts {
			name := filepath.Base(artifact)
			fmt.Fprintf(&b, "![%s](artifacts/%s)\n\n", name, name)
		}
	}

	return b.String()
}

func writeFrequencySection(b *strings.Builder, title string, entries []analysis.FreqEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s: %d\n", entry.Key, entry.Count)
	}
	fmt.Fprintf(b, "\n")
}

// RenderHTML converts a Markdown report to HTML
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.ToHTML([]byte(md), p, renderer)
}

// WriteFiles persists summary.json and report.md into the output directory
// and returns their paths
func WriteFiles(outputDir string, summary *analysis.Summary, artifacts []string, inputFile string) (summaryPath, reportPath string, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", "", errors.Wrapf(err, "failed to create output directory '%s'", outputDir)
	}

	summaryPath = filepath.Join(outputDir, SummaryFile)
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", "", errors.Wrap(err, "failed to encode summary")
	}
	if err := os.WriteFile(summaryPath, payload, 0o644); err != nil {
		return "", "", errors.Wrapf(err, "failed to write '%s'", summaryPath)
	}

	reportPath = filepath.Join(outputDir, ReportFile)
	md := BuildMarkdown(summary, artifacts, inputFile, time.Now())
	if err := os.WriteFile(reportPath, []byte(md), 0o644); err != nil {
		return "", "", errors.Wrapf(err, "failed to write '%s'", reportPath)
	}

	return summaryPath, reportPath, nil
}
