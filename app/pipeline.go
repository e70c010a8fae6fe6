package app

import (
	"context"
	"log"
	"path/filepath"

	"namestat/adapters/excel"
	"namestat/adapters/render"
	"namestat/domain/core"
	"namestat/domain/roster"
	"namestat/domain/run"
	"namestat/internal/analysis"
	"namestat/internal/config"
	"namestat/internal/errors"
	"namestat/internal/report"
	"namestat/ports"
)

// Pipeline runs the full analysis: read, clean, sort, summarise, render,
// persist. It is a single synchronous pass; only artifact rendering fans out.
type Pipeline struct {
	cfg        *config.Config
	ledger     ports.RunLedgerPort
	exportXLSX bool
}

// Result is everything a pipeline run produced
type Result struct {
	RunID        core.RunID
	Names        []string
	Summary      *analysis.Summary
	Artifacts    []string
	SummaryPath  string
	ReportPath   string
	WorkbookPath string
}

// NewPipeline creates a pipeline. The ledger is optional; pass nil to skip
// run recording.
func NewPipeline(cfg *config.Config, ledger ports.RunLedgerPort, exportXLSX bool) *Pipeline {
	return &Pipeline{cfg: cfg, ledger: ledger, exportXLSX: exportXLSX}
}

// Run executes the pipeline end to end and returns the results for console
// reporting
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	names, err := roster.ReadNames(p.cfg.Data.NamesFile)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] read %d name entries from %s", len(names), p.cfg.Data.NamesFile)

	sorted := roster.Sort(names, roster.SortOptions{
		IgnoreCase: p.cfg.Analysis.IgnoreCase,
		Reverse:    p.cfg.Analysis.Reverse,
	})

	table := roster.BuildTable(sorted)
	summary, err := analysis.Summarize(table, p.cfg.Analysis.TopN)
	if err != nil {
		return nil, err
	}

	artifacts, err := render.Artifacts(ctx, table, p.cfg.Data.OutputDir)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] rendered %d artifacts into %s", len(artifacts), p.cfg.Data.OutputDir)

	summaryPath, reportPath, err := report.WriteFiles(p.cfg.Data.OutputDir, summary, artifacts, p.cfg.Data.NamesFile)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       core.NewRunID(),
		Names:       sorted,
		Summary:     summary,
		Artifacts:   artifacts,
		SummaryPath: summaryPath,
		ReportPath:  reportPath,
	}

	if p.exportXLSX {
		workbookPath := filepath.Join(p.cfg.Data.OutputDir, excel.WorkbookName(p.cfg.Data.NamesFile))
		writer := excel.NewReportWriter()
		if err := writer.Write(workbookPath, summary, table); err != nil {
			return nil, errors.Wrap(err, "workbook export failed")
		}
		result.WorkbookPath = workbookPath
		log.Printf("[pipeline] exported workbook %s", workbookPath)
	}

	if p.ledger != nil {
		record := run.Record{
			ID:          result.RunID,
			InputFile:   p.cfg.Data.NamesFile,
			TotalNames:  summary.TotalNames,
			UniqueNames: summary.UniqueNames,
			MeanLength:  summary.Length.Mean,
			Artifacts:   artifacts,
			CreatedAt:   core.Now(),
		}
		if err := p.ledger.SaveRun(ctx, record); err != nil {
			return nil, errors.Wrap(err, "failed to record run")
		}
		log.Printf("[pipeline] recorded run %s", result.RunID)
	}

	return result, nil
}
