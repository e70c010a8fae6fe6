package render

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"namestat/domain/roster"
	"namestat/internal/errors"
)

// Artifact filenames written by the pipeline
const (
	LengthDistributionFile   = "length_distribution.png"
	InitialFrequencyFile     = "initial_letter_frequency.png"
	InitialLengthHeatmapFile = "initial_by_length_heatmap.png"
	WordCloudFile            = "name_wordcloud.png"
)

// Artifacts renders all visual assets for a roster table into outputDir and
// returns their paths in a fixed order. The four artifacts are independent
// and render concurrently; the first failure or a cancelled context aborts
// the run. An empty roster skips rendering entirely.
func Artifacts(ctx context.Context, table roster.Table, outputDir string) ([]string, error) {
	if table.IsEmpty() {
		log.Printf("[render] roster is empty, skipping artifact generation")
		return nil, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		if os.IsPermission(err) {
			return nil, errors.PermissionDenied("cannot create output directory", err)
		}
		return nil, errors.Wrapf(err, "failed to create output directory '%s'", outputDir)
	}

	paths := []string{
		filepath.Join(outputDir, LengthDistributionFile),
		filepath.Join(outputDir, InitialFrequencyFile),
		filepath.Join(outputDir, InitialLengthHeatmapFile),
		filepath.Join(outputDir, WordCloudFile),
	}

	g, gctx := errgroup.WithContext(ctx)
	run := func(render func() error) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return render()
		}
	}
	g.Go(run(func() error { return LengthHistogram(table, paths[0]) }))
	g.Go(run(func() error { return InitialBarChart(table, paths[1]) }))
	g.Go(run(func() error { return InitialLengthHeatmap(roster.BuildCrosstab(table), paths[2]) }))
	g.Go(run(func() error { return WordCloud(table.Names(), paths[3]) }))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}
