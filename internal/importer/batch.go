package importer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ImportBatch processes each file in turn, continuing past individual
// failures and collecting every outcome into the report. Duplicates count
// as failures in the tallies but remain distinguishable per file.
func (i *Importer) ImportBatch(ctx context.Context, paths []string, team string) *BatchReport {
	report := &BatchReport{
		JobID:   uuid.NewString(),
		Team:    team,
		Results: make(map[string]*ImportResult, len(paths)),
	}

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		result := i.Import(ctx, path, team)
		report.Results[path] = result
		report.Processed++
		if result.Success {
			report.Succeeded++
		} else {
			report.Failed++
			i.logger.Printf("batch %s: %s failed: %s", report.JobID, filepath.Base(path), result.Error)
		}
	}

	i.logger.Printf("batch %s: %d processed, %d succeeded, %d failed",
		report.JobID, report.Processed, report.Succeeded, report.Failed)

	return report
}

// ImportDir imports every .csv file in a directory, sorted by name so
// chronologically named exports land in order.
func (i *Importer) ImportDir(ctx context.Context, dir, team string) (*BatchReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return i.ImportBatch(ctx, paths, team), nil
}
