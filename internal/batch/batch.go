// Package batch imports every statement file found in a directory.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mrichard/bourso-import/internal/importer"
	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
	"mrichard/bourso-import/internal/parser"
)

// Processor runs the import pipeline over a directory of statement files.
type Processor struct {
	importer *importer.Importer
	logger   logging.Logger
}

// NewProcessor creates a batch processor over an importer.
func NewProcessor(imp *importer.Importer, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{importer: imp, logger: logger}
}

// Run imports every .csv file in dir into the account, in filename order, and
// returns the aggregated stats. Deduplication makes the order of overlapping
// exports irrelevant for the persisted result, but a stable order keeps the
// per-file stats reproducible.
//
// A file that fails to open or parse aborts the run; stats for files already
// processed are still returned.
func (p *Processor) Run(ctx context.Context, dir string, accountID int64, format parser.Format) (models.ImportStats, error) {
	files, err := listStatementFiles(dir)
	if err != nil {
		return models.ImportStats{}, err
	}
	if len(files) == 0 {
		return models.ImportStats{}, fmt.Errorf("no statement files found in %s", dir)
	}

	var total models.ImportStats
	for _, name := range files {
		stats, err := p.importFile(ctx, filepath.Join(dir, name), accountID, format)
		if err != nil {
			return total, fmt.Errorf("error importing %s: %w", name, err)
		}
		p.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldImported, Value: stats.Imported},
			logging.Field{Key: logging.FieldDuplicates, Value: stats.Duplicates},
		).Info("File imported")
		total.Merge(stats)
	}
	return total, nil
}

func (p *Processor) importFile(ctx context.Context, path string, accountID int64, format parser.Format) (models.ImportStats, error) {
	f, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return models.ImportStats{}, err
	}
	defer func() { _ = f.Close() }()

	return p.importer.ImportBatch(ctx, f, accountID, format)
}

// listStatementFiles returns the .csv filenames in dir, sorted.
func listStatementFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
