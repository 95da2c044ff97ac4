package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/harrison/zindex-tree/internal/config"
	"github.com/harrison/zindex-tree/internal/fileutil"
	"github.com/harrison/zindex-tree/internal/logger"
	"github.com/harrison/zindex-tree/internal/models"
	"github.com/harrison/zindex-tree/internal/report"
	"github.com/harrison/zindex-tree/internal/scanner"
)

// Summary counts what a scan touched.
type Summary struct {
	FilesScanned int
	FilesFailed  int
	Records      int
}

// Run walks cfg.Root, scans every candidate file, and renders the sorted
// records to stdout. Per-file failures are logged as
// "Error scanning <path>: <message>" and do not stop the scan; only a root
// that cannot be traversed returns a *models.FatalError.
func Run(cfg *config.Config, stdout io.Writer, log logger.Logger, colorOutput bool) (*Summary, error) {
	renderer, err := report.NewRenderer(cfg.Format, colorOutput)
	if err != nil {
		return nil, err
	}

	files, err := fileutil.Walk(cfg.Root, cfg.WalkOptions(log))
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	var all []models.StackingOrderRecord
	for path := range files {
		records, err := scanner.ScanFile(path)
		if err != nil {
			var scanErr *models.FileScanError
			if !errors.As(err, &scanErr) {
				return nil, err
			}
			summary.FilesFailed++
			log.LogError(fmt.Sprintf("Error scanning %s: %v", path, err))
			continue
		}
		summary.FilesScanned++
		log.LogTrace(fmt.Sprintf("%s: %d declarations", path, len(records)))
		all = append(all, records...)
	}
	summary.Records = len(all)

	log.LogInfo(fmt.Sprintf("scanned %d files (%d failed), found %d declarations",
		summary.FilesScanned, summary.FilesFailed, summary.Records))

	if err := renderer.Render(stdout, report.Sort(all)); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return summary, nil
}
