package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"soundcheck/internal/analysis"
	"soundcheck/internal/logging"
	"soundcheck/internal/preset"
	"soundcheck/internal/quality"
	"soundcheck/internal/services"
)

// FileReport is the classification outcome for one result document.
type FileReport struct {
	Path      string
	Result    *analysis.Result
	Breakdown quality.Breakdown
	Overlap   quality.MetricStatus
	Verdict   quality.Verdict
	// Admitted reports whether the analyzed file's name passes the active
	// preset's admission gate. Informational for reporting; the analyzer
	// upstream already gated retrieval.
	Admitted bool
	// Err is set when the document itself could not be loaded; the verdict
	// is VerdictError in that case.
	Err error
}

// Summary aggregates one batch run.
type Summary struct {
	RunID     string
	PresetID  string
	StartedAt time.Time
	Reports   []FileReport
	Passed    int
	Warned    int
	Failed    int
	Errored   int
}

// Total returns the number of classified documents.
func (s *Summary) Total() int { return len(s.Reports) }

// Classify evaluates one loaded result against the preset criteria. It is
// the single-file unit of work shared by the CLI and the batch runner.
func Classify(result *analysis.Result, cfg preset.Config) FileReport {
	overlap := quality.ClassifyOverlap(cfg, result.Overlap)
	return FileReport{
		Result:    result,
		Breakdown: quality.Evaluate(result),
		Overlap:   overlap,
		Verdict:   quality.Aggregate(result, overlap),
		Admitted:  preset.Admit(result.Filename, cfg.FileTypes),
	}
}

// Run classifies every document in paths against the preset criteria using at
// most workers goroutines. Reports come back in input order. Load failures
// become per-file error reports rather than failing the run; the returned
// error is reserved for context cancellation.
func Run(ctx context.Context, paths []string, presetID string, cfg preset.Config, workers int, logger *slog.Logger) (*Summary, error) {
	log := logging.NewComponentLogger(logger, "batch")
	if workers <= 0 {
		workers = 1
	}

	summary := &Summary{
		RunID:     uuid.NewString(),
		PresetID:  presetID,
		StartedAt: time.Now().UTC(),
		Reports:   make([]FileReport, len(paths)),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			summary.Reports[i] = classifyPath(path, cfg)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, report := range summary.Reports {
		switch report.Verdict {
		case quality.VerdictPass:
			summary.Passed++
		case quality.VerdictWarning:
			summary.Warned++
		case quality.VerdictFail:
			summary.Failed++
		case quality.VerdictError:
			summary.Errored++
		}
	}

	log.Info("batch run complete",
		logging.String("run_id", summary.RunID),
		logging.String(logging.FieldPreset, presetID),
		logging.Int("total", summary.Total()),
		logging.Int("passed", summary.Passed),
		logging.Int("warned", summary.Warned),
		logging.Int("failed", summary.Failed),
		logging.Int("errored", summary.Errored),
		logging.String(logging.FieldEventType, "batch_run_complete"),
	)
	return summary, nil
}

func classifyPath(path string, cfg preset.Config) FileReport {
	result, err := analysis.LoadFile(path)
	if err != nil {
		return FileReport{Path: path, Verdict: quality.VerdictError, Err: err}
	}
	report := Classify(result, cfg)
	report.Path = path
	return report
}

// DiscoverResults lists the analyzer result documents under dir, sorted by
// name. Only .json files at the top level are considered.
func DiscoverResults(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "batch", "discover results", dir, nil)
		}
		return nil, services.Wrap(services.ErrStore, "batch", "discover results", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
