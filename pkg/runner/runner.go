package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/golden"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
	"github.com/yaklabco/gomdhtml/pkg/source"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// Runner orchestrates multi-file conversion with an mdhtml.Converter.
type Runner struct {
	// Converter renders each file. It is safe for concurrent use.
	Converter *mdhtml.Converter
}

// New creates a new Runner with the given converter.
func New(converter *mdhtml.Converter) *Runner {
	return &Runner{Converter: converter}
}

// NewFromConfig creates a Runner whose converter follows cfg.
func NewFromConfig(cfg *config.Config) *Runner {
	return New(mdhtml.New(ConverterOptions(cfg)))
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	return r.RunFiles(ctx, files, opts)
}

// RunFiles processes an explicit list of files, skipping discovery.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{
		Mode:  opts.Mode,
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.config().Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logger.Debug("processing files",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
		"mode", opts.Mode)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts, workDir)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; index by path and rebuild in input order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	result.Stats.Duration = time.Since(start)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
	workDir string,
) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.processFile(ctx, path, opts, workDir)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads, converts and then writes or verifies one file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options, workDir string) FileOutcome {
	start := time.Now()
	logger := logging.FromContext(ctx)
	cfg := opts.config()

	content, info, err := fsutil.ReadFile(ctx, path, cfg.MaxFileSize)
	if err != nil {
		logger.Debug("read failed", logging.FieldPath, path, logging.FieldError, err)
		return FileOutcome{Path: path, Error: err, Duration: time.Since(start)}
	}

	outcome := r.Convert(path, content, cfg)
	outcome.Info = info

	switch opts.Mode {
	case ModeRender:
		outcome.OutputPath = OutputPath(path, workDir, cfg.OutputDir)
		if !cfg.DryRun {
			outcome.Written, outcome.Error = fsutil.WriteAtomicIfChanged(
				ctx, outcome.OutputPath, []byte(withTrailingNewline(outcome.HTML)), 0)
		}
	case ModeVerify:
		outcome.Golden, outcome.Error = verifyGolden(path, outcome.HTML)
	case ModeCheck:
	}

	outcome.Duration = time.Since(start)

	logger.Debug("processed file",
		logging.FieldPath, path,
		logging.FieldWarnings, len(outcome.Findings),
		logging.FieldDuration, outcome.Duration)

	return outcome
}

// Convert renders content and resolves its warnings against cfg.
// name labels the outcome; it is not read from disk.
func (r *Runner) Convert(name string, content []byte, cfg *config.Config) FileOutcome {
	converter := r.Converter
	if converter == nil {
		converter = mdhtml.New(ConverterOptions(cfg))
	}

	res := converter.Convert(string(content))

	ignored := IgnoredKinds(cfg)
	kept := warning.Filter(res.Warnings, ignored)

	findings := make([]Finding, len(kept))
	for i, w := range kept {
		findings[i] = Finding{Warning: w, Severity: ResolveSeverity(cfg, w.Kind)}
	}

	return FileOutcome{
		Path:       name,
		Snapshot:   source.New(name, content),
		HTML:       res.HTML,
		Findings:   findings,
		Suppressed: len(res.Warnings) - len(kept),
	}
}

// OutputPath returns where the HTML for src is written. With no outputDir the
// .html file sits next to the source; otherwise the source's position under
// workDir is mirrored below outputDir.
func OutputPath(src, workDir, outputDir string) string {
	if outputDir == "" {
		return golden.Path(src)
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(workDir, outputDir)
	}

	rel, err := filepath.Rel(workDir, src)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(src)
	}

	return filepath.Join(outputDir, golden.Path(rel))
}

// verifyGolden compares html with the golden sibling of path.
// It returns nil without error when there is no golden file.
func verifyGolden(path, html string) (*GoldenCheck, error) {
	goldenPath := golden.Path(path)

	want, err := os.ReadFile(goldenPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read golden %s: %w", goldenPath, err)
	}

	diff, err := golden.Diff(filepath.Base(path), string(want), html)
	if err != nil {
		return nil, err
	}

	return &GoldenCheck{
		Path:    goldenPath,
		Diff:    diff,
		Changes: golden.CountChanges(diff),
	}, nil
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
