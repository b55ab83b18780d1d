package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/reporter"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

// runFlags are shared by every command that processes Markdown files.
type runFlags struct {
	jobs           int
	ignore         []string
	ignoreWarnings []string
	headingIDs     string
	detectLanguage bool
	delimiterRows  bool
	followSymlinks bool
	strict         bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.ignoreWarnings, "ignore-warnings", nil,
		"warning kinds to suppress (see 'gomdhtml kinds')")
	cmd.Flags().StringVar(&flags.headingIDs, "heading-ids", "", "heading id style: counter, slug")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"guess the language of untagged code fences")
	cmd.Flags().BoolVar(&flags.delimiterRows, "delimiter-rows", false,
		"drop GFM delimiter rows under table headers")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow directory symlinks")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on any reported warning, not only errors")
}

// cliConfig returns the configuration layer set by flags.
// Unset flags stay at their zero value so lower layers show through.
func (f *runFlags) cliConfig() *config.Config {
	return &config.Config{
		HeadingIDs:     f.headingIDs,
		DetectLanguage: f.detectLanguage,
		DelimiterRows:  f.delimiterRows,
		IgnoreWarnings: f.ignoreWarnings,
		Jobs:           f.jobs,
		Strict:         f.strict,
	}
}

// session is the resolved state a file-processing command runs with.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	workDir string
	color   string
	logger  *log.Logger
}

// newSession loads and merges configuration for cmd.
func newSession(cmd *cobra.Command, cliCfg *config.Config) (*session, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	color, err := cmd.Flags().GetString("color")
	if err != nil {
		color = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldHeadingIDs, cfg.HeadingIDs,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	return &session{ctx: ctx, cfg: cfg, workDir: workDir, color: color, logger: logger}, nil
}

// runOptions builds runner options for paths.
func (s *session) runOptions(paths []string, mode runner.Mode, flags *runFlags) runner.Options {
	return runner.Options{
		Paths:          paths,
		WorkingDir:     s.workDir,
		ExcludeGlobs:   flags.ignore,
		FollowSymlinks: flags.followSymlinks,
		Mode:           mode,
		Config:         s.cfg,
	}
}

// styles returns output styles for w under the session's color mode.
func (s *session) styles(w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(s.color, w))
}

// reportFindings prints findings and file failures as grouped text, without a summary.
func (s *session) reportFindings(w io.Writer, result *runner.Result) error {
	if !result.HasIssues() && !result.HasErrors() {
		return nil
	}

	opts := reporter.DefaultOptions()
	opts.Writer = w
	opts.ErrorWriter = w
	opts.Color = s.color
	opts.ShowSummary = false
	opts.WorkingDir = s.workDir

	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(s.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// outcomeError decides how a finished run ends: file failures first,
// then warnings that fail the run.
func outcomeError(result *runner.Result, strict bool) error {
	if result.HasErrors() {
		var errs []error
		for _, file := range result.Files {
			if file.Error != nil {
				errs = append(errs, fmt.Errorf("%s: %w", file.Path, file.Error))
			}
		}
		return errors.Join(errs...)
	}

	if result.HasFailures() || (strict && result.HasIssues()) {
		return ErrWarningsFound
	}

	return nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}
