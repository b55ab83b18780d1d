package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/reporter"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

type checkFlags struct {
	runFlags
	format       string
	noContext    bool
	compact      bool
	perFile      bool
	includeHTML  bool
	summaryOrder string
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report rendering warnings without writing HTML",
		Long: `Render Markdown files in memory and report the warnings found.

By default, checks all .md and .markdown files in the current directory
and subdirectories. The exit code is 1 when a warning with error severity
is reported, or any warning with --strict.`,
		Example: `  gomdhtml check                         # Check current directory
  gomdhtml check README.md docs/
  gomdhtml check --format json           # Machine-readable output
  gomdhtml check --format sarif > out.sarif
  gomdhtml check --ignore-warnings weird-href,empty-link
  gomdhtml check --strict                # Fail on any warning`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addRunFlags(cmd, &flags.runFlags)
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text",
		"output format: text, table, json, sarif, summary")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output (json)")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output a separate table for each file (table format)")
	cmd.Flags().BoolVar(&flags.includeHTML, "html", false, "include rendered HTML in json output")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", string(reporter.SummaryOrderKinds),
		"order of tables in summary output: kinds, files")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	order := reporter.SummaryOrder(flags.summaryOrder)
	if order != reporter.SummaryOrderKinds && order != reporter.SummaryOrderFiles {
		return fmt.Errorf("%w: invalid summary order %q (valid: kinds, files)", ErrUsage, flags.summaryOrder)
	}

	cliCfg := flags.cliConfig()
	cliCfg.Format = config.OutputFormat(format)

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts := sess.runOptions(args, runner.ModeCheck, &flags.runFlags)
	sess.logger.Debug("starting check",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldFormat, format)

	result, err := runner.NewFromConfig(sess.cfg).Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        sess.color,
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		IncludeHTML:  flags.includeHTML,
		SummaryOrder: order,
		WorkingDir:   sess.workDir,
		ToolVersion:  info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	sess.logger.Debug("check finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldWarnings, result.Stats.WarningsTotal,
		logging.FieldDuration, result.Stats.Duration)

	return outcomeError(result, sess.cfg.Strict)
}
