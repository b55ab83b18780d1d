package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/reporter"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

type verifyFlags struct {
	runFlags
	quiet bool
}

func newVerifyCommand() *cobra.Command {
	flags := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify [paths...]",
		Short: "Compare rendered HTML with golden files",
		Long: `Render every Markdown file that has a sibling .html golden file and
compare the result with it. A unified diff is printed for each file that
differs, and the exit code is 1 when any file differs.

Markdown files without a golden file are counted but not compared.`,
		Example: `  gomdhtml verify testdata/
  gomdhtml verify --quiet docs/       # Only the summary line`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}

	addRunFlags(cmd, &flags.runFlags)
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print only the summary, not the diffs")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, flags *verifyFlags) error {
	sess, err := newSession(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	result, err := runner.NewFromConfig(sess.cfg).Run(sess.ctx, sess.runOptions(args, runner.ModeVerify, &flags.runFlags))
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.quiet {
		fmt.Fprint(out, sess.styles(out).FormatVerifySummary(result.Stats))
	} else {
		rep := reporter.NewDiffReporter(reporter.Options{
			Writer:      out,
			ErrorWriter: cmd.ErrOrStderr(),
			Color:       sess.color,
			ShowSummary: true,
			WorkingDir:  sess.workDir,
		})
		if _, err := rep.Report(sess.ctx, result); err != nil {
			return fmt.Errorf("report results: %w", err)
		}
	}

	sess.logger.Debug("verify finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldMismatches, result.Stats.GoldenMismatched,
		logging.FieldDuration, result.Stats.Duration)

	if result.HasErrors() {
		return outcomeError(result, false)
	}
	if result.HasMismatches() {
		return ErrGoldenMismatch
	}
	return nil
}
