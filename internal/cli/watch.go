package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/analysis"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

type watchFlags struct {
	renderFlags
	checkOnly bool
	debounce  time.Duration
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-render Markdown files as they change",
		Long: `Render once, then watch the given paths and re-render each Markdown file
whose content changes, until interrupted. New directories under a watched
directory are picked up automatically.`,
		Example: `  gomdhtml watch docs/ --out-dir site
  gomdhtml watch --check              # Report warnings only`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, flags)
		},
	}

	addRunFlags(cmd, &flags.runFlags)
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "write HTML under this directory instead of next to each source")
	cmd.Flags().BoolVar(&flags.checkOnly, "check", false, "report warnings without writing HTML")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", runner.DefaultDebounce,
		"wait this long for changes to settle before re-rendering")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, flags *watchFlags) error {
	sess, err := newSession(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(sess.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	sess.ctx = ctx

	mode := runner.ModeRender
	if flags.checkOnly {
		mode = runner.ModeCheck
	}

	out := cmd.OutOrStdout()
	styles := sess.styles(out)

	onResult := func(result *runner.Result) {
		if err := sess.reportFindings(out, result); err != nil {
			sess.logger.Error("report failed", logging.FieldError, err)
		}
		stamp := styles.Dim.Render(time.Now().Format(time.TimeOnly))
		if mode == runner.ModeCheck {
			totals := analysis.Analyze(result, analysis.Options{WorkingDir: sess.workDir}).Totals
			fmt.Fprintf(out, "%s %s", stamp, styles.FormatSummaryOneLine(totals))
			return
		}
		fmt.Fprintf(out, "%s %s", stamp, styles.FormatRenderSummary(result.Stats, false))
	}

	sess.logger.Info("watching for changes", logging.FieldPaths, args)

	err = runner.NewFromConfig(sess.cfg).Watch(ctx, runner.WatchOptions{
		Options:  sess.runOptions(args, mode, &flags.runFlags),
		Debounce: flags.debounce,
	}, onResult)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return nil
}
