package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/runner"
)

// stdinName labels Markdown read from standard input.
const stdinName = "<stdin>"

type renderFlags struct {
	runFlags
	outDir string
	dryRun bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML",
		Long: `Render Markdown files to HTML.

Each .md or .markdown file is rendered to a .html file next to it, or
under --out-dir with the directory layout mirrored. Files whose HTML is
unchanged are not rewritten. Warnings are printed as they are found.

With "-" as the only path, Markdown is read from stdin and the HTML is
written to stdout; warnings go to stderr.`,
		Example: `  gomdhtml render                     # Render the current directory
  gomdhtml render docs/ --out-dir site
  gomdhtml render --dry-run           # Report without writing
  cat README.md | gomdhtml render -`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addRunFlags(cmd, &flags.runFlags)
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "write HTML under this directory instead of next to each source")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "render and report without writing files")

	return cmd
}

func (f *renderFlags) cliConfig() *config.Config {
	cfg := f.runFlags.cliConfig()
	cfg.OutputDir = f.outDir
	cfg.DryRun = f.dryRun
	return cfg
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	if slices.Contains(args, "-") {
		if len(args) > 1 {
			return fmt.Errorf("%w: \"-\" cannot be combined with other paths", ErrUsage)
		}
		return renderStdin(cmd, flags)
	}

	sess, err := newSession(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	result, err := runner.NewFromConfig(sess.cfg).Run(sess.ctx, sess.runOptions(args, runner.ModeRender, &flags.runFlags))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := sess.reportFindings(out, result); err != nil {
		return err
	}
	fmt.Fprint(out, sess.styles(out).FormatRenderSummary(result.Stats, sess.cfg.DryRun))

	sess.logger.Debug("render finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldDuration, result.Stats.Duration)

	return outcomeError(result, sess.cfg.Strict)
}

// renderStdin converts Markdown from stdin to HTML on stdout.
func renderStdin(cmd *cobra.Command, flags *renderFlags) error {
	sess, err := newSession(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	limit := sess.cfg.MaxFileSize
	if limit <= 0 {
		limit = config.DefaultMaxFileSize
	}

	content, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), limit+1))
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if int64(len(content)) > limit {
		return fmt.Errorf("%s: %w", stdinName, fsutil.ErrTooLarge)
	}

	outcome := runner.NewFromConfig(sess.cfg).Convert(stdinName, content, sess.cfg)

	if _, err := io.WriteString(cmd.OutOrStdout(), outcome.HTML+"\n"); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	result := runner.NewResult(runner.ModeRender, outcome)
	if err := sess.reportFindings(cmd.ErrOrStderr(), result); err != nil {
		return err
	}

	return outcomeError(result, sess.cfg.Strict)
}
