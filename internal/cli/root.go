// Package cli provides the Cobra command structure for gomdhtml.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdhtml command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomdhtml",
		Short: "A single-pass Markdown to HTML renderer that explains what it could not render",
		Long: `gomdhtml renders Markdown to HTML in one pass and reports a warning for
every construct it had to repair: unclosed emphasis, broken headings,
unterminated code fences, incomplete links and images, and more.

Render files to HTML, check them in CI with text, table, JSON or SARIF
output, verify rendered HTML against golden files, or watch a directory
and re-render on change.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch color {
			case "auto", "always", "never":
			default:
				return fmt.Errorf("%w: invalid --color %q (valid: auto, always, never)", ErrUsage, color)
			}

			logging.SetLevel(logging.LevelFromEnv("info"))
			if debug {
				logging.SetLevel("debug")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand(info))
	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
