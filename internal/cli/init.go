package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

//nolint:gochecknoglobals // Guards the one-time template provider hookup.
var registerKindInfo sync.Once

type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gomdhtml configuration file",
		Long: `Create a commented .gomdhtml.yml in the current directory. Edit it to
change heading ids, suppress warning kinds, adjust severities or set an
output directory.`,
		Example: `  gomdhtml init                      # Minimal .gomdhtml.yml
  gomdhtml init --full               # Every setting and warning kind
  gomdhtml init --format json        # .gomdhtml.json instead
  gomdhtml init -o ci/gomdhtml.yml --force`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every setting and warning kind")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml, json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .gomdhtml.yml or .gomdhtml.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q (valid: yaml, json)", ErrUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gomdhtml.yml"
		if flags.format == formatJSON {
			outputPath = ".gomdhtml.json"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: %s already exists; use --force to overwrite", ErrUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	registerKindInfo.Do(func() { config.DefaultKindInfoProvider = kindInfos })

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'gomdhtml kinds' to see every warning kind")

	return nil
}

// kindInfos adapts the warning kind table for config templates.
func kindInfos() []config.KindInfo {
	kinds := warning.Kinds()
	out := make([]config.KindInfo, len(kinds))
	for i, k := range kinds {
		out[i] = config.KindInfo{
			Kind:        string(k.Kind),
			Description: k.Description,
			Severity:    k.Severity,
		}
	}
	return out
}
