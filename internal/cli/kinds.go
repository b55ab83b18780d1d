package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

const formatJSON = "json"

// kindInfo is one warning kind in JSON output.
type kindInfo struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	Tags        []string `json:"tags"`
}

func newKindsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the warning kinds gomdhtml reports",
		Long: `List every warning kind with its description and default severity.

Kind names are what ignore_warnings, --ignore-warnings and the severity
map in the configuration file accept.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatJSON:
				return writeKindsJSON(cmd.OutOrStdout(), warning.Kinds())
			case "text":
				writeKindsText(cmd.OutOrStdout(), warning.Kinds())
				return nil
			default:
				return fmt.Errorf("%w: invalid format %q (valid: text, json)", ErrUsage, format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json")

	return cmd
}

func writeKindsText(w io.Writer, kinds []warning.KindInfo) {
	logger := logging.NewInteractive(w)

	for _, info := range kinds {
		logger.Info(string(info.Kind),
			logging.FieldSeverity, info.Severity,
			logging.FieldTags, strings.Join(info.Tags, ","),
			logging.FieldDescription, info.Description,
		)
	}
}

func writeKindsJSON(w io.Writer, kinds []warning.KindInfo) error {
	infos := make([]kindInfo, 0, len(kinds))
	for _, info := range kinds {
		infos = append(infos, kindInfo{
			Kind:        string(info.Kind),
			Description: info.Description,
			Severity:    string(info.Severity),
			Message:     info.Kind.Message(),
			Tags:        info.Tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encode kinds: %w", err)
	}
	return nil
}
