package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/internal/cli"
	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
)

var testInfo = cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "gomdhtml", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"render", "check", "verify", "watch", "kinds", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "auto", cmd.PersistentFlags().Lookup("color").DefValue)
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	shared := []string{"jobs", "ignore", "ignore-warnings", "heading-ids", "detect-language", "delimiter-rows", "follow-symlinks", "strict"}

	tests := []struct {
		command string
		flags   []string
	}{
		{"render", append([]string{"out-dir", "dry-run"}, shared...)},
		{"check", append([]string{"format", "no-context", "compact", "per-file", "html", "summary-order"}, shared...)},
		{"verify", append([]string{"quiet"}, shared...)},
		{"watch", append([]string{"out-dir", "check", "debounce"}, shared...)},
		{"kinds", []string{"format"}},
		{"init", []string{"force", "full", "format", "output"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			sub, _, err := cli.NewRootCommand(testInfo).Find([]string{tt.command})
			require.NoError(t, err)
			for _, name := range tt.flags {
				assert.NotNil(t, sub.Flags().Lookup(name), "flag %q", name)
			}
		})
	}
}

func TestCheckFormatFlagListsFormats(t *testing.T) {
	t.Parallel()

	check, _, err := cli.NewRootCommand(testInfo).Find([]string{"check"})
	require.NoError(t, err)

	flag := check.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
	for _, format := range []string{"text", "table", "json", "sarif", "summary"} {
		assert.Contains(t, flag.Usage, format)
	}
}

func TestFileCommandsAcceptArbitraryArgs(t *testing.T) {
	t.Parallel()

	root := cli.NewRootCommand(testInfo)
	for _, name := range []string{"render", "check", "verify", "watch"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.NoError(t, sub.Args(sub, []string{"a.md", "docs/"}), name)
	}

	kinds, _, err := root.Find([]string{"kinds"})
	require.NoError(t, err)
	err = kinds.Args(kinds, []string{"extra"})
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gomdhtml")
	assert.Contains(t, out.String(), "version=1.2.3")
	assert.Contains(t, out.String(), "commit=abc123")
	assert.Contains(t, out.String(), "built=2024-01-01")
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"check", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())

	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "gomdhtml check [paths...]")
	assert.Contains(t, help, "Examples:")
	assert.Contains(t, help, "Flags:")
	assert.Contains(t, help, "--format")
	assert.Contains(t, help, "Global Flags:")
	assert.Contains(t, help, "--color")
}

func TestInvalidColorIsUsageError(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"kinds", "--color", "sometimes"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"check", "--no-such-flag"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"warnings", cli.ErrWarningsFound, cli.ExitFindings},
		{"golden mismatch", fmt.Errorf("verify: %w", cli.ErrGoldenMismatch), cli.ExitFindings},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: parse", cli.ErrConfig), cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "jobs", Message: "bad"}, cli.ExitConfigError},
		{"not exist", fmt.Errorf("stat: %w", fs.ErrNotExist), cli.ExitIOError},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, cli.ExitIOError},
		{"too large", fmt.Errorf("a.md: %w", fsutil.ErrTooLarge), cli.ExitIOError},
		{"joined io", errors.Join(fmt.Errorf("a.md: %w", fsutil.ErrNotFound)), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestIsFindingsError(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsFindingsError(cli.ErrWarningsFound))
	assert.True(t, cli.IsFindingsError(fmt.Errorf("x: %w", cli.ErrGoldenMismatch)))
	assert.False(t, cli.IsFindingsError(errors.New("boom")))
	assert.False(t, cli.IsFindingsError(nil))
}
