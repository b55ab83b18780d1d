package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

// isolated returns LoadOptions that only see tmpDir and the given environment.
func isolated(tmpDir string, environ map[string]string) LoadOptions {
	if environ == nil {
		environ = map[string]string{}
	}
	return LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		Environment:        environ,
		NonInteractive:     true,
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(t.TempDir(), nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.HeadingIDs != config.HeadingIDsCounter {
		t.Errorf("expected heading_ids %q, got %q", config.HeadingIDsCounter, result.Config.HeadingIDs)
	}
	if result.Config.MaxFileSize != config.DefaultMaxFileSize {
		t.Errorf("expected max_file_size %d, got %d", config.DefaultMaxFileSize, result.Config.MaxFileSize)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", `
heading_ids: slug
ignore_warnings:
  - weird-href
severity:
  empty-link: error
`)

	result, err := Load(context.Background(), isolated(tmpDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HeadingIDs != config.HeadingIDsSlug {
		t.Errorf("expected heading_ids %q, got %q", config.HeadingIDsSlug, result.Config.HeadingIDs)
	}
	if got := result.Config.Severity["empty-link"]; got != config.SeverityError {
		t.Errorf("expected empty-link severity error, got %q", got)
	}
	if !result.Config.IsWarningIgnored("weird-href") {
		t.Error("expected weird-href to be ignored")
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yaml", "detect_language: true\n")

	sub := filepath.Join(tmpDir, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), isolated(sub, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !result.Config.DetectLanguage {
		t.Error("expected detect_language from parent directory config")
	}
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", "heading_ids: slug\n")

	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %q", path)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", "heading_ids: slug\noutput_dir: project\n")
	customPath := writeConfig(t, tmpDir, "custom.yml", "output_dir: site\n")

	opts := isolated(tmpDir, nil)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.OutputDir != "site" {
		t.Errorf("expected output_dir %q, got %q", "site", result.Config.OutputDir)
	}
	if result.Config.HeadingIDs != config.HeadingIDsSlug {
		t.Errorf("expected project heading_ids to survive, got %q", result.Config.HeadingIDs)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != customPath {
		t.Errorf("expected explicit config loaded last, got %v", result.LoadedFrom)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", "heading_ids: slug\n")

	result, err := Load(context.Background(), isolated(tmpDir, map[string]string{
		"GOMDHTML_HEADING_IDS":     "counter",
		"GOMDHTML_IGNORE_WARNINGS": "weird-href, empty-link",
		"GOMDHTML_JOBS":            "3",
		"GOMDHTML_STRICT":          "true",
		"GOMDHTML_DELIMITER_ROWS":  "true",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HeadingIDs != config.HeadingIDsCounter {
		t.Errorf("expected env to override heading_ids, got %q", result.Config.HeadingIDs)
	}
	if got := strings.Join(result.Config.IgnoreWarnings, ","); got != "weird-href,empty-link" {
		t.Errorf("unexpected ignore_warnings %q", got)
	}
	if result.Config.Jobs != 3 {
		t.Errorf("expected jobs 3, got %d", result.Config.Jobs)
	}
	if !result.Config.Strict {
		t.Error("expected strict from env")
	}
	if !result.Config.DelimiterRows {
		t.Error("expected delimiter_rows from env")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), isolated(t.TempDir(), map[string]string{
		"GOMDHTML_JOBS": "many",
	}))
	if err == nil {
		t.Fatal("expected error for non-numeric GOMDHTML_JOBS")
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", "heading_ids: counter\n")

	opts := isolated(tmpDir, map[string]string{"GOMDHTML_JOBS": "2"})
	opts.CLIConfig = &config.Config{
		HeadingIDs: config.HeadingIDsSlug,
		Jobs:       8,
		DryRun:     true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.HeadingIDs != config.HeadingIDsSlug {
		t.Errorf("expected heading_ids %q (CLI override), got %q", config.HeadingIDsSlug, result.Config.HeadingIDs)
	}
	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}
	if !result.Config.DryRun {
		t.Error("expected dry-run true (CLI override)")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad heading style", "heading_ids: numbered\n"},
		{"bad severity", "severity:\n  empty-link: fatal\n"},
		{"bad glob", "ignore:\n  - \"[\"\n"},
		{"unknown key", "flavor: gfm\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, ".gomdhtml.yml", tt.content)

			if _, err := Load(context.Background(), isolated(tmpDir, nil)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_UnknownKindWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, ".gomdhtml.yml", "ignore_warnings:\n  - not-a-kind\n")

	result, err := Load(context.Background(), isolated(tmpDir, nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "not-a-kind") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning about unknown kind, got %v", result.Warnings)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(t.TempDir(), nil)); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := MergeAll(
		config.NewConfig(),
		&config.Config{Severity: map[string]config.Severity{"empty-link": config.SeverityError}},
		&config.Config{Severity: map[string]config.Severity{"weird-href": config.SeverityWarning}},
	)

	if len(merged.Severity) != 2 {
		t.Errorf("expected severity maps to merge, got %v", merged.Severity)
	}
	if merged.HeadingIDs != config.HeadingIDsCounter {
		t.Errorf("expected default heading_ids to survive, got %q", merged.HeadingIDs)
	}
	if MergeAll() != nil {
		t.Error("expected nil for no configs")
	}
}
