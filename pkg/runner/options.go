// Package runner renders, checks and verifies many Markdown files concurrently.
package runner

import (
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// Mode selects what the runner does with each converted file.
type Mode int

const (
	// ModeCheck converts in memory and only collects warnings.
	ModeCheck Mode = iota

	// ModeRender writes the HTML next to the source or under Config.OutputDir.
	ModeRender

	// ModeVerify compares the HTML with the sibling golden file.
	ModeVerify
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeRender:
		return "render"
	case ModeVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to lay out OutputDir. If empty, the process working directory is used.
	WorkingDir string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// in addition to Config.Ignore.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Mode selects render, check or verify behavior.
	Mode Mode

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// config returns the run configuration, falling back to defaults.
func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// extensions returns the extensions to use, defaulting if empty.
func (o Options) extensions() []string {
	if exts := o.config().Extensions; len(exts) > 0 {
		return exts
	}
	return DefaultExtensions()
}

// excludes merges the configured ignore globs with ExcludeGlobs.
func (o Options) excludes() []string {
	cfg := o.config()
	out := make([]string, 0, len(cfg.Ignore)+len(o.ExcludeGlobs))
	out = append(out, cfg.Ignore...)
	return append(out, o.ExcludeGlobs...)
}

// paths returns the paths to process, defaulting to "." if empty.
func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// ConverterOptions maps the configuration onto converter options.
func ConverterOptions(cfg *config.Config) mdhtml.Options {
	opts := mdhtml.Options{HeadingIDs: mdhtml.HeadingIDCounter}
	if cfg == nil {
		return opts
	}
	if cfg.HeadingIDs == config.HeadingIDsSlug {
		opts.HeadingIDs = mdhtml.HeadingIDSlug
	}
	opts.DetectLanguage = cfg.DetectLanguage
	opts.DelimiterRows = cfg.DelimiterRows
	return opts
}

// IgnoredKinds returns the configured ignore_warnings entries that name known kinds.
func IgnoredKinds(cfg *config.Config) []warning.Kind {
	if cfg == nil {
		return nil
	}
	kinds := make([]warning.Kind, 0, len(cfg.IgnoreWarnings))
	for _, name := range cfg.IgnoreWarnings {
		if kind, err := warning.ParseKind(name); err == nil {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// ResolveSeverity returns the configured severity for kind, or the kind's default.
func ResolveSeverity(cfg *config.Config, kind warning.Kind) config.Severity {
	if sev, ok := cfg.SeverityFor(string(kind)); ok && sev.IsValid() {
		return sev
	}
	return kind.Severity()
}
