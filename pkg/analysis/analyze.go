// Package analysis aggregates runner results into views shared by the reporters.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/runner"
	"github.com/yaklabco/gomdhtml/pkg/source"
	"github.com/yaklabco/gomdhtml/pkg/warning"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// RelativePath converts an absolute path to a path relative to workDir.
// If workDir is empty or conversion fails, it returns the original path.
func RelativePath(absPath, workDir string) string {
	if workDir == "" || !filepath.IsAbs(absPath) {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return relPath
}

// SourceLine returns the text of a 1-based line, or "" when unknown.
func SourceLine(snapshot *source.Snapshot, line int) string {
	if snapshot == nil || line <= 0 {
		return ""
	}
	return strings.TrimRight(string(snapshot.LineContent(line)), "\r")
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	kindMap   map[warning.Kind]*KindAnalysis
	fileMap   map[string]*FileAnalysis
	kindFiles map[warning.Kind]map[string]bool
	fileKinds map[string]map[warning.Kind]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[warning.Kind]*KindAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		kindFiles: make(map[warning.Kind]map[string]bool),
		fileKinds: make(map[string]map[warning.Kind]bool),
	}
}

// countSeverity updates both the totals and the file counters.
func countSeverity(severity config.Severity, totals *Totals, fa *FileAnalysis) {
	switch severity {
	case config.SeverityError:
		totals.Errors++
		fa.Errors++
	case config.SeverityInfo:
		totals.Infos++
		fa.Infos++
	default:
		totals.Warns++
		fa.Warns++
	}
}

func (ctx *analysisContext) file(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileKinds[path] = make(map[warning.Kind]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) kind(f runner.Finding) *KindAnalysis {
	if _, ok := ctx.kindMap[f.Kind]; !ok {
		ka := &KindAnalysis{
			Kind:     string(f.Kind),
			Severity: string(f.Severity),
		}
		if info, ok := f.Kind.Info(); ok {
			ka.Description = info.Description
		}
		ctx.kindMap[f.Kind] = ka
		ctx.kindFiles[f.Kind] = make(map[string]bool)
	}
	return ctx.kindMap[f.Kind]
}

func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Warnings == 0 {
			continue
		}
		for k := range ctx.fileKinds[path] {
			fa.Kinds = append(fa.Kinds, string(k))
		}
		slices.Sort(fa.Kinds)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the findings to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		displayPath := RelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.Failures = append(report.Failures, FailureEntry{
				FilePath: displayPath,
				Error:    file.Error.Error(),
			})
			continue
		}

		report.Totals.Files++
		report.Totals.Suppressed += file.Suppressed
		report.Totals.BytesOut += int64(len(file.HTML))
		if file.Info != nil {
			report.Totals.BytesIn += file.Info.Size
		}
		if len(file.Findings) > 0 {
			report.Totals.FilesWithWarnings++
		}

		fa := ctx.file(displayPath)

		for _, f := range file.Findings {
			report.Totals.Warnings++
			countSeverity(f.Severity, &report.Totals, fa)

			fa.Warnings++
			ctx.fileKinds[displayPath][f.Kind] = true

			ka := ctx.kind(f)
			ka.Warnings++
			ctx.kindFiles[f.Kind][displayPath] = true

			if opts.IncludeFindings {
				report.Findings = append(report.Findings, FindingEntry{
					FilePath: displayPath,
					Kind:     string(f.Kind),
					Severity: string(f.Severity),
					Message:  f.Message,
					Line:     f.Line,
					Source:   SourceLine(file.Snapshot, f.Line),
				})
			}
		}
	}

	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Kind, right.Kind)
		case SortBySeverity:
			result := cmp.Compare(config.Severity(right.Severity).Rank(), config.Severity(left.Severity).Rank())
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(left.Kind, right.Kind)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Warnings, right.Warnings)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Kind, right.Kind)
			}
			return result
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			// Errors first, then warnings, then infos.
			result := cmp.Compare(right.Errors, left.Errors)
			if result == 0 {
				result = cmp.Compare(right.Warns, left.Warns)
			}
			if result == 0 {
				result = cmp.Compare(right.Warnings, left.Warnings)
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.Warnings, right.Warnings)
			if desc {
				result = -result
			}
			if result == 0 {
				result = cmp.Compare(left.Path, right.Path)
			}
			return result
		}
	})
}
