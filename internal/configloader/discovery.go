package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	gap "github.com/muesli/go-app-paths"
)

// appName scopes user and system configuration directories.
const appName = "gomdhtml"

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/gomdhtml/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/gomdhtml/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.gomdhtml.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".gomdhtml.yml",
	".gomdhtml.yaml",
	"gomdhtml.yml",
	"gomdhtml.yaml",
	".gomdhtml.json",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
// It searches for:
//   - System config at /etc/gomdhtml/config.{yaml,yml}
//   - User config in the platform config directory for gomdhtml
//   - Project config by searching upward from workDir for .gomdhtml.{yml,yaml}
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{
		System: findSystemConfig(),
		User:   findUserConfig(),
	}

	projectConfig, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = projectConfig

	return paths, nil
}

// findSystemConfig returns the path to the system-wide config file, if it exists.
func findSystemConfig() string {
	if runtime.GOOS != "windows" {
		if path := findConfigInDir(filepath.Join("/etc", appName)); path != "" {
			return path
		}
	}

	dirs, err := gap.NewScope(gap.System, appName).ConfigDirs()
	if err != nil {
		return ""
	}
	return findConfigInDirs(dirs)
}

// findUserConfig returns the path to the user-level config file, if it exists.
// XDG_CONFIG_HOME takes precedence over the platform default.
func findUserConfig() string {
	var dirs []string
	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append(dirs, filepath.Join(c, appName))
	}

	scopeDirs, err := gap.NewScope(gap.User, appName).ConfigDirs()
	if err == nil {
		dirs = append(dirs, scopeDirs...)
	}

	return findConfigInDirs(dirs)
}

// UserConfigPath returns where the user-level config file lives, whether or not it exists.
func UserConfigPath() (string, error) {
	path, err := gap.NewScope(gap.User, appName).ConfigPath("config.yaml")
	if err != nil {
		return "", fmt.Errorf("resolve user config path: %w", err)
	}
	return path, nil
}

// findConfigInDirs returns the first config file found in dirs.
func findConfigInDirs(dirs []string) string {
	for _, dir := range dirs {
		if path := findConfigInDir(dir); path != "" {
			return path
		}
	}
	return ""
}

// findConfigInDir looks for config files in the given directory.
// Returns the path to the first found file, or empty string if none.
func findConfigInDir(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config file.
// Returns the path to the first config file found, or empty string if none.
// Stops at VCS roots, the home directory, or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}

		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
