// Package paths provides centralized path handling for hilite.
// It locates the XDG configuration and state directories and derives
// input and output file names.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hilite
	EnvConfigDir = "HILITE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for hilite
	EnvStateDir = "HILITE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for hilite-specific files
	AppDirName = "hilite"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "hilite.log"

	// IndexFileName is the page written when highlighting several files
	IndexFileName = "index.html"

	// OutputExt is the extension of highlighted files
	OutputExt = ".html"

	// LegacyConfigFile is the properties file older installs carry
	LegacyConfigFile = "Hilite.Configuration"
)

// ProjectConfigFiles lists the project configuration files in lookup order
var ProjectConfigFiles = []string{"hilite.toml", ".hilite.toml", "hilite.yaml", LegacyConfigFile}

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindProjectConfig returns the first project configuration file present
// in dir, or "" when there is none.
func FindProjectConfig(fs afero.Fs, dir string) string {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ResolveInput finds the file to read for name. A name that does not exist
// and has no extension is retried with defaultExt.
func ResolveInput(fs afero.Fs, name, defaultExt string) (string, error) {
	name = ExpandHome(name)

	info, err := fs.Stat(name)
	if err == nil {
		if info.IsDir() {
			return "", errors.New(errors.ErrInvalidInput, "input is a directory").
				WithDetail("path", name)
		}
		return name, nil
	}

	if filepath.Ext(name) == "" && defaultExt != "" {
		if !strings.HasPrefix(defaultExt, ".") {
			defaultExt = "." + defaultExt
		}
		withExt := name + defaultExt
		if info, err := fs.Stat(withExt); err == nil && !info.IsDir() {
			return withExt, nil
		}
	}

	return "", errors.New(errors.ErrFileNotFound, "input file not found").
		WithDetail("path", name)
}

// OutputName returns the highlighted file name for input: its base name
// with the extension replaced by .html
func OutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + OutputExt
}

// OutputPath returns where the highlighted version of input is written.
// An explicit output name wins over the derived one; a relative result is
// placed in dir, or next to the input when dir is empty.
func OutputPath(input, dir, output string) string {
	name := output
	if name == "" {
		name = OutputName(input)
	}
	name = ExpandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(ExpandHome(dir), name)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
