package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sfce-dev/sfce/internal/artifact"
)

// Following the dot-config specification: https://dot-config.github.io/
// User config: ~/.config/sfce/config.yaml (or $XDG_CONFIG_HOME/sfce/config.yaml)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "sfce"
	// ConfigFile is the settings filename inside ConfigDir
	ConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides, e.g. SFCE_ASSETS_DIR
	EnvPrefix = "SFCE"

	// KeyAssetsDir points at a directory holding commands/, agents/ and skills/
	KeyAssetsDir = "assets_dir"
	// KeyVerbose enables debug logging
	KeyVerbose = "verbose"

	// AssetsDirName is the default asset bundle location next to the executable
	AssetsDirName = "assets"
)

// Paths holds the control-directory layout of one project
type Paths struct {
	// Root is the project root every other path is anchored to
	Root string

	ControlDir   string // <root>/.specify
	MemoryDir    string
	ScriptsDir   string
	SpecsDir     string
	TemplatesDir string
}

// ProjectPaths returns the control-directory layout under root
func ProjectPaths(root string) Paths {
	control := filepath.Join(root, artifact.ControlDirName)
	return Paths{
		Root:         root,
		ControlDir:   control,
		MemoryDir:    filepath.Join(control, artifact.MemoryDirName),
		ScriptsDir:   filepath.Join(control, artifact.ScriptsDirName),
		SpecsDir:     filepath.Join(control, artifact.SpecsDirName),
		TemplatesDir: filepath.Join(control, artifact.TemplatesDirName),
	}
}

// Subdirs returns the four control subdirectories in creation order
func (p Paths) Subdirs() []string {
	return []string{p.MemoryDir, p.ScriptsDir, p.SpecsDir, p.TemplatesDir}
}

// Rel returns path relative to the project root, falling back to path itself
func (p Paths) Rel(path string) string {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// UserConfigPath returns ~/.config/sfce/config.yaml, honoring XDG_CONFIG_HOME
func UserConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile), nil
}

// Load wires defaults, environment overrides and the optional config file into v.
// An explicit file must exist; the default user file is optional.
func Load(v *viper.Viper, explicitFile string) error {
	v.SetDefault(KeyAssetsDir, "")
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", explicitFile, err)
		}
		return nil
	}

	path, err := UserConfigPath()
	if err != nil {
		// No home directory; run on defaults and environment
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// AssetsDir resolves the asset source directory: configured value first, then
// the bundle shipped next to the executable.
func AssetsDir(v *viper.Viper) string {
	if dir := v.GetString(KeyAssetsDir); dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}
		return dir
	}
	return DefaultAssetsDir()
}

// DefaultAssetsDir returns <executable dir>/assets, or "" when the executable
// cannot be located.
func DefaultAssetsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), AssetsDirName)
}
