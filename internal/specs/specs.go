// Package specs manages the numbered feature folders under .specify/specs.
package specs

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/templates"
)

var (
	// ErrInvalidName is returned for feature names that are not lowercase
	// words joined by hyphens
	ErrInvalidName = errors.New("name must be lowercase with hyphens only")

	// ErrNotInitialized is returned when the project has no .specify directory
	ErrNotInitialized = errors.New("no .specify directory found, run 'sfce init' first")
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateName checks a feature name against ^[a-z][a-z0-9-]*$.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// NextNumber returns the number for a new feature folder given the existing
// folder names: one more than the largest numeric prefix, zero-padded to three
// digits. Names without a numeric prefix are ignored.
func NextNumber(names []string) string {
	highest := 0
	for _, name := range names {
		n, ok := numericPrefix(name)
		if ok && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%03d", highest+1)
}

// numericPrefix parses the run before the first hyphen (the whole name when
// there is none) as a decimal number.
func numericPrefix(name string) (int, bool) {
	prefix, _, _ := strings.Cut(name, "-")
	if prefix == "" {
		return 0, false
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Feature is a created feature folder
type Feature struct {
	ID    string // e.g. "008-lead-scoring"
	Dir   string
	Files []string // file names written into Dir
}

// Create makes the next numbered folder for name under root's specs
// directory and fills it from the project templates, replacing the feature
// name placeholder. The name is validated before anything is written.
func Create(fsys afero.Fs, root, name string) (*Feature, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	paths := config.ProjectPaths(root)
	if !fsutil.DirExists(fsys, paths.ControlDir) {
		return nil, ErrNotInitialized
	}

	existing, err := existingFolders(fsys, paths.SpecsDir)
	if err != nil {
		return nil, err
	}

	feature := &Feature{ID: NextNumber(existing) + "-" + name}
	feature.Dir = filepath.Join(paths.SpecsDir, feature.ID)
	if err := fsys.MkdirAll(feature.Dir, fsutil.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", feature.ID, err)
	}

	for _, f := range templates.FeatureFiles() {
		tmpl := filepath.Join(paths.TemplatesDir, f.Template)
		data, err := afero.ReadFile(fsys, tmpl)
		if err != nil {
			slog.Debug("template missing, skipping", "path", tmpl, "err", err)
			continue
		}
		data = bytes.ReplaceAll(data, []byte(artifact.FeatureNamePlaceholder), []byte(name))
		if err := fsutil.WriteFile(fsys, filepath.Join(feature.Dir, f.Name), data, fsutil.FilePerm); err != nil {
			return feature, fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
		feature.Files = append(feature.Files, f.Name)
	}

	return feature, nil
}

func existingFolders(fsys afero.Fs, specsDir string) ([]string, error) {
	if !fsutil.DirExists(fsys, specsDir) {
		return nil, nil
	}
	names, err := fsutil.Subdirs(fsys, specsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list specs: %w", err)
	}
	return names, nil
}
