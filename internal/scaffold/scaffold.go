// Package scaffold creates the .specify control directory and writes the
// built-in documents into it.
package scaffold

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/templates"
	"github.com/sfce-dev/sfce/internal/ui"
)

// Result describes what Create did.
type Result struct {
	// Skipped is set when .specify already existed and force was not given.
	// Nothing was written in that case.
	Skipped bool

	Dirs  []string // created directories, relative to the project root
	Files []string // written files, relative to the project root
}

// Create lays out .specify under root. An existing control directory is left
// alone unless force is set; with force, directories are kept and every
// built-in document is rewritten. Files sfce does not own are never removed.
func Create(fsys afero.Fs, root string, force bool, r ui.Reporter) (*Result, error) {
	paths := config.ProjectPaths(root)

	if fsutil.Exists(fsys, paths.ControlDir) && !force {
		r.Warning(fmt.Sprintf("%s already exists in %s", artifact.ControlDirName, root))
		r.Info("Use --force to overwrite")
		return &Result{Skipped: true}, nil
	}

	result := &Result{}

	for _, dir := range paths.Subdirs() {
		if err := fsys.MkdirAll(dir, fsutil.DirPerm); err != nil {
			return result, fmt.Errorf("failed to create %s: %w", paths.Rel(dir), err)
		}
		rel := paths.Rel(dir)
		result.Dirs = append(result.Dirs, rel)
		r.Success("Created " + rel)
	}

	for _, doc := range templates.Documents() {
		content, err := templates.Content(doc)
		if err != nil {
			return result, err
		}

		path := filepath.Join(paths.ControlDir, filepath.FromSlash(doc.Path))
		if err := fsutil.WriteFile(fsys, path, content, fsutil.FilePerm); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", paths.Rel(path), err)
		}
		rel := paths.Rel(path)
		result.Files = append(result.Files, rel)
		r.Success("Created " + rel)
	}

	if err := markScriptsExecutable(fsys, paths.ScriptsDir); err != nil {
		return result, err
	}

	slog.Debug("scaffold complete", "root", root, "dirs", len(result.Dirs), "files", len(result.Files))
	return result, nil
}

// markScriptsExecutable chmods every *.sh in dir, including ones a user
// added after a previous init.
func markScriptsExecutable(fsys afero.Fs, dir string) error {
	scripts, err := fsutil.MatchingFiles(fsys, dir, "*.sh")
	if err != nil {
		return fmt.Errorf("failed to list scripts: %w", err)
	}
	for _, name := range scripts {
		if err := fsutil.MakeExecutable(fsys, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to make %s executable: %w", name, err)
		}
	}
	return nil
}
