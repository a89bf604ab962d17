// Package fsutil provides the directory listing, copy, write and chmod helpers
// sfce builds on. Every helper takes an afero.Fs so callers can run against the
// real filesystem or an in-memory one.
package fsutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/afero"
)

const (
	// DirPerm is used for every directory sfce creates
	DirPerm os.FileMode = 0755
	// FilePerm is used for documents sfce writes or copies
	FilePerm os.FileMode = 0644
	// ExecPerm is applied to generated shell scripts
	ExecPerm os.FileMode = 0755
)

// excludedNames are skipped during tree copies.
var excludedNames = map[string]bool{
	".git":      true,
	".DS_Store": true,
}

// DirExists reports whether path exists and is a directory.
// Errors other than "not found" are treated as absent.
func DirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// Exists reports whether anything exists at path
func Exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}

// Subdirs returns the names of the directories directly under dir, sorted.
func Subdirs(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// MatchingFiles returns the regular files directly under dir whose names match
// pattern (filepath.Match syntax), sorted.
func MatchingFiles(fsys afero.Fs, dir, pattern string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.Mode().IsRegular() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, perm); err != nil {
		return err
	}
	slog.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

// MakeExecutable sets rwxr-xr-x on path. On Windows this is a no-op because
// Windows does not support Unix-style permission bits.
func MakeExecutable(fsys afero.Fs, path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fsys.Chmod(path, ExecPerm)
}

// CopyFile copies a single file between filesystems. The destination is
// overwritten; executable source files stay executable.
func CopyFile(src afero.Fs, srcPath string, dst afero.Fs, dstPath string) error {
	data, err := afero.ReadFile(src, srcPath)
	if err != nil {
		return err
	}

	info, err := src.Stat(srcPath)
	if err != nil {
		return err
	}

	perm := FilePerm
	if info.Mode().Perm()&0111 != 0 {
		perm = ExecPerm
	}

	if err := WriteFile(dst, dstPath, data, perm); err != nil {
		return err
	}
	// WriteFile keeps the old mode of an existing file
	if perm == ExecPerm {
		return MakeExecutable(dst, dstPath)
	}
	return nil
}

// CopyMatching copies the files under srcDir matching pattern into dstDir
// (non-recursive) and returns the copied names.
func CopyMatching(src afero.Fs, srcDir, pattern string, dst afero.Fs, dstDir string) ([]string, error) {
	names, err := MatchingFiles(src, srcDir, pattern)
	if err != nil {
		return nil, err
	}
	if err := dst.MkdirAll(dstDir, DirPerm); err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := CopyFile(src, filepath.Join(srcDir, name), dst, filepath.Join(dstDir, name)); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", name, err)
		}
	}
	return names, nil
}

// CopyTree recursively copies srcDir into dstDir and returns the number of
// files copied. Existing destination files are overwritten; nothing is deleted.
func CopyTree(src afero.Fs, srcDir string, dst afero.Fs, dstDir string) (int, error) {
	if err := dst.MkdirAll(dstDir, DirPerm); err != nil {
		return 0, err
	}

	entries, err := afero.ReadDir(src, srcDir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		if entry.IsDir() {
			n, err := CopyTree(src, srcPath, dst, dstPath)
			count += n
			if err != nil {
				return count, err
			}
		} else if entry.Mode().IsRegular() {
			if err := CopyFile(src, srcPath, dst, dstPath); err != nil {
				return count, fmt.Errorf("failed to copy %s: %w", srcPath, err)
			}
			count++
		}
		// Skip symlinks and other special files during copy.
	}

	slog.Debug("copied tree", "src", srcDir, "dst", dstDir, "files", count)
	return count, nil
}

// ReplaceTree removes dstDir and copies srcDir into its place.
func ReplaceTree(src afero.Fs, srcDir string, dst afero.Fs, dstDir string) (int, error) {
	if err := dst.RemoveAll(dstDir); err != nil {
		return 0, fmt.Errorf("failed to remove %s: %w", dstDir, err)
	}
	return CopyTree(src, srcDir, dst, dstDir)
}
