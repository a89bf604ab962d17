package specs

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
)

// UnknownStatus is reported when spec.md is missing or has no Status line
const UnknownStatus = "Unknown"

// Summary describes one feature folder
type Summary struct {
	Name   string
	Status string

	// HasTasks is false when the folder has no tasks.md
	HasTasks  bool
	Completed int
	Total     int
}

// Progress renders task completion as "done/total", or "-" without tasks.md
func (s Summary) Progress() string {
	if !s.HasTasks {
		return "-"
	}
	return fmt.Sprintf("%d/%d", s.Completed, s.Total)
}

// List summarizes every feature folder under root, in name order.
func List(fsys afero.Fs, root string) ([]Summary, error) {
	paths := config.ProjectPaths(root)
	if !fsutil.DirExists(fsys, paths.ControlDir) {
		return nil, ErrNotInitialized
	}

	names, err := existingFolders(fsys, paths.SpecsDir)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(paths.SpecsDir, name)
		s := Summary{Name: name, Status: UnknownStatus}

		if data, err := afero.ReadFile(fsys, filepath.Join(dir, "spec.md")); err == nil {
			s.Status = ReadStatus(data)
		}
		if data, err := afero.ReadFile(fsys, filepath.Join(dir, "tasks.md")); err == nil {
			s.HasTasks = true
			s.Completed, s.Total = CountTasks(data)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// ReadStatus returns the value of the first line containing "Status:",
// without surrounding whitespace or bold markers. It returns UnknownStatus
// when there is no such line or the value is empty.
func ReadStatus(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.LastIndex(line, "Status:")
		if idx == -1 {
			continue
		}
		value := strings.TrimLeft(line[idx+len("Status:"):], "* \t")
		value = strings.TrimRight(value, " \t")
		if value == "" {
			return UnknownStatus
		}
		return value
	}
	return UnknownStatus
}

var taskParser = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// CountTasks counts GitHub-style task list items, returning how many are
// checked and how many exist.
func CountTasks(data []byte) (completed, total int) {
	doc := taskParser.Parser().Parse(text.NewReader(data))
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != extast.KindTaskCheckBox {
			return ast.WalkContinue, nil
		}
		total++
		if node.(*extast.TaskCheckBox).IsChecked {
			completed++
		}
		return ast.WalkContinue, nil
	})
	return completed, total
}
