// Package doctor verifies that a project is ready for the spec-driven
// workflow: git is available, the .specify tree is complete and the installed
// command documents are well formed.
package doctor

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/schema"
)

// RequirementType represents the kind of check
type RequirementType string

const (
	TypeCommand  RequirementType = "command"  // Binary must exist on PATH
	TypeGitRepo  RequirementType = "git-repo" // Root must be inside a git work tree
	TypeDir      RequirementType = "dir"      // Directory must exist
	TypeFile     RequirementType = "file"     // File must exist
	TypeDocument RequirementType = "document" // Command document must have valid frontmatter
)

// Severity decides how an unsatisfied requirement is reported
type Severity int

const (
	// SeverityWarning is reported but does not fail the check
	SeverityWarning Severity = iota
	// SeverityError is reported as an error but does not fail the check
	SeverityError
	// SeverityFatal fails the check
	SeverityFatal
)

// Requirement is one thing the project needs
type Requirement struct {
	Type     RequirementType
	Value    string // Command name or absolute path
	Label    string // Display name, e.g. ".specify/memory"
	Severity Severity
}

// VerifyResult contains the result of verifying a requirement
type VerifyResult struct {
	Requirement Requirement
	Satisfied   bool
	Message     string
}

// Checker verifies requirements for one project
type Checker struct {
	Fs   afero.Fs
	Root string

	// LookPath and Output default to os/exec; tests replace them
	LookPath func(file string) (string, error)
	Output   func(dir, name string, args ...string) (string, error)
}

// New returns a Checker using the real PATH and process execution.
func New(fsys afero.Fs, root string) *Checker {
	return &Checker{
		Fs:       fsys,
		Root:     root,
		LookPath: exec.LookPath,
		Output:   runOutput,
	}
}

func runOutput(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// Requirements lists what a healthy project needs, in report order.
func (c *Checker) Requirements() []Requirement {
	paths := config.ProjectPaths(c.Root)

	reqs := []Requirement{
		{Type: TypeCommand, Value: "git", Label: "Git", Severity: SeverityFatal},
		{Type: TypeGitRepo, Value: c.Root, Label: "Git repository", Severity: SeverityWarning},
		{Type: TypeDir, Value: paths.ControlDir, Label: artifact.ControlDirName, Severity: SeverityFatal},
	}
	for _, dir := range paths.Subdirs() {
		reqs = append(reqs, Requirement{
			Type:     TypeDir,
			Value:    dir,
			Label:    filepath.ToSlash(paths.Rel(dir)),
			Severity: SeverityError,
		})
	}
	reqs = append(reqs, Requirement{
		Type:     TypeFile,
		Value:    filepath.Join(paths.MemoryDir, artifact.ConstitutionFilename),
		Label:    "Constitution",
		Severity: SeverityWarning,
	})

	commandsDir := config.RichAssistant().PathsIn(c.Root).CommandsDir
	if names, err := fsutil.MatchingFiles(c.Fs, commandsDir, artifact.CommandPattern); err == nil {
		for _, name := range names {
			reqs = append(reqs, Requirement{
				Type:     TypeDocument,
				Value:    filepath.Join(commandsDir, name),
				Label:    "/" + strings.TrimSuffix(name, filepath.Ext(name)),
				Severity: SeverityWarning,
			})
		}
	}
	return reqs
}

// Verify checks if a requirement is satisfied
func (c *Checker) Verify(req Requirement) VerifyResult {
	result := VerifyResult{Requirement: req}

	switch req.Type {
	case TypeCommand:
		_, err := c.LookPath(req.Value)
		result.Satisfied = err == nil
		if !result.Satisfied {
			result.Message = fmt.Sprintf("%s not installed", req.Label)
			break
		}
		result.Message = fmt.Sprintf("%s installed", req.Label)
		if version, err := c.Output(c.Root, req.Value, "--version"); err == nil {
			if fields := strings.Fields(version); len(fields) >= 3 {
				result.Message += ": v" + fields[2]
			}
		}

	case TypeGitRepo:
		_, err := c.Output(req.Value, "git", "rev-parse", "--git-dir")
		result.Satisfied = err == nil
		if result.Satisfied {
			result.Message = "Inside a Git repository"
		} else {
			result.Message = "Not inside a Git repository"
		}

	case TypeDir:
		result.Satisfied = fsutil.DirExists(c.Fs, req.Value)
		if result.Satisfied {
			result.Message = req.Label + " directory exists"
		} else {
			result.Message = req.Label + " missing"
		}

	case TypeFile:
		result.Satisfied = fsutil.Exists(c.Fs, req.Value)
		if result.Satisfied {
			result.Message = req.Label + " exists"
		} else {
			result.Message = filepath.Base(req.Value) + " missing"
		}

	case TypeDocument:
		result.Satisfied, result.Message = c.verifyDocument(req)

	default:
		result.Satisfied = true // Unknown types pass by default
	}

	return result
}

func (c *Checker) verifyDocument(req Requirement) (bool, string) {
	data, err := afero.ReadFile(c.Fs, req.Value)
	if err != nil {
		return false, fmt.Sprintf("%s unreadable: %v", req.Label, err)
	}
	if !schema.HasFrontmatter(data) {
		return false, req.Label + " has no frontmatter"
	}
	cmd, err := schema.ParseClaudeCommand(data)
	if err != nil {
		return false, fmt.Sprintf("%s: %v", req.Label, err)
	}
	if err := cmd.Validate(); err != nil {
		return false, fmt.Sprintf("%s: %v", req.Label, err)
	}
	return true, req.Label + " is valid"
}

// VerifyAll checks all requirements and returns results
func (c *Checker) VerifyAll(reqs []Requirement) []VerifyResult {
	results := make([]VerifyResult, len(reqs))
	for i, req := range reqs {
		results[i] = c.Verify(req)
	}
	return results
}

// CountSpecs returns the number of feature folders, or -1 when the specs
// directory is missing.
func (c *Checker) CountSpecs() int {
	dirs, err := fsutil.Subdirs(c.Fs, config.ProjectPaths(c.Root).SpecsDir)
	if err != nil {
		return -1
	}
	return len(dirs)
}

// HasFatal returns true if any fatal requirement is not satisfied
func HasFatal(results []VerifyResult) bool {
	for _, r := range results {
		if !r.Satisfied && r.Requirement.Severity == SeverityFatal {
			return true
		}
	}
	return false
}
