// Package assets installs the assistant-facing files: slash commands, agents,
// skills and the workflow document.
package assets

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/schema"
	"github.com/sfce-dev/sfce/internal/templates"
	"github.com/sfce-dev/sfce/internal/ui"
)

// Installer copies assets from a source bundle into a project.
//
// The bundle is a directory holding commands/, agents/ and skills/. Any of
// them may be missing; a missing bundle behaves like an empty one.
type Installer struct {
	// Fs is the project filesystem
	Fs afero.Fs
	// Root is the project root
	Root string

	// Source is the filesystem the bundle lives on
	Source afero.Fs
	// SourceDir is the bundle directory; empty means no bundle
	SourceDir string

	Reporter ui.Reporter
}

// New returns an Installer reading the bundle at sourceDir from the same
// filesystem as the project.
func New(fsys afero.Fs, root, sourceDir string, r ui.Reporter) *Installer {
	return &Installer{
		Fs:        fsys,
		Root:      root,
		Source:    fsys,
		SourceDir: sourceDir,
		Reporter:  r,
	}
}

// Setup configures the project for an assistant. The rich assistant gets the
// commands, agents and skills trees; every assistant gets the workflow
// document, or one prompt per built-in command when it has no combined file.
func (in *Installer) Setup(a config.AssistantConfig) error {
	in.Reporter.Info(fmt.Sprintf("Setting up for %s...", a.DisplayName))

	if a.RichAssets {
		for _, c := range artifact.AllCategories() {
			if _, err := in.Install(c); err != nil {
				return err
			}
		}
	}

	paths := a.PathsIn(in.Root)
	if err := in.Fs.MkdirAll(paths.Dir, fsutil.DirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", a.Dir, err)
	}

	if paths.PromptFile != "" {
		if err := in.writeWorkflow(paths.PromptFile); err != nil {
			return err
		}
	} else {
		if err := in.writePrompts(paths.Dir, a.PromptSuffix); err != nil {
			return err
		}
	}

	in.Reporter.Success(fmt.Sprintf("Configured for %s", a.DisplayName))
	return nil
}

// Install installs one category into the rich assistant's tree. It reports
// false when the bundle had nothing for that category.
func (in *Installer) Install(c artifact.Category) (bool, error) {
	switch c {
	case artifact.CategoryCommands:
		return in.InstallCommands()
	case artifact.CategoryAgents:
		return in.InstallAgents()
	case artifact.CategorySkills:
		return in.InstallSkills()
	default:
		return false, fmt.Errorf("unknown asset category %q", c)
	}
}

// InstallCommands copies every sf-*.md command from the bundle. Without a
// bundled commands directory it writes a stub per built-in command instead, so
// it always installs something.
func (in *Installer) InstallCommands() (bool, error) {
	dest := in.paths().CommandsDir
	if err := in.Fs.MkdirAll(dest, fsutil.DirPerm); err != nil {
		return false, fmt.Errorf("failed to create commands directory: %w", err)
	}

	src, ok := in.sourceDir(artifact.CommandsDirName)
	if !ok {
		in.Reporter.Warning("Command files not found in package, creating stubs...")
		return true, in.writeStubs(dest)
	}

	names, err := fsutil.CopyMatching(in.Source, src, artifact.CommandPattern, in.Fs, dest)
	if err != nil {
		return false, fmt.Errorf("failed to install commands: %w", err)
	}
	for _, name := range names {
		in.Reporter.Success("Installed command: /" + strings.TrimSuffix(name, filepath.Ext(name)))
	}
	return true, nil
}

// InstallAgents copies the *.md agents of every category directory in the
// bundle into agents/<category>/.
func (in *Installer) InstallAgents() (bool, error) {
	src, ok := in.sourceDir(artifact.AgentsDirName)
	if !ok {
		in.Reporter.Warning("Agents not found in package")
		return false, nil
	}

	categories, err := fsutil.Subdirs(in.Source, src)
	if err != nil {
		return false, fmt.Errorf("failed to list agent categories: %w", err)
	}

	dest := in.paths().AgentsDir
	count := 0
	for _, category := range categories {
		names, err := fsutil.CopyMatching(in.Source, filepath.Join(src, category), "*.md", in.Fs, filepath.Join(dest, category))
		if err != nil {
			return false, fmt.Errorf("failed to install %s agents: %w", category, err)
		}
		count += len(names)
	}

	in.Reporter.Success(fmt.Sprintf("Installed %d agents%s", count, listSuffix(categories)))
	return true, nil
}

// InstallSkills copies every skill directory in the bundle, recursively, into
// skills/<name>/.
func (in *Installer) InstallSkills() (bool, error) {
	src, ok := in.sourceDir(artifact.SkillsDirName)
	if !ok {
		in.Reporter.Warning("Skills not found in package")
		return false, nil
	}

	skills, err := fsutil.Subdirs(in.Source, src)
	if err != nil {
		return false, fmt.Errorf("failed to list skills: %w", err)
	}

	dest := in.paths().SkillsDir
	for _, skill := range skills {
		if _, err := fsutil.CopyTree(in.Source, filepath.Join(src, skill), in.Fs, filepath.Join(dest, skill)); err != nil {
			return false, fmt.Errorf("failed to install skill %s: %w", skill, err)
		}
	}

	in.Reporter.Success(fmt.Sprintf("Installed %d skills%s", len(skills), listSuffix(skills)))
	return true, nil
}

func (in *Installer) paths() config.AssistantPaths {
	return config.RichAssistant().PathsIn(in.Root)
}

// sourceDir returns the bundle subdirectory for name if it exists.
func (in *Installer) sourceDir(name string) (string, bool) {
	if in.SourceDir == "" || in.Source == nil {
		return "", false
	}
	dir := filepath.Join(in.SourceDir, name)
	if !fsutil.DirExists(in.Source, dir) {
		slog.Debug("asset source missing", "dir", dir)
		return "", false
	}
	return dir, true
}

func (in *Installer) rel(path string) string {
	if rel, err := filepath.Rel(in.Root, path); err == nil {
		return rel
	}
	return path
}

func (in *Installer) writeStubs(dir string) error {
	for _, c := range artifact.BuiltinCommands() {
		stub := &schema.ClaudeCommand{
			Name:        c.Name(),
			Description: c.Description,
			Body:        commandBody(c),
		}
		data, err := stub.Serialize()
		if err != nil {
			return err
		}
		if err := fsutil.WriteFile(in.Fs, filepath.Join(dir, stub.Filename()), data, fsutil.FilePerm); err != nil {
			return fmt.Errorf("failed to write stub %s: %w", c.Name(), err)
		}
		in.Reporter.Success("Created stub: " + c.Slash())
	}
	return nil
}

func (in *Installer) writeWorkflow(path string) error {
	content, err := templates.Workflow()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(in.Fs, path, content, fsutil.FilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", in.rel(path), err)
	}
	in.Reporter.Success("Created " + in.rel(path))
	return nil
}

// writePrompts writes one prompt file per built-in command for assistants
// that read a directory of prompts.
func (in *Installer) writePrompts(dir, suffix string) error {
	for _, c := range artifact.BuiltinCommands() {
		prompt := &schema.CopilotPrompt{
			Mode:        "agent",
			Description: c.Description,
			Body:        commandBody(c),
		}
		data, err := prompt.Serialize()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, c.Name()+suffix)
		if err := fsutil.WriteFile(in.Fs, path, data, fsutil.FilePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", in.rel(path), err)
		}
		in.Reporter.Success("Created " + in.rel(path))
	}
	return nil
}

// commandBody is the markdown shared by command stubs and per-item prompts.
func commandBody(c artifact.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Slash())
	fmt.Fprintf(&b, "%s\n\n", c.Description)
	fmt.Fprintf(&b, "See `%s/%s/%s` for project principles.\n\n",
		artifact.ControlDirName, artifact.MemoryDirName, artifact.ConstitutionFilename)
	b.WriteString("## Usage\n\n")
	fmt.Fprintf(&b, "```\n%s [description]\n```\n", c.Slash())
	return b.String()
}

func listSuffix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return " (" + strings.Join(names, ", ") + ")"
}
