package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/doctor"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/specs"
	"github.com/sfce-dev/sfce/internal/ui"
	"github.com/sfce-dev/sfce/internal/updater"
)

func init() {
	ui.IsTTY = false
}

func testEnv(fsys afero.Fs, assets string) (*environment, *bytes.Buffer) {
	var out bytes.Buffer
	return &environment{fs: fsys, out: &out, cwd: "/work", assets: assets}, &out
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsutil.WriteFile(fsys, path, []byte(content), fsutil.FilePerm); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func countFiles(t *testing.T, fsys afero.Fs) int {
	t.Helper()
	n := 0
	err := afero.Walk(fsys, "/", func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return err
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return n
}

func bundle(t *testing.T, fsys afero.Fs) {
	t.Helper()
	writeFile(t, fsys, "/bundle/commands/sf-plan.md", "---\nname: sf-plan\ndescription: plan\n---\nplan\n")
	writeFile(t, fsys, "/bundle/agents/apex/apex-reviewer.md", "apex")
	writeFile(t, fsys, "/bundle/skills/governor-limits/SKILL.md", "limits")
}

func TestRunInit_ClaudeWithoutBundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, out := testEnv(fsys, "")

	if err := runInit(env, initOptions{project: ".", ai: "claude"}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	for _, path := range []string{
		"/work/.specify/memory/constitution.md",
		"/work/.specify/scripts/list-specs.sh",
		"/work/.claude/commands/sf-plan.md",
		"/work/.claude/commands/sf-deploy.md",
		"/work/.claude/commands.md",
	} {
		if !fsutil.Exists(fsys, path) {
			t.Errorf("missing %s", path)
		}
	}

	text := out.String()
	for _, want := range []string{
		"SF Compound Engineering - Spec-Driven Development",
		"Initializing in: /work",
		"WARN: Command files not found in package, creating stubs...",
		"WARN: Agents not found in package",
		"WARN: Skills not found in package",
		"OK: SF Compound Engineering initialized!",
		"/sf-plan → /sf-work → /sf-review",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunInit_ClaudeWithBundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	bundle(t, fsys)
	env, out := testEnv(fsys, "/bundle")

	if err := runInit(env, initOptions{project: ".", ai: "claude"}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	for _, path := range []string{
		"/work/.claude/commands/sf-plan.md",
		"/work/.claude/agents/apex/apex-reviewer.md",
		"/work/.claude/skills/governor-limits/SKILL.md",
	} {
		if !fsutil.Exists(fsys, path) {
			t.Errorf("missing %s", path)
		}
	}
	if fsutil.Exists(fsys, "/work/.claude/commands/sf-work.md") {
		t.Error("stubs written although the bundle has commands")
	}
	if strings.Contains(out.String(), "WARN:") {
		t.Errorf("unexpected warning:\n%s", out.String())
	}
}

func TestRunInit_InvalidAssistantWritesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, _ := testEnv(fsys, "")

	err := runInit(env, initOptions{project: "new-project", ai: "emacs"})
	if err == nil {
		t.Fatal("runInit() accepted an unknown assistant")
	}
	if !strings.Contains(err.Error(), "claude, copilot, cursor, gemini") {
		t.Errorf("error = %q, want the valid choices", err)
	}
	if n := countFiles(t, fsys); n != 0 {
		t.Errorf("%d files written", n)
	}
	if fsutil.Exists(fsys, "/work/new-project") {
		t.Error("project directory created")
	}
}

func TestRunInit_ExistingIsExpectedSkip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, _ := testEnv(fsys, "")
	if err := runInit(env, initOptions{project: "."}); err != nil {
		t.Fatal(err)
	}

	env, out := testEnv(fsys, "")
	if err := runInit(env, initOptions{project: ".", ai: "claude"}); err != nil {
		t.Fatalf("second runInit() error = %v, want nil", err)
	}
	if strings.Contains(out.String(), "initialized!") {
		t.Error("skip reported success")
	}
	if fsutil.Exists(fsys, "/work/.claude") {
		t.Error("assistant set up after skip")
	}
}

func TestRunInit_NewProjectDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, out := testEnv(fsys, "")

	if err := runInit(env, initOptions{project: "my-project"}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !fsutil.DirExists(fsys, "/work/my-project/.specify/specs") {
		t.Error("project not initialized in the new directory")
	}
	if !strings.Contains(out.String(), "Created project directory: my-project") {
		t.Errorf("missing project directory line:\n%s", out.String())
	}

	// --here wins over the path argument
	env, _ = testEnv(fsys, "")
	if err := runInit(env, initOptions{project: "other", here: true}); err != nil {
		t.Fatal(err)
	}
	if fsutil.Exists(fsys, "/work/other") || !fsutil.Exists(fsys, "/work/.specify") {
		t.Error("--here did not initialize the current directory")
	}
}

func TestRunUpdate_NotInstalled(t *testing.T) {
	fsys := afero.NewMemMapFs()
	bundle(t, fsys)
	before := countFiles(t, fsys)
	env, _ := testEnv(fsys, "/bundle")

	err := runUpdate(env, updater.Options{})
	if !errors.Is(err, updater.ErrNotInstalled) {
		t.Fatalf("runUpdate() error = %v, want ErrNotInstalled", err)
	}
	if after := countFiles(t, fsys); after != before {
		t.Errorf("files %d -> %d", before, after)
	}
}

func TestRunUpdate_AfterInit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	bundle(t, fsys)
	env, _ := testEnv(fsys, "/bundle")
	if err := runInit(env, initOptions{project: ".", ai: "claude"}); err != nil {
		t.Fatal(err)
	}

	env, out := testEnv(fsys, "/bundle")
	if err := runUpdate(env, updater.Options{AgentsOnly: true}); err != nil {
		t.Fatalf("runUpdate() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"OK: Update complete!",
		"What was updated:",
		"• 23 specialized agents",
		"Backups saved in .claude/ directory.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "slash commands") {
		t.Error("commands reported with --agents-only")
	}
	if !fsutil.Exists(fsys, "/work/.claude/.agents-backup/apex/apex-reviewer.md") {
		t.Error("agents backup missing")
	}
}

func TestRunUpdate_NoUpdates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work/.claude", fsutil.DirPerm); err != nil {
		t.Fatal(err)
	}
	env, out := testEnv(fsys, "")

	if err := runUpdate(env, updater.Options{SkillsOnly: true}); err != nil {
		t.Fatalf("runUpdate() error = %v", err)
	}
	if !strings.Contains(out.String(), "WARN: No updates were applied.") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}

func TestRunNewAndList(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, _ := testEnv(fsys, "")
	if err := runInit(env, initOptions{project: "."}); err != nil {
		t.Fatal(err)
	}

	env, out := testEnv(fsys, "")
	if err := runNew(env, "lead-scoring"); err != nil {
		t.Fatalf("runNew() error = %v", err)
	}
	if !strings.Contains(out.String(), `Start with: /sf-plan "lead-scoring"`) {
		t.Errorf("missing start hint:\n%s", out.String())
	}

	env, out = testEnv(fsys, "")
	if err := runList(env); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.Contains(out.String(), "001-lead-scoring") || !strings.Contains(out.String(), "0/13") {
		t.Errorf("list output:\n%s", out.String())
	}
}

func TestRunNew_InvalidName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, _ := testEnv(fsys, "")
	if err := runInit(env, initOptions{project: "."}); err != nil {
		t.Fatal(err)
	}
	if err := runNew(env, "Bad Name"); !errors.Is(err, specs.ErrInvalidName) {
		t.Errorf("runNew() error = %v, want ErrInvalidName", err)
	}
}

func TestRunList_Empty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	env, _ := testEnv(fsys, "")
	if err := runInit(env, initOptions{project: "."}); err != nil {
		t.Fatal(err)
	}

	env, out := testEnv(fsys, "")
	if err := runList(env); err != nil {
		t.Fatalf("runList() error = %v", err)
	}
	if !strings.Contains(out.String(), "WARN: No specifications found") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}

func TestRunDoctor(t *testing.T) {
	checker := func(fsys afero.Fs) *doctor.Checker {
		c := doctor.New(fsys, "/work")
		c.LookPath = func(string) (string, error) { return "/usr/bin/git", nil }
		c.Output = func(dir, name string, args ...string) (string, error) {
			return "git version 2.43.0", nil
		}
		return c
	}

	fsys := afero.NewMemMapFs()
	env, out := testEnv(fsys, "")
	if err := runDoctor(env, checker(fsys)); !errors.Is(err, errPrerequisites) {
		t.Errorf("runDoctor() on an empty project error = %v, want errPrerequisites", err)
	}
	if !strings.Contains(out.String(), "ERROR: .specify missing") {
		t.Errorf("missing error line:\n%s", out.String())
	}

	if err := runInit(env, initOptions{project: "."}); err != nil {
		t.Fatal(err)
	}
	env, out = testEnv(fsys, "")
	if err := runDoctor(env, checker(fsys)); err != nil {
		t.Fatalf("runDoctor() error = %v", err)
	}
	for _, want := range []string{"OK: Git installed: v2.43.0", "OK: Found 0 specification(s)", "OK: Prerequisites check complete!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if got := out.String(); got != "sfce 1.0.0\n" {
		t.Errorf("version output = %q, want %q", got, "sfce 1.0.0\n")
	}
}
