package assets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/schema"
	"github.com/sfce-dev/sfce/internal/ui"
)

func init() {
	ui.IsTTY = false
}

func write(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := fsutil.WriteFile(fsys, path, []byte(content), fsutil.FilePerm); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func read(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

// bundle lays out a small asset source under /bundle.
func bundle(t *testing.T, fsys afero.Fs) {
	t.Helper()
	write(t, fsys, "/bundle/commands/sf-plan.md", "---\nname: sf-plan\ndescription: plan\n---\nplan body\n")
	write(t, fsys, "/bundle/commands/sf-work.md", "---\nname: sf-work\ndescription: work\n---\nwork body\n")
	write(t, fsys, "/bundle/commands/notes.txt", "not a command")
	write(t, fsys, "/bundle/agents/apex/apex-reviewer.md", "apex")
	write(t, fsys, "/bundle/agents/apex/apex-perf.md", "perf")
	write(t, fsys, "/bundle/agents/lwc/lwc-reviewer.md", "lwc")
	write(t, fsys, "/bundle/agents/lwc/README.txt", "skip")
	write(t, fsys, "/bundle/skills/governor-limits/SKILL.md", "limits")
	write(t, fsys, "/bundle/skills/governor-limits/refs/soql.md", "soql")
	write(t, fsys, "/bundle/skills/test-factory/SKILL.md", "factory")
}

func newTestInstaller(fsys afero.Fs, sourceDir string) (*Installer, *bytes.Buffer) {
	var out bytes.Buffer
	return New(fsys, "/proj", sourceDir, ui.NewConsole(&out)), &out
}

func TestSetup_ClaudeWithBundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	bundle(t, fsys)
	write(t, fsys, "/proj/.claude/commands/my-own.md", "mine")

	in, out := newTestInstaller(fsys, "/bundle")
	claude, _ := config.GetAssistant(config.AssistantClaude)
	if err := in.Setup(claude); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	for _, path := range []string{
		"/proj/.claude/commands/sf-plan.md",
		"/proj/.claude/commands/sf-work.md",
		"/proj/.claude/agents/apex/apex-reviewer.md",
		"/proj/.claude/agents/apex/apex-perf.md",
		"/proj/.claude/agents/lwc/lwc-reviewer.md",
		"/proj/.claude/skills/governor-limits/SKILL.md",
		"/proj/.claude/skills/governor-limits/refs/soql.md",
		"/proj/.claude/skills/test-factory/SKILL.md",
		"/proj/.claude/commands.md",
	} {
		if !fsutil.Exists(fsys, path) {
			t.Errorf("missing %s", path)
		}
	}

	if fsutil.Exists(fsys, "/proj/.claude/commands/notes.txt") {
		t.Error("non-command file was installed")
	}
	if fsutil.Exists(fsys, "/proj/.claude/agents/lwc/README.txt") {
		t.Error("non-markdown agent file was installed")
	}
	if got := read(t, fsys, "/proj/.claude/commands/my-own.md"); got != "mine" {
		t.Errorf("unrelated command changed: %q", got)
	}

	text := out.String()
	for _, want := range []string{
		"Setting up for Claude Code...",
		"OK: Installed command: /sf-plan",
		"OK: Installed command: /sf-work",
		"OK: Installed 3 agents (apex, lwc)",
		"OK: Installed 2 skills (governor-limits, test-factory)",
		"OK: Created .claude/commands.md",
		"OK: Configured for Claude Code",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestSetup_ClaudeWithoutBundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	in, out := newTestInstaller(fsys, "/nowhere")
	claude, _ := config.GetAssistant(config.AssistantClaude)

	if err := in.Setup(claude); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	commands := artifact.BuiltinCommands()
	for _, c := range commands {
		path := "/proj/.claude/commands/" + c.Name() + ".md"
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			t.Errorf("missing stub %s", path)
			continue
		}
		stub, err := schema.ParseClaudeCommand(data)
		if err != nil {
			t.Fatalf("ParseClaudeCommand(%s) error = %v", path, err)
		}
		if stub.Name != c.Name() || stub.Description != c.Description {
			t.Errorf("stub %s = %+v", path, stub)
		}
		if !strings.HasPrefix(stub.Body, "# "+c.Slash()+"\n") {
			t.Errorf("stub %s body = %q", path, stub.Body)
		}
		if !strings.Contains(stub.Body, "```\n"+c.Slash()+" [description]\n```") {
			t.Errorf("stub %s has no usage block", path)
		}
	}

	if fsutil.Exists(fsys, "/proj/.claude/agents") || fsutil.Exists(fsys, "/proj/.claude/skills") {
		t.Error("agents or skills created without a bundle")
	}

	text := out.String()
	for _, want := range []string{
		"WARN: Command files not found in package, creating stubs...",
		"OK: Created stub: /sf-deploy",
		"WARN: Agents not found in package",
		"WARN: Skills not found in package",
		"OK: Configured for Claude Code",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestSetup_CombinedFileAssistants(t *testing.T) {
	tests := []struct {
		assistant config.Assistant
		path      string
	}{
		{config.AssistantCursor, "/proj/.cursor/rules.md"},
		{config.AssistantGemini, "/proj/.gemini/prompts.md"},
	}

	for _, tt := range tests {
		t.Run(string(tt.assistant), func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			in, _ := newTestInstaller(fsys, "")
			a, _ := config.GetAssistant(tt.assistant)

			if err := in.Setup(a); err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			content := read(t, fsys, tt.path)
			if !strings.HasPrefix(content, "# SF Compound Engineering Workflow") {
				t.Errorf("%s heading = %q", tt.path, strings.SplitN(content, "\n", 2)[0])
			}
			if fsutil.Exists(fsys, "/proj/.claude") {
				t.Error("non-rich assistant created .claude")
			}
		})
	}
}

func TestSetup_CopilotPerCommandPrompts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	in, _ := newTestInstaller(fsys, "")
	copilot, _ := config.GetAssistant(config.AssistantCopilot)

	if err := in.Setup(copilot); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	for _, c := range artifact.BuiltinCommands() {
		path := "/proj/.github/prompts/" + c.Name() + ".prompt.md"
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			t.Errorf("missing %s", path)
			continue
		}
		p, err := schema.ParseCopilotPrompt(data)
		if err != nil {
			t.Fatalf("ParseCopilotPrompt(%s) error = %v", path, err)
		}
		if p.Mode != "agent" || p.Description != c.Description {
			t.Errorf("%s = %+v", path, p)
		}
	}
}

func TestInstall_UnknownCategory(t *testing.T) {
	in, _ := newTestInstaller(afero.NewMemMapFs(), "")
	if _, err := in.Install(artifact.Category("plugins")); err == nil {
		t.Error("Install() of an unknown category should fail")
	}
}

func TestInstallAgents_MissingSourceIsNotFatal(t *testing.T) {
	in, out := newTestInstaller(afero.NewMemMapFs(), "/bundle")
	ok, err := in.InstallAgents()
	if err != nil {
		t.Fatalf("InstallAgents() error = %v", err)
	}
	if ok {
		t.Error("InstallAgents() = true without a source")
	}
	if !strings.Contains(out.String(), "WARN: Agents not found in package") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}
