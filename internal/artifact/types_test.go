package artifact

import (
	"strings"
	"testing"
)

func TestBuiltinCommands(t *testing.T) {
	cmds := BuiltinCommands()
	if len(cmds) != 9 {
		t.Fatalf("len(BuiltinCommands()) = %d, want 9", len(cmds))
	}
	if cmds[0].Slash() != "/sf-plan" || cmds[8].Slash() != "/sf-deploy" {
		t.Errorf("order = %s ... %s, want /sf-plan ... /sf-deploy", cmds[0].Slash(), cmds[8].Slash())
	}

	cmds[0].ID = "changed"
	if BuiltinCommands()[0].ID != "plan" {
		t.Error("BuiltinCommands() exposed the internal table")
	}
}

func TestWorkflowLine(t *testing.T) {
	line := WorkflowLine()
	if !strings.HasPrefix(line, "/sf-plan → /sf-work") || !strings.HasSuffix(line, "/sf-health → /sf-deploy") {
		t.Errorf("WorkflowLine() = %q", line)
	}
	if got := strings.Count(line, "→"); got != 8 {
		t.Errorf("arrows = %d, want 8", got)
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		category Category
		dir      string
		summary  string
	}{
		{CategoryCommands, "commands", "9 slash commands"},
		{CategoryAgents, "agents", "23 specialized agents"},
		{CategorySkills, "skills", "6 skills"},
	}
	for _, tt := range tests {
		if got := tt.category.DirName(); got != tt.dir {
			t.Errorf("%s.DirName() = %q, want %q", tt.category, got, tt.dir)
		}
		if got := tt.category.Summary(); !strings.HasPrefix(got, tt.summary) {
			t.Errorf("%s.Summary() = %q, want prefix %q", tt.category, got, tt.summary)
		}
	}
}
