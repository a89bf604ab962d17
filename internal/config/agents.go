package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sfce-dev/sfce/internal/artifact"
)

// Assistant identifies a supported AI coding assistant
type Assistant string

const (
	AssistantClaude  Assistant = "claude"
	AssistantCopilot Assistant = "copilot"
	AssistantCursor  Assistant = "cursor"
	AssistantGemini  Assistant = "gemini"
)

// AssistantConfig holds the configuration for a specific assistant.
//
// Assistants with a PromptFile receive one combined workflow document. Assistants
// without one receive a prompt file per built-in command, named
// <command><PromptSuffix>. Only assistants with RichAssets get the commands,
// agents and skills trees.
type AssistantConfig struct {
	Name         Assistant
	DisplayName  string
	Dir          string // Relative to the project root, e.g. ".claude"
	PromptFile   string // Relative to Dir; empty means per-item files
	PromptSuffix string // Per-item file suffix when PromptFile is empty
	RichAssets   bool
}

// knownAssistants is never mutated; lookups hand out copies.
var knownAssistants = []AssistantConfig{
	{
		Name:        AssistantClaude,
		DisplayName: "Claude Code",
		Dir:         ".claude",
		PromptFile:  "commands.md",
		RichAssets:  true,
	},
	{
		Name:         AssistantCopilot,
		DisplayName:  "GitHub Copilot",
		Dir:          filepath.Join(".github", "prompts"),
		PromptSuffix: ".prompt.md",
	},
	{
		Name:        AssistantCursor,
		DisplayName: "Cursor",
		Dir:         ".cursor",
		PromptFile:  "rules.md",
	},
	{
		Name:        AssistantGemini,
		DisplayName: "Gemini CLI",
		Dir:         ".gemini",
		PromptFile:  "prompts.md",
	},
}

// KnownAssistants returns all known assistant configurations
func KnownAssistants() []AssistantConfig {
	out := make([]AssistantConfig, len(knownAssistants))
	copy(out, knownAssistants)
	return out
}

// AssistantNames returns the identifiers accepted by --ai
func AssistantNames() []string {
	names := make([]string, 0, len(knownAssistants))
	for _, a := range knownAssistants {
		names = append(names, string(a.Name))
	}
	return names
}

// GetAssistant returns the config for a specific assistant
func GetAssistant(name Assistant) (AssistantConfig, bool) {
	for _, a := range knownAssistants {
		if a.Name == name {
			return a, true
		}
	}
	return AssistantConfig{}, false
}

// ParseAssistant resolves an --ai value, rejecting unknown identifiers
func ParseAssistant(s string) (AssistantConfig, error) {
	a, ok := GetAssistant(Assistant(strings.ToLower(strings.TrimSpace(s))))
	if !ok {
		return AssistantConfig{}, fmt.Errorf("unknown assistant %q (choose from %s)", s, strings.Join(AssistantNames(), ", "))
	}
	return a, nil
}

// RichAssistant returns the assistant that receives commands, agents and skills
func RichAssistant() AssistantConfig {
	for _, a := range knownAssistants {
		if a.RichAssets {
			return a
		}
	}
	return knownAssistants[0]
}

// AssistantPaths holds the absolute locations of an assistant's asset tree
type AssistantPaths struct {
	Dir         string // e.g. /proj/.claude
	PromptFile  string // empty for per-item assistants
	CommandsDir string
	AgentsDir   string
	SkillsDir   string
}

// PathsIn resolves the assistant's directories under a project root
func (a AssistantConfig) PathsIn(root string) AssistantPaths {
	dir := filepath.Join(root, a.Dir)
	p := AssistantPaths{
		Dir:         dir,
		CommandsDir: filepath.Join(dir, artifact.CommandsDirName),
		AgentsDir:   filepath.Join(dir, artifact.AgentsDirName),
		SkillsDir:   filepath.Join(dir, artifact.SkillsDirName),
	}
	if a.PromptFile != "" {
		p.PromptFile = filepath.Join(dir, a.PromptFile)
	}
	return p
}

// CategoryDir returns the live directory for an asset category
func (p AssistantPaths) CategoryDir(c artifact.Category) string {
	switch c {
	case artifact.CategoryCommands:
		return p.CommandsDir
	case artifact.CategoryAgents:
		return p.AgentsDir
	case artifact.CategorySkills:
		return p.SkillsDir
	default:
		return filepath.Join(p.Dir, c.DirName())
	}
}

// BackupDir returns where the category is snapshotted before an update.
// Commands keep their backup inside the live directory; agents and skills use a
// sibling directory.
func (p AssistantPaths) BackupDir(c artifact.Category) string {
	switch c {
	case artifact.CategoryCommands:
		return filepath.Join(p.CommandsDir, artifact.CommandsBackupDirName)
	case artifact.CategoryAgents:
		return filepath.Join(p.Dir, artifact.AgentsBackupDirName)
	case artifact.CategorySkills:
		return filepath.Join(p.Dir, artifact.SkillsBackupDirName)
	default:
		return filepath.Join(p.Dir, "."+c.DirName()+"-backup")
	}
}
