package schema

import (
	"errors"
	"strings"
)

// ErrMissingName is returned by Validate for a command without a name
var ErrMissingName = errors.New("frontmatter has no name")

// ClaudeCommand represents a Claude Code slash command: .claude/commands/<name>.md
type ClaudeCommand struct {
	// Core fields
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Content
	Body string `yaml:"-"` // Markdown body (not in frontmatter)
}

// Serialize returns the command as markdown content
func (c *ClaudeCommand) Serialize() ([]byte, error) {
	fm := &commandFrontmatter{
		Name:        c.Name,
		Description: c.Description,
	}
	return SerializeFrontmatter(fm, c.Body)
}

// Validate checks the fields sfce relies on
func (c *ClaudeCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// Filename returns the expected filename for this command
func (c *ClaudeCommand) Filename() string {
	name := c.Name
	if name == "" {
		name = "command"
	}
	// Convert to kebab-case
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name + ".md"
}

// commandFrontmatter controls YAML field ordering
type commandFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseClaudeCommand parses content as a Claude command file
func ParseClaudeCommand(content []byte) (*ClaudeCommand, error) {
	cmd := &ClaudeCommand{}
	body, err := ParseFrontmatterTyped(content, cmd)
	if err != nil {
		return nil, err
	}
	cmd.Body = body
	return cmd, nil
}

// CopilotPrompt represents a GitHub Copilot prompt file (.github/prompts/<name>.prompt.md)
type CopilotPrompt struct {
	Mode        string `yaml:"mode,omitempty"`
	Description string `yaml:"description"`

	Body string `yaml:"-"`
}

// Serialize returns the prompt as .prompt.md content
func (p *CopilotPrompt) Serialize() ([]byte, error) {
	fm := &copilotPromptFrontmatter{
		Mode:        p.Mode,
		Description: p.Description,
	}
	return SerializeFrontmatter(fm, p.Body)
}

// copilotPromptFrontmatter controls YAML field ordering
type copilotPromptFrontmatter struct {
	Mode        string `yaml:"mode,omitempty"`
	Description string `yaml:"description"`
}

// ParseCopilotPrompt parses content as a Copilot prompt file
func ParseCopilotPrompt(content []byte) (*CopilotPrompt, error) {
	p := &CopilotPrompt{}
	body, err := ParseFrontmatterTyped(content, p)
	if err != nil {
		return nil, err
	}
	p.Body = body
	return p, nil
}
