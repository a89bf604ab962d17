package artifact

// Category is one group of assistant-facing assets
type Category string

const (
	CategoryCommands Category = "commands"
	CategoryAgents   Category = "agents"
	CategorySkills   Category = "skills"
)

// AllCategories returns the categories in install order.
func AllCategories() []Category {
	return []Category{CategoryCommands, CategoryAgents, CategorySkills}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// DirName returns the directory name the category is installed under
func (c Category) DirName() string {
	switch c {
	case CategoryCommands:
		return CommandsDirName
	case CategoryAgents:
		return AgentsDirName
	case CategorySkills:
		return SkillsDirName
	default:
		return string(c)
	}
}

// Summary describes what a refresh of the category delivers, for end-of-run reports
func (c Category) Summary() string {
	switch c {
	case CategoryCommands:
		return "9 slash commands (/sf-plan, /sf-work, etc.)"
	case CategoryAgents:
		return "23 specialized agents (apex, lwc, automation, integration, architecture)"
	case CategorySkills:
		return "6 skills (governor-limits, apex-patterns, security-guide, etc.)"
	default:
		return string(c)
	}
}

// Command is a built-in slash command shipped with the workflow
type Command struct {
	ID          string // e.g. "plan"
	Description string
}

// Name returns the prefixed command name, e.g. "sf-plan"
func (c Command) Name() string {
	return CommandPrefix + c.ID
}

// Slash returns the invocation form, e.g. "/sf-plan"
func (c Command) Slash() string {
	return "/" + c.Name()
}

// builtinCommands is the workflow in execution order.
var builtinCommands = []Command{
	{ID: "plan", Description: "Create implementation plans from feature descriptions"},
	{ID: "work", Description: "Implement features following Salesforce best practices"},
	{ID: "review", Description: "Multi-agent code review (23 specialized agents)"},
	{ID: "triage", Description: "Prioritize and categorize review findings"},
	{ID: "resolve", Description: "Fix prioritized issues from review"},
	{ID: "test", Description: "Generate comprehensive test suites"},
	{ID: "document", Description: "Auto-generate documentation"},
	{ID: "health", Description: "Assess codebase health and deployment readiness"},
	{ID: "deploy", Description: "Create deployment checklists and validate deployments"},
}

// BuiltinCommands returns a copy of the built-in command table.
func BuiltinCommands() []Command {
	out := make([]Command, len(builtinCommands))
	copy(out, builtinCommands)
	return out
}

// WorkflowLine renders the commands as "/sf-plan → /sf-work → ..."
func WorkflowLine() string {
	line := ""
	for i, c := range builtinCommands {
		if i > 0 {
			line += " → "
		}
		line += c.Slash()
	}
	return line
}
