package artifact

// File and directory name constants used throughout sfce.
const (
	// ControlDirName is the directory whose presence marks an initialized project
	ControlDirName = ".specify"

	// MemoryDirName holds long-lived project documents (the constitution)
	MemoryDirName = "memory"

	// ScriptsDirName holds the generated shell helpers
	ScriptsDirName = "scripts"

	// SpecsDirName holds one numbered folder per feature
	SpecsDirName = "specs"

	// TemplatesDirName holds the spec/plan/tasks templates
	TemplatesDirName = "templates"

	// CommandsDirName is the standard directory name for commands
	CommandsDirName = "commands"

	// AgentsDirName is the standard directory name for agents
	AgentsDirName = "agents"

	// SkillsDirName is the standard directory name for skills
	SkillsDirName = "skills"

	// CommandPattern matches the command documents sfce owns
	CommandPattern = "sf-*.md"

	// CommandPrefix is prepended to every built-in command name
	CommandPrefix = "sf-"

	// CommandsBackupDirName lives inside the commands directory
	CommandsBackupDirName = ".backup"

	// AgentsBackupDirName lives next to the agents directory
	AgentsBackupDirName = ".agents-backup"

	// SkillsBackupDirName lives next to the skills directory
	SkillsBackupDirName = ".skills-backup"

	// ConstitutionFilename is the project principles document in memory/
	ConstitutionFilename = "constitution.md"

	// FeatureNamePlaceholder is substituted with the feature slug in new specs
	FeatureNamePlaceholder = "[Feature Name]"
)

// ControlSubdirs returns the subdirectories created together under ControlDirName.
func ControlSubdirs() []string {
	return []string{MemoryDirName, ScriptsDirName, SpecsDirName, TemplatesDirName}
}
