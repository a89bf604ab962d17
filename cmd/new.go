package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/specs"
	"github.com/sfce-dev/sfce/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new <feature-name>",
	Short: "Create a new feature specification",
	Long: `Create the next numbered feature folder under .specify/specs and fill
it from the spec, plan and tasks templates.

Names must be lowercase letters, digits and hyphens, starting with a letter.

Examples:
  sfce new lead-scoring`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := currentEnvironment(cmd)
		if err != nil {
			return err
		}
		return runNew(env, args[0])
	},
}

func runNew(env *environment, name string) error {
	feature, err := specs.Create(env.fs, env.cwd, name)
	if err != nil {
		return err
	}

	console := ui.NewConsole(env.out)
	console.Info("Creating: " + feature.ID)
	for _, f := range feature.Files {
		console.Success("Created " + f)
	}
	console.Success("Created: " + config.ProjectPaths(env.cwd).Rel(feature.Dir))

	console.Blank()
	console.Info("SF Compound Engineering Workflow:")
	console.Blank()
	for i, c := range artifact.BuiltinCommands() {
		console.Printf("  %d. %-12s → %s\n", i+1, c.Slash(), c.Description)
	}
	console.Blank()
	console.Printf("Start with: %s %q\n", artifact.BuiltinCommands()[0].Slash(), name)
	return nil
}
