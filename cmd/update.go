package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfce-dev/sfce/internal/assets"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/ui"
	"github.com/sfce-dev/sfce/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update commands, agents, and skills to latest",
	Long: `Re-install the Claude Code commands, agents and skills in the current
project from the asset bundle.

Commands are overwritten in place; agents and skills are replaced
wholesale. Existing files are backed up inside .claude/ unless
--no-backup is given.

Examples:
  sfce update
  sfce update --commands-only
  sfce update --agents-only --no-backup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := currentEnvironment(cmd)
		if err != nil {
			return err
		}
		return runUpdate(env, updateOpts)
	},
}

var updateOpts updater.Options

func init() {
	updateCmd.Flags().BoolVar(&updateOpts.CommandsOnly, "commands-only", false, "Only update commands")
	updateCmd.Flags().BoolVar(&updateOpts.AgentsOnly, "agents-only", false, "Only update agents")
	updateCmd.Flags().BoolVar(&updateOpts.SkillsOnly, "skills-only", false, "Only update skills")
	updateCmd.Flags().BoolVar(&updateOpts.NoBackup, "no-backup", false, "Skip creating backups")
}

func runUpdate(env *environment, opts updater.Options) error {
	console := ui.NewConsole(env.out)
	console.Println(ui.Banner())

	installer := assets.New(env.fs, env.cwd, env.assets, console)
	report, err := updater.Run(installer, opts)
	if err != nil {
		return err
	}

	console.Blank()
	if !report.Updated() {
		console.Warning("No updates were applied.")
		return nil
	}

	console.Success("Update complete!")
	console.Blank()
	console.Info("What was updated:")
	for _, c := range report.Refreshed {
		console.Println("  • " + c.Summary())
	}
	console.Blank()
	if len(report.BackedUp) > 0 {
		console.Info("Backups saved in " + config.RichAssistant().Dir + "/ directory. Delete them after verifying the update.")
	}
	return nil
}
