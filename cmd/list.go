package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sfce-dev/sfce/internal/specs"
	"github.com/sfce-dev/sfce/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List feature specifications",
	Long:    `Display every feature folder with its status and task progress.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := currentEnvironment(cmd)
		if err != nil {
			return err
		}
		return runList(env)
	},
}

func runList(env *environment) error {
	summaries, err := specs.List(env.fs, env.cwd)
	if err != nil {
		return err
	}

	console := ui.NewConsole(env.out)
	console.Info("SF Compound Engineering - Specifications")
	console.Blank()

	if len(summaries) == 0 {
		console.Warning("No specifications found")
		console.Blank()
		console.Println("Create one with:")
		console.Println("  " + ui.RenderCode("sfce new <feature-name>"))
		return nil
	}

	widths := []int{ui.NameColumnWidth, ui.StatusColumnWidth}
	console.Println(ui.TableHeader(widths, "SPECIFICATION", "STATUS", "TASKS"))
	console.Println(ui.TableRow(widths, "-------------", "------", "-----"))
	for _, s := range summaries {
		console.Println(ui.TableRow(widths, s.Name, s.Status, s.Progress()))
	}

	console.Blank()
	console.Info("Use: cat .specify/specs/<name>/spec.md")
	return nil
}
