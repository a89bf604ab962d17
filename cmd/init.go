package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/assets"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
	"github.com/sfce-dev/sfce/internal/scaffold"
	"github.com/sfce-dev/sfce/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize SF Compound Engineering",
	Long: `Initialize the spec-driven workflow in a project.

Creates the .specify directory structure:
  memory/      Project constitution
  scripts/     Shell helpers (create-new-feature.sh, list-specs.sh, ...)
  specs/       One numbered folder per feature
  templates/   Spec, plan and tasks templates

With --ai, also sets up prompts for an AI assistant. Claude Code gets
the full set of slash commands, agents and skills.

Examples:
  sfce init .
  sfce init my-project
  sfce init . --ai claude
  sfce init . --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOptions{here: initHere, force: initForce, ai: initAI, project: "."}
		if len(args) == 1 {
			opts.project = args[0]
		}
		env, err := currentEnvironment(cmd)
		if err != nil {
			return err
		}
		return runInit(env, opts)
	},
}

var (
	initHere  bool
	initForce bool
	initAI    string
)

func init() {
	initCmd.Flags().BoolVar(&initHere, "here", false, "Initialize in current directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing .specify")
	initCmd.Flags().StringVar(&initAI, "ai", "", "Set up for an AI assistant ("+strings.Join(config.AssistantNames(), ", ")+")")
}

type initOptions struct {
	project string
	here    bool
	force   bool
	ai      string
}

func runInit(env *environment, opts initOptions) error {
	// Reject a bad --ai before touching the filesystem
	var assistant *config.AssistantConfig
	if opts.ai != "" {
		a, err := config.ParseAssistant(opts.ai)
		if err != nil {
			return err
		}
		assistant = &a
	}

	console := ui.NewConsole(env.out)
	console.Println(ui.Banner())

	root := env.cwd
	if !opts.here && opts.project != "." {
		root = opts.project
		if !filepath.IsAbs(root) {
			root = filepath.Join(env.cwd, root)
		}
		if !fsutil.Exists(env.fs, root) {
			if err := env.fs.MkdirAll(root, fsutil.DirPerm); err != nil {
				return fmt.Errorf("failed to create project directory: %w", err)
			}
			console.Success("Created project directory: " + opts.project)
		}
	}
	root = filepath.Clean(root)

	console.Info("Initializing in: " + root)
	console.Blank()

	result, err := scaffold.Create(env.fs, root, opts.force, console)
	if err != nil {
		return err
	}
	if result.Skipped {
		return nil
	}

	if assistant != nil {
		console.Blank()
		installer := assets.New(env.fs, root, env.assets, console)
		if err := installer.Setup(*assistant); err != nil {
			return err
		}
	}

	printNextSteps(console, root)
	return nil
}

func printNextSteps(console *ui.Console, root string) {
	constitution := filepath.Join(config.ProjectPaths(root).MemoryDir, artifact.ConstitutionFilename)

	console.Blank()
	console.Success("SF Compound Engineering initialized!")
	console.Blank()
	console.Info("Next steps:")
	console.Blank()
	console.Println("  1. Review and customize:")
	console.Println("     " + ui.RenderHighlight(constitution))
	console.Blank()
	console.Println("  2. Create your first feature spec:")
	console.Println("     " + ui.RenderCode("sfce new my-feature"))
	console.Println("     " + ui.RenderMuted("or .specify/scripts/create-new-feature.sh my-feature"))
	console.Blank()
	console.Println("  3. Start the workflow:")
	console.Println("     " + ui.RenderCode(`/sf-plan "Describe your feature"`))
	console.Blank()
	console.Println("  Full workflow:")
	console.Println("  " + ui.RenderMuted(artifact.WorkflowLine()))
	console.Blank()
}
