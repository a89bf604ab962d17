package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/ui"
)

var (
	// Version is set at build time
	Version = "1.0.0"
)

var (
	cfgFile   string
	assetsDir string
	verbose   bool

	settings = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "sfce",
	Short: "SF Compound Engineering - Spec-Driven Development for Salesforce",
	Long: `SF Compound Engineering - Spec-Driven Development for Salesforce

Sets up the .specify workflow directory and installs slash commands,
agents and skills for your AI coding assistant.`,
	Example: `  sfce init .                    Initialize in current directory
  sfce init my-project           Create and initialize new project
  sfce init . --ai claude        Set up for Claude Code
  sfce init . --force            Overwrite existing .specify
  sfce update                    Update all components to latest
  sfce update --commands-only    Only update commands
  sfce update --agents-only      Only update agents
  sfce update --skills-only      Only update skills

Workflow:
  ` + artifact.WorkflowLine(),
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command, printing any error to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorLine(err.Error()))
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate("sfce {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default ~/.config/sfce/config.yaml)")
	flags.StringVar(&assetsDir, "assets", "", "Directory holding commands/, agents/ and skills/ to install")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	_ = settings.BindPFlag(config.KeyAssetsDir, flags.Lookup("assets"))
	_ = settings.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads settings and configures logging before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(settings, cfgFile); err != nil {
		return err
	}

	level := slog.LevelWarn
	if settings.GetBool(config.KeyVerbose) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("settings loaded", "config", settings.ConfigFileUsed(), "assets", config.AssetsDir(settings))
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sfce %s\n", Version)
	},
}

// environment is what a command reads and writes, kept separate from cobra
// so the run functions can be driven from tests
type environment struct {
	fs     afero.Fs
	out    io.Writer
	cwd    string
	assets string // asset bundle directory
}

func currentEnvironment(cmd *cobra.Command) (*environment, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return &environment{
		fs:     afero.NewOsFs(),
		out:    cmd.OutOrStdout(),
		cwd:    cwd,
		assets: config.AssetsDir(settings),
	}, nil
}
