package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce-dev/sfce/internal/doctor"
	"github.com/sfce-dev/sfce/internal/ui"
)

var errPrerequisites = errors.New("prerequisites not met")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check prerequisites for SF Compound Engineering",
	Long: `Verify that git is available, the .specify directory is complete and
the installed sf-* commands have valid frontmatter.

Exits non-zero when git is missing or the project is not initialized.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := currentEnvironment(cmd)
		if err != nil {
			return err
		}
		return runDoctor(env, doctor.New(env.fs, env.cwd))
	},
}

func runDoctor(env *environment, checker *doctor.Checker) error {
	console := ui.NewConsole(env.out)
	console.Println(ui.SectionHeader("Checking prerequisites"))
	console.Blank()

	results := checker.VerifyAll(checker.Requirements())
	for _, r := range results {
		switch {
		case r.Satisfied:
			console.Success(r.Message)
		case r.Requirement.Severity == doctor.SeverityWarning:
			console.Warning(r.Message)
		default:
			console.Error(r.Message)
		}
	}

	if n := checker.CountSpecs(); n >= 0 {
		console.Success(fmt.Sprintf("Found %d specification(s)", n))
	}

	console.Blank()
	if doctor.HasFatal(results) {
		return errPrerequisites
	}
	console.Success("Prerequisites check complete!")
	return nil
}
