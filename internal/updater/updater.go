// Package updater refreshes the assistant assets of an installed project.
package updater

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sfce-dev/sfce/internal/artifact"
	"github.com/sfce-dev/sfce/internal/assets"
	"github.com/sfce-dev/sfce/internal/config"
	"github.com/sfce-dev/sfce/internal/fsutil"
)

// ErrNotInstalled is returned when the project has no assistant tree to update
var ErrNotInstalled = errors.New("no .claude directory found. Run 'sfce init . --ai claude' first")

// Policy decides what happens to a category's existing files on refresh
type Policy int

const (
	// PolicyOverlay copies new files over the old ones; stale files survive.
	// Backups accumulate in the backup directory.
	PolicyOverlay Policy = iota
	// PolicyReplace deletes the live directory before reinstalling. The
	// backup directory is replaced with a full copy each time.
	PolicyReplace
)

func (p Policy) String() string {
	switch p {
	case PolicyOverlay:
		return "overlay"
	case PolicyReplace:
		return "replace"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// PolicyFor returns the refresh policy of a category.
func PolicyFor(c artifact.Category) Policy {
	if c == artifact.CategoryCommands {
		return PolicyOverlay
	}
	return PolicyReplace
}

// Options selects what Run refreshes
type Options struct {
	CommandsOnly bool
	AgentsOnly   bool
	SkillsOnly   bool
	NoBackup     bool
}

// Selected returns the categories to refresh: all of them when no -only flag
// is set, otherwise exactly the flagged ones.
func (o Options) Selected() []artifact.Category {
	if !o.CommandsOnly && !o.AgentsOnly && !o.SkillsOnly {
		return artifact.AllCategories()
	}
	var out []artifact.Category
	if o.CommandsOnly {
		out = append(out, artifact.CategoryCommands)
	}
	if o.AgentsOnly {
		out = append(out, artifact.CategoryAgents)
	}
	if o.SkillsOnly {
		out = append(out, artifact.CategorySkills)
	}
	return out
}

// Report summarizes an update
type Report struct {
	// Refreshed lists the categories whose reinstall produced output
	Refreshed []artifact.Category
	// BackedUp lists the categories snapshotted before refresh
	BackedUp []artifact.Category
}

// Updated reports whether anything was refreshed
func (r *Report) Updated() bool {
	return len(r.Refreshed) > 0
}

// Run refreshes the selected categories of the installer's project.
// It fails with ErrNotInstalled, before touching anything, when the project
// has no assistant directory.
func Run(in *assets.Installer, opts Options) (*Report, error) {
	paths := config.RichAssistant().PathsIn(in.Root)
	if !fsutil.DirExists(in.Fs, paths.Dir) {
		return nil, ErrNotInstalled
	}

	in.Reporter.Info("Updating SF Compound Engineering in: " + in.Root)

	report := &Report{}
	for _, c := range opts.Selected() {
		in.Reporter.Info(fmt.Sprintf("Updating %s...", c))

		installed, backedUp, err := Refresh(in, c, !opts.NoBackup)
		if err != nil {
			return report, err
		}
		if backedUp {
			report.BackedUp = append(report.BackedUp, c)
		}
		if installed {
			report.Refreshed = append(report.Refreshed, c)
		}
	}
	return report, nil
}

// Refresh backs up (when backup is set) and reinstalls one category following
// its policy. It reports whether the reinstall produced output and whether a
// backup was taken.
func Refresh(in *assets.Installer, c artifact.Category, backup bool) (installed, backedUp bool, err error) {
	paths := config.RichAssistant().PathsIn(in.Root)
	live := paths.CategoryDir(c)
	backupDir := paths.BackupDir(c)
	policy := PolicyFor(c)
	exists := fsutil.DirExists(in.Fs, live)

	slog.Debug("refreshing category", "category", c, "policy", policy, "live", live, "backup", backup)

	if backup && exists {
		switch policy {
		case PolicyOverlay:
			_, err = fsutil.CopyMatching(in.Fs, live, artifact.CommandPattern, in.Fs, backupDir)
		case PolicyReplace:
			_, err = fsutil.ReplaceTree(in.Fs, live, in.Fs, backupDir)
		}
		if err != nil {
			return false, false, fmt.Errorf("failed to back up %s: %w", c, err)
		}
		in.Reporter.Info(fmt.Sprintf("Backed up existing %s to %s", c, backupDir))
		backedUp = true
	}

	if policy == PolicyReplace && exists {
		if err := in.Fs.RemoveAll(live); err != nil {
			return false, backedUp, fmt.Errorf("failed to remove %s: %w", live, err)
		}
	}

	installed, err = in.Install(c)
	return installed, backedUp, err
}
