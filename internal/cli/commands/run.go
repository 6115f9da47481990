package commands

import (
	"github.com/spf13/cobra"

	"ctr/internal/compare"
	"ctr/internal/config"
	"ctr/internal/execution"
	"ctr/internal/harness"
	"ctr/internal/ui"
)

// RunCommand handles the run command: compile <fixture>, stdout compared
// verbatim with the golden file
type RunCommand struct {
	config *config.Config
	suites *suiteRunner
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, suites *suiteRunner) *RunCommand {
	return &RunCommand{
		config: cfg,
		suites: suites,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.config
	suite := harness.Suite{
		Name:        cfg.TestsDir,
		TestsDir:    cfg.GetTestsDir(""),
		ExpectedDir: cfg.GetExpectedDir(""),
		Filter:      cfg.Flags.NameFilter,
		Invoker:     execution.NewArgRunner(cfg.GetCompilePath(), cfg.Timeout),
		Comparator:  compare.NewExact(),
	}
	dirs := []harness.Dir{
		{Name: cfg.TestsDir, Path: suite.TestsDir},
		{Name: cfg.ExpectedDir, Path: suite.ExpectedDir},
	}

	return rc.suites.run(cmd, suite, dirs, ui.NewBasicReport(cmd.OutOrStdout()))
}
