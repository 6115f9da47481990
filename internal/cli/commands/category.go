package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"ctr/internal/compare"
	"ctr/internal/config"
	"ctr/internal/execution"
	"ctr/internal/harness"
	"ctr/internal/ui"
)

// CategoryCommand handles the category command: fixtures are streamed to
// compile on stdin and judged by their filename prefix
type CategoryCommand struct {
	config *config.Config
	suites *suiteRunner
}

// NewCategoryCommand creates a new CategoryCommand
func NewCategoryCommand(cfg *config.Config, suites *suiteRunner) *CategoryCommand {
	return &CategoryCommand{
		config: cfg,
		suites: suites,
	}
}

// Execute runs the command. args holds exactly one valid category.
func (cc *CategoryCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := cc.config
	category := args[0]

	suite := harness.Suite{
		Name:        category,
		TestsDir:    cfg.GetTestsDir(category),
		ExpectedDir: cfg.GetExpectedDir(category),
		Filter:      cfg.Flags.NameFilter,
		Invoker:     execution.NewStdinRunner(cfg.GetCompilePath(), cfg.GetCompileArgs(category), cfg.Timeout),
		Comparator:  compare.NewCategorized(),
	}
	dirs := []harness.Dir{
		{Name: category, Path: cfg.GetCategoryDir(category)},
		{Name: filepath.Join(category, config.DefaultTestsDir), Path: suite.TestsDir},
		{Name: filepath.Join(category, config.DefaultExpectedDir), Path: suite.ExpectedDir},
	}

	return cc.suites.run(cmd, suite, dirs, ui.NewCategoryReport(cmd.OutOrStdout(), category))
}
