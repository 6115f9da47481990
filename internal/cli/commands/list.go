package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	category := ""
	title := lc.config.TestsDir
	if len(args) == 1 {
		category = args[0]
		title = category
	}

	cases, err := lc.scanner.Scan(lc.config.GetTestsDir(category), lc.config.GetExpectedDir(category))
	if err != nil {
		return err
	}
	cases = lc.filter.FilterByName(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No fixtures found")
		return nil
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintCaseList(title, cases)
	return nil
}
