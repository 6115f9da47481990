package commands

import (
	"github.com/spf13/cobra"

	"ctr/internal/storage"
	"ctr/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	storage storage.Storage
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(st storage.Storage) *StatsCommand {
	return &StatsCommand{storage: st}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := sc.storage.Load()
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintStats(report)
	return nil
}
