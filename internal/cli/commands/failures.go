package commands

import (
	"github.com/spf13/cobra"

	"ctr/internal/storage"
	"ctr/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	storage storage.Storage
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(st storage.Storage) *FailuresCommand {
	return &FailuresCommand{storage: st}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return ui.NewErrorViewer(fc.storage, cmd.OutOrStdout()).View(report)
}
