package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ath/internal/config"
	"ath/internal/storage"
	"ath/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config      *config.Config
	storage     storage.Storage
	interactive ui.Viewer
	plain       ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage, interactive, plain ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:      cfg,
		storage:     st,
		interactive: interactive,
		plain:       plain,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	if fc.config.Flags.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fc.plain.View(results)
	}
	return fc.interactive.View(results)
}
