package commands

import (
	"errors"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ath/internal/config"
	"ath/internal/discovery"
	"ath/internal/storage"
	"ath/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := lc.scanner.Scan()
	if err != nil {
		return err
	}

	// Filter suites
	suites = lc.filter.FilterByName(suites, lc.config.Flags.NameFilter)

	if len(suites) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	// Mark suites that failed in the last run, if there was one
	failed := make(map[string]struct{})
	last, err := lc.storage.Load()
	switch {
	case err == nil:
		for _, f := range last.Details {
			failed[f.Suite] = struct{}{}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	lc.formatter.PrintSuiteList(suites, lc.config.Flags.TestCases, failed)
	return nil
}
