package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ath/internal/config"
	"ath/internal/discovery"
	"ath/internal/mutation"
	"ath/internal/ui"
)

// MutateCommand handles the mutate command
type MutateCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	mutator   *mutation.Mutator
	formatter *ui.Formatter
}

// NewMutateCommand creates a new MutateCommand
func NewMutateCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	mutator *mutation.Mutator,
	formatter *ui.Formatter,
) *MutateCommand {
	return &MutateCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		mutator:   mutator,
		formatter: formatter,
	}
}

// Execute runs the command
func (mc *MutateCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := mc.scanner.Scan()
	if err != nil {
		return err
	}
	suites = mc.filter.FilterByName(suites, mc.config.Flags.NameFilter)

	mutants := mc.mutator.Generate(suites)
	if len(mutants) == 0 {
		color.Yellow("No mutants to analyze")
		return nil
	}

	report, err := mc.mutator.Analyze(cmd.Context(), mutants)
	if err != nil {
		return err
	}

	mc.formatter.PrintMutationReport(report)
	return nil
}
