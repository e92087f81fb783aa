package commands

import (
	"io"

	"ath/internal/cli"
	"ath/internal/config"
	"ath/internal/discovery"
	"ath/internal/execution"
	"ath/internal/mutation"
	"ath/internal/registry"
	"ath/internal/storage"
	"ath/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Mutate   *MutateCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies; reports are written to out
func NewCommands(cfg *config.Config, reg *registry.Registry, out io.Writer) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(reg)
	filter := discovery.NewFilter()
	runner := execution.NewRunner()
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	mutator := mutation.NewMutator(runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatterWithWriter(out)
	failureViewer := ui.NewFailureViewer(jsonStorage)
	plainViewer := ui.NewPlainViewer(formatter)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, executor, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, filter, formatter, jsonStorage),
		Mutate:   NewMutateCommand(cfg, scanner, filter, mutator, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer, plainViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered suites",
		Long:    "Assert every registered suite against its subject function, stopping each suite at its first failing case",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of workers running suites (default 1, or ATH_PROCESSORS)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g., 'add*' or '*iv*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Do not start another suite after the first failing one")
	runCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not store the results of this run")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered suites",
		Long:    "List all registered suites without running them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g., 'add*' or '*iv*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List the cases of every suite")
	rootCmd.AddCommand(listCmd)

	// Mutate command
	mutateCmd := &cobra.Command{
		Use:     "mutate",
		Short:   "Check that suites catch operator swaps",
		Long:    "Run every suite against its subject with the arithmetic operator swapped and report the mutation score",
		RunE:    c.Mutate.Execute,
		PreRunE: applyFlags,
	}
	mutateCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter suites by name pattern (supports wildcards, e.g., 'add*' or '*iv*')")
	rootCmd.AddCommand(mutateCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failures from the last run",
		Long:    "Display failures from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print failures as text instead of opening the viewer")
	rootCmd.AddCommand(failuresCmd)
}
