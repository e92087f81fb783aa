package commands

import (
	"fmt"

	"ath/internal/config"
	"ath/internal/discovery"
	"ath/internal/domain"
	"ath/internal/execution"
	"ath/internal/storage"
	"ath/internal/ui"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	// openRecorder is swapped in tests
	openRecorder func(dsn string) (storage.Recorder, error)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		openRecorder: func(dsn string) (storage.Recorder, error) {
			return storage.NewMySQLStorage(dsn)
		},
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := rc.scanner.Scan()
	if err != nil {
		return err
	}

	// Filter suites
	suites = rc.filter.FilterByName(suites, rc.config.Flags.NameFilter)

	if len(suites) == 0 {
		color.Yellow("No suites to run")
		return nil
	}

	// Create and set progress bar
	rc.executor.SetProgress(ui.NewProgressBar(len(suites), "Running suites"))

	results, duration, err := rc.executor.ExecuteWithOptions(suites, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	output := storage.BuildOutput(results, duration, rc.config.Workers())

	if !rc.config.Flags.NoSave {
		if err := rc.storage.Save(results, duration, rc.config.Workers()); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		if err := rc.record(cmd, output); err != nil {
			return err
		}
	}

	rc.formatter.PrintRunStats(output)

	return firstFailure(results)
}

// record appends the run to the MySQL history when a DSN is configured
func (rc *RunCommand) record(cmd *cobra.Command, output *domain.RunOutput) error {
	if rc.config.MySQLDSN == "" {
		return nil
	}
	recorder, err := rc.openRecorder(rc.config.MySQLDSN)
	if err != nil {
		return err
	}
	defer recorder.Close()

	if err := recorder.Record(cmd.Context(), output); err != nil {
		return fmt.Errorf("failed to record run history: %w", err)
	}
	glog.V(1).Info("run recorded in mysql history")
	return nil
}

// firstFailure turns the first failing suite into the command's error
func firstFailure(results []domain.SuiteResult) error {
	for _, r := range results {
		if r.Success {
			continue
		}
		if r.Failure != nil {
			return fmt.Errorf("suite %s failed: %s", r.Suite, ui.Describe(*r.Failure))
		}
		return r.Error
	}
	return nil
}
