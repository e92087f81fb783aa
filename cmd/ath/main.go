package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"ath/internal/cli"
	"ath/internal/cli/commands"
	"ath/internal/config"
	"ath/internal/registry"
	_ "ath/internal/suites"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ath",
		Short:         "Assertion harness for integer operations",
		Long:          `Runs fixed input/expected-output cases against arithmetic subject functions, stopping each suite at its first failing case, and checks how well the suites catch operator mutations.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(flags.Verbose); err != nil {
				return err
			}
			return cfg.LoadEnv()
		},
	}
	rootCmd.PersistentFlags().IntVar(&flags.Verbose, "verbose", 0, "Diagnostic log verbosity written to stderr (0-2)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProjectPath, "project", config.DefaultProjectPath, "Project directory holding .env and stored results")

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, registry.Default, color.Output)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes glog to stderr at the requested verbosity
func setupLogging(verbose int) error {
	if err := flag.Set("logtostderr", "true"); err != nil {
		return err
	}
	return flag.Set("v", strconv.Itoa(verbose))
}
