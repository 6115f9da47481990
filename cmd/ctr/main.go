package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ctr/internal/cli"
	"ctr/internal/cli/commands"
	"ctr/internal/config"
	"ctr/internal/exitcodes"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create initial config from defaults, .env and CTR_* variables
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(exitcodes.TestFailure)
	}

	rootCmd := newRootCmd(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(cli.ExitCode(err, os.Stdout))
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ctr",
		Short:         "Golden-output test runner for a compile executable",
		Long:          `Run an external 'compile' executable over fixture files and compare its output with golden files in expected-outputs/.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies and register them
	commands.NewCommands(cfg).Register(rootCmd, &flags, cfg)

	return rootCmd
}
