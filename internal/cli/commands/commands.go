package commands

import (
	"github.com/spf13/cobra"

	"ctr/internal/cli"
	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/storage"
)

const (
	categoryUsage = "Usage: ctr category [syntax-tests | semantic-tests]"
	listUsage     = "Usage: ctr list [syntax-tests | semantic-tests]"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Category *CategoryCommand
	List     *ListCommand
	Failures *FailuresCommand
	Stats    *StatsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.ExpectedSuffix)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	suites := newSuiteRunner(cfg, scanner, filter, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, suites),
		Category: NewCategoryCommand(cfg, suites),
		List:     NewListCommand(cfg, scanner, filter),
		Failures: NewFailuresCommand(jsonStorage),
		Stats:    NewStatsCommand(jsonStorage),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run compile against tests/ and compare stdout with expected-outputs/",
		Long:    "Invoke 'compile <fixture>' for every file in the tests directory and compare its stdout with <expected-dir>/<fixture>-out.",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVar(&flags.TestsDir, "tests-dir", "", `Directory holding the fixtures (default "tests")`)
	runCmd.Flags().StringVar(&flags.ExpectedDir, "expected-dir", "", `Directory holding the golden files (default "expected-outputs")`)
	addRunFlags(runCmd, flags)
	rootCmd.AddCommand(runCmd)

	// Category command
	categoryCmd := &cobra.Command{
		Use:       "category <syntax-tests|semantic-tests>",
		Short:     "Run a syntax or semantic test category",
		Long:      "Stream every fixture of <category>/tests into compile on stdin ('--chk_decl' for semantic-tests) and check it against <category>/expected-outputs.",
		ValidArgs: config.Categories,
		Args:      categoryArgs(categoryUsage, false),
		RunE:      c.Category.Execute,
		PreRunE:   applyFlags,
	}
	addRunFlags(categoryCmd, flags)
	rootCmd.AddCommand(categoryCmd)

	// List command
	listCmd := &cobra.Command{
		Use:       "list [syntax-tests|semantic-tests]",
		Short:     "List discovered fixtures",
		Long:      "Scan and list the fixtures of tests/ or of a category without running compile",
		ValidArgs: config.Categories,
		Args:      categoryArgs(listUsage, true),
		RunE:      c.List.Execute,
		PreRunE:   applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g. 'test_*' or '*loop*')")
	listCmd.Flags().StringVar(&flags.TestsDir, "tests-dir", "", `Directory holding the fixtures (default "tests")`)
	listCmd.Flags().StringVar(&flags.ExpectedDir, "expected-dir", "", `Directory holding the golden files (default "expected-outputs")`)
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Aliases: []string{"faills"},
		Short:   "View failures of the last run interactively",
		Args:    cobra.NoArgs,
		RunE:    c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of the last run",
		Args:  cobra.NoArgs,
		RunE:  c.Stats.Execute,
	}
	rootCmd.AddCommand(statsCmd)
}

func addRunFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.CompilePath, "compile", "", `Path to the compile executable (default "./compile", or $CTR_COMPILE)`)
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g. 'test_*' or '*loop*')")
	cmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of fixtures to run at once, results are still reported in order (default 1, or $CTR_PROCESSORS)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill compile after this long per fixture, 0 waits forever (or $CTR_TIMEOUT)")
	cmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failure")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not store the results for 'ctr failures' and 'ctr stats'")
	cmd.Flags().StringVar(&flags.DatabaseDSN, "db-dsn", "", "Also record the run in MySQL, user:pass@tcp(host:port)/dbname (or $CTR_DB_DSN)")
}

// categoryArgs accepts exactly one known category, or none when optional
func categoryArgs(usage string, optional bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if optional && len(args) == 0 {
			return nil
		}
		if len(args) != 1 || !config.ValidCategory(args[0]) {
			return &cli.UsageError{Usage: usage}
		}
		return nil
	}
}
