package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ctr/internal/cli"
	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/domain"
	"ctr/internal/execution"
	"ctr/internal/harness"
	"ctr/internal/storage"
	"ctr/internal/ui"
)

// suiteRunner runs a suite end to end: preflight, execution, reporting
// and storing the results
type suiteRunner struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	storage storage.Storage
}

func newSuiteRunner(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, st storage.Storage) *suiteRunner {
	return &suiteRunner{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		storage: st,
	}
}

func (sr *suiteRunner) run(cmd *cobra.Command, suite harness.Suite, dirs []harness.Dir, reporter harness.Reporter) error {
	if err := harness.Preflight(dirs, sr.config.GetCompilePath()); err != nil {
		return err
	}

	pool := execution.NewWorkerPool(sr.config.Processors, sr.config.Flags.FailFast)
	h := harness.New(sr.scanner, sr.filter, pool, reporter)

	cases, err := h.Discover(suite)
	if err != nil {
		return err
	}
	if sr.config.Flags.Progress {
		pool.SetProgress(ui.NewProgressBar(cmd.ErrOrStderr(), len(cases)))
	}

	run := h.Execute(cmd.Context(), suite, cases)

	report := domain.NewReport(run.Suite, run.Summary, run.Results, run.Duration, sr.config.Processors)
	sr.save(cmd, report)

	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}
	if !run.Summary.OK() {
		return cli.ErrTestsFailed
	}
	return nil
}

// save stores the report. Storage problems are reported on stderr and
// never change the outcome of the run.
func (sr *suiteRunner) save(cmd *cobra.Command, report *domain.Report) {
	if !sr.config.Flags.NoSave {
		if err := sr.storage.Save(report); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save test results: %v\n", err)
		}
	}

	if sr.config.DatabaseDSN == "" {
		return
	}
	db, err := storage.OpenMySQL(sr.config.DatabaseDSN)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return
	}
	defer db.Close()
	if err := db.Save(report); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record run in database: %v\n", err)
	}
}
