package cli

import (
	"time"

	"ctr/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Processors  int
	TestsDir    string
	ExpectedDir string
	CompilePath string
	NameFilter  string
	Timeout     time.Duration
	FailFast    bool
	Progress    bool
	NoSave      bool
	DatabaseDSN string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors:  f.Processors,
		TestsDir:    f.TestsDir,
		ExpectedDir: f.ExpectedDir,
		CompilePath: f.CompilePath,
		NameFilter:  f.NameFilter,
		Timeout:     f.Timeout,
		FailFast:    f.FailFast,
		Progress:    f.Progress,
		NoSave:      f.NoSave,
		DatabaseDSN: f.DatabaseDSN,
	}
}
