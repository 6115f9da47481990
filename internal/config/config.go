package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Working directory all relative paths are resolved against
	WorkDir string

	// Fixture layout
	TestsDir       string
	ExpectedDir    string
	ExpectedSuffix string

	// Executable under test
	CompilePath string
	Timeout     time.Duration

	// Output settings
	ResultsDir  string
	ResultsFile string
	DatabaseDSN string

	// Execution settings
	Processors int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		WorkDir:        ".",
		TestsDir:       DefaultTestsDir,
		ExpectedDir:    DefaultExpectedDir,
		ExpectedSuffix: DefaultExpectedSuffix,
		CompilePath:    DefaultCompilePath,
		ResultsDir:     DefaultResultsDir,
		ResultsFile:    DefaultResultsFile,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
}

// Load creates a config from defaults, the optional .env file in dir and
// the CTR_* environment variables. Values already present in the
// environment win over the .env file.
func Load(dir string) (*Config, error) {
	cfg := New()
	cfg.WorkDir = dir

	envPath := filepath.Join(dir, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	if v := os.Getenv("CTR_COMPILE"); v != "" {
		cfg.CompilePath = v
	}
	if v := os.Getenv("CTR_RESULTS_DIR"); v != "" {
		cfg.ResultsDir = v
	}
	if v := os.Getenv("CTR_DB_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("CTR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CTR_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("CTR_PROCESSORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CTR_PROCESSORS %q: %w", v, err)
		}
		cfg.Processors = n
	}

	return cfg, nil
}

// Apply copies parsed command flags onto the config. Zero values keep
// the configured defaults.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.TestsDir != "" {
		c.TestsDir = flags.TestsDir
	}
	if flags.ExpectedDir != "" {
		c.ExpectedDir = flags.ExpectedDir
	}
	if flags.CompilePath != "" {
		c.CompilePath = flags.CompilePath
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.DatabaseDSN != "" {
		c.DatabaseDSN = flags.DatabaseDSN
	}
}

// ValidCategory reports whether name is one of the known categories
func ValidCategory(name string) bool {
	return slices.Contains(Categories, name)
}

// GetCategoryDir returns the base directory of a category
func (c *Config) GetCategoryDir(category string) string {
	return c.resolve(category)
}

// GetTestsDir returns the fixture directory, scoped under category when one is given
func (c *Config) GetTestsDir(category string) string {
	if category != "" {
		return c.resolve(filepath.Join(category, DefaultTestsDir))
	}
	return c.resolve(c.TestsDir)
}

// GetExpectedDir returns the golden directory, scoped under category when one is given
func (c *Config) GetExpectedDir(category string) string {
	if category != "" {
		return c.resolve(filepath.Join(category, DefaultExpectedDir))
	}
	return c.resolve(c.ExpectedDir)
}

// GetCompilePath returns the path to the compile executable
func (c *Config) GetCompilePath() string {
	return c.resolve(c.CompilePath)
}

// GetCompileArgs returns the extra arguments passed to compile for a category
func (c *Config) GetCompileArgs(category string) []string {
	if category == CategorySemantic {
		return slices.Clone(SemanticFlags)
	}
	return nil
}

// GetOutputPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and failures always use the same file.
func (c *Config) GetOutputPath() string {
	p := c.resolve(filepath.Join(c.ResultsDir, c.ResultsFile))
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.WorkDir == "" || c.WorkDir == "." {
		return p
	}
	return filepath.Join(c.WorkDir, p)
}
