package config

const (
	// DefaultTestsDir is the directory holding the fixtures
	DefaultTestsDir = "tests"
	// DefaultExpectedDir is the directory holding the golden files
	DefaultExpectedDir = "expected-outputs"
	// DefaultCompilePath is the executable under test
	DefaultCompilePath = "./compile"
	// DefaultExpectedSuffix is appended to a fixture name to find its golden file
	DefaultExpectedSuffix = "-out"
	// DefaultResultsDir is where run results are stored
	DefaultResultsDir = ".ctr"
	// DefaultResultsFile is the results JSON file name
	DefaultResultsFile = "results.json"
	// DefaultProcessors keeps execution sequential
	DefaultProcessors = 1
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Categories are the category directories accepted by the categorized runner
var Categories = []string{
	CategorySyntax,
	CategorySemantic,
}

const (
	CategorySyntax   = "syntax-tests"
	CategorySemantic = "semantic-tests"
)

// SemanticFlags are passed to the compile executable for semantic tests
var SemanticFlags = []string{"--chk_decl"}
