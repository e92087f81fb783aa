package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".ath"
	// DefaultProcessors runs suites one after another
	DefaultProcessors = 1
	// DefaultEnvFile is loaded from the project path before reading the environment
	DefaultEnvFile = ".env"
)

// Environment variables read by Load
const (
	EnvProcessors = "ATH_PROCESSORS"
	EnvOutputDir  = "ATH_OUTPUT_DIR"
	EnvOutputFile = "ATH_OUTPUT_FILE"
	EnvMySQLDSN   = "ATH_MYSQL_DSN"
)
