package config

const (
	// DefaultOutputDir is where generated files land when nothing else is set
	DefaultOutputDir = "."
	// DefaultEnvFile is the dotenv file read before flags are applied
	DefaultEnvFile = ".env"

	// EnvOutputDir overrides the output directory
	EnvOutputDir = "ADDTEST_OUTPUT_DIR"
	// EnvEnvFile overrides the dotenv file location
	EnvEnvFile = "ADDTEST_ENV_FILE"
)
