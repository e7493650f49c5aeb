package config

const (
	// DefaultPadding is added to unit name lengths when tracking a
	// context's display width.
	DefaultPadding = 4
	// DefaultEnvFile is the optional dotenv file consulted by Load.
	DefaultEnvFile = ".env"

	// Environment variable names recognized by Load.
	EnvNoColor  = "UTEST_NO_COLOR"
	EnvQuiet    = "UTEST_QUIET"
	EnvProgress = "UTEST_PROGRESS"
	EnvPadding  = "UTEST_PADDING"
)
