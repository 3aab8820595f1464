package config

import "os"

const (
	DefaultDBPath      = "~/.local/share/bookkeeper/categories.db"
	DefaultLogLevel    = "info"
	DefaultLogEncoding = "console"
)

// DBPath returns the database path from BOOKKEEPER_DB env var,
// falling back to DefaultDBPath.
func DBPath() string {
	return envOr("BOOKKEEPER_DB", DefaultDBPath)
}

// LogLevel returns the zap level name from BOOKKEEPER_LOG_LEVEL.
func LogLevel() string {
	return envOr("BOOKKEEPER_LOG_LEVEL", DefaultLogLevel)
}

// LogEncoding returns "console" or "json" from BOOKKEEPER_LOG_ENCODING.
func LogEncoding() string {
	return envOr("BOOKKEEPER_LOG_ENCODING", DefaultLogEncoding)
}

// LogFile returns BOOKKEEPER_LOG_FILE, empty when unset.
// The TUI only logs when a file is given.
func LogFile() string {
	return os.Getenv("BOOKKEEPER_LOG_FILE")
}

func envOr(name, fallback string) string {
	if env := os.Getenv(name); env != "" {
		return env
	}
	return fallback
}
