package config

// Log level constants, matching the levels the logger implementations emit
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
