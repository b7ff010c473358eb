package domain

// LogLevel is the severity attached to telemetry vertex log lines.
type LogLevel int

const (
	// LogLevelInfo marks routine progress messages.
	LogLevelInfo LogLevel = iota
	// LogLevelWarn marks recoverable conditions the run continues past.
	LogLevelWarn
	// LogLevelError marks fatal conditions.
	LogLevelError
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
