package core

// Level is the numeric bunyan severity of a record
type Level uint8

const (
	// TraceLevel for very detailed tracing, usually only in development
	TraceLevel Level = 10
	// DebugLevel for debugging information
	DebugLevel Level = 20
	// InfoLevel for regular operational messages
	InfoLevel Level = 30
	// WarnLevel for conditions worth a look
	WarnLevel Level = 40
	// ErrorLevel for failed requests or operations
	ErrorLevel Level = 50
	// FatalLevel for errors that stop the service
	FatalLevel Level = 60
)

// Known reports whether l is one of the six named severities.
func (l Level) Known() bool {
	switch l {
	case TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel:
		return true
	}
	return false
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}
