package port

// Fields holds structured key/value data attached to a log record.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on.
// It keeps use cases and adapters independent of the concrete logger.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	// Error records a failure, usually together with the error value.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a derived logger that always carries the given fields
	// (trace_id, component, use_case, ...).
	WithFields(fields Fields) LoggerPort
}
