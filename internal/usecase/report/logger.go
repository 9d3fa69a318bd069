package report

// Logger provides structured logging for the reporting use cases.
// zap's SugaredLogger satisfies this interface directly; tests can use
// NopLogger. Fields are alternating key/value pairs.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugw(string, ...interface{}) {}
func (NopLogger) Infow(string, ...interface{})  {}
func (NopLogger) Warnw(string, ...interface{})  {}
