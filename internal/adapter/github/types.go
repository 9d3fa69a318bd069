package github

// IssueComment is the slice of a PR comment the publisher needs:
// the id for in-place edits and the body for identifier matching.
type IssueComment struct {
	ID   int64
	Body string
}

// Logger provides structured logging for outbound API calls. zap's
// SugaredLogger satisfies it directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
}

// nopLogger discards all output; used when no logger is injected.
type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
