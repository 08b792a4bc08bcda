package ports

// ProgressSink receives human-readable status lines at sheet granularity.
// Purely observational; implementations must not influence control flow.
type ProgressSink interface {
	Progress(msg string)
}

// ProgressFunc adapts a plain function to ProgressSink.
type ProgressFunc func(string)

func (f ProgressFunc) Progress(msg string) { f(msg) }

// NopProgress discards all progress updates.
var NopProgress ProgressSink = ProgressFunc(func(string) {})
