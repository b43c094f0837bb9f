package log

// Noop discards every log line. Useful in tests and as the default
// when no logger is configured.
type Noop struct{}

// NewNoop returns a logger that discards everything.
func NewNoop() *Noop { return &Noop{} }

func (*Noop) Debug(string, ...Field) {}

func (*Noop) Info(string, ...Field) {}

func (*Noop) Warn(string, ...Field) {}

func (*Noop) Error(string, ...Field) {}
