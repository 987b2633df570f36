package tracelog

// Sink is the narrow boundary to an actual log backend. A dispatcher calls
// Emit for every record it produces; the core never retries, times out or
// inspects the outcome of an emission. loggerName is the owner name the
// dispatcher was bound with.
type Sink interface {
	Emit(loggerName string, level Level, message string, fields []Field, err error)
}

// NopSink discards every record. Useful as a bind target in benchmarks and
// wherever a dispatcher must exist before a real backend does.
type NopSink struct{}

func (NopSink) Emit(string, Level, string, []Field, error) {}
