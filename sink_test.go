package tracelog

import "sync"

// captureSink records every emission for assertions.
type captureSink struct {
	mu      sync.Mutex
	records []capturedRecord
}

type capturedRecord struct {
	Logger  string
	Level   Level
	Message string
	Fields  []Field
	Err     error
}

func (c *captureSink) Emit(loggerName string, level Level, message string, fields []Field, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, capturedRecord{
		Logger:  loggerName,
		Level:   level,
		Message: message,
		Fields:  fields,
		Err:     err,
	})
}

func (c *captureSink) all() []capturedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]capturedRecord, len(c.records))
	copy(out, c.records)
	return out
}

// fieldValue returns the value for key, nil when absent.
func (r capturedRecord) fieldValue(key string) any {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
