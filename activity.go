package tracelog

import (
	"fmt"
	"time"

	"go.uber.org/atomic"
)

// Activity is one in-flight timed operation. It is owned by the caller that
// began it and must be closed exactly once; Close is idempotent so a
// deferred Close may race a prior explicit one without emitting twice.
type Activity struct {
	owner  string
	name   string
	level  Level
	fields []Field
	sink   Sink
	start  time.Time
	closed atomic.Bool
}

// startActivity records the start instant and immediately emits the start
// record "<name> [+]" with the activity's context and level.
func startActivity(owner, name string, level Level, fields []Field, sink Sink) *Activity {
	a := &Activity{
		owner:  owner,
		name:   name,
		level:  level,
		fields: fields,
		sink:   sink,
		start:  time.Now(),
	}
	a.emit(name + " [+]")
	return a
}

// Name returns the operation name this activity was begun from.
func (a *Activity) Name() string { return a.name }

// Elapsed returns the time since the activity started. After Close it keeps
// growing; the closing record captured the value that mattered.
func (a *Activity) Elapsed() time.Duration { return time.Since(a.start) }

// Close emits the end record "<name> [<elapsed>]" with the same context and
// level as the start record. Only the first call emits; later calls are
// no-ops. Callers are expected to `defer act.Close()` so the end record is
// produced on every exit path, panics included.
func (a *Activity) Close() {
	if !a.closed.CompareAndSwap(false, true) {
		return
	}
	a.emit(a.name + " [" + formatElapsed(time.Since(a.start)) + "]")
}

func (a *Activity) emit(message string) {
	if a.level == LevelNone {
		return
	}
	a.sink.Emit(a.owner, a.level, message, a.fields, nil)
}

// formatElapsed renders a duration as m:ss.fff once a full minute has
// elapsed, s.fff below that. 500ms is "0.500", 61.5s is "1:01.500".
func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	if ms >= 60_000 {
		return fmt.Sprintf("%d:%02d.%03d", ms/60_000, (ms%60_000)/1000, ms%1000)
	}
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
