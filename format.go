package tracelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one structured key/value pair of a record's context.
type Field struct {
	Key   string
	Value any
}

// Record is the transient result of formatting one logging operation,
// handed to the Sink. Fields are ordered by declared parameter position and
// deduplicated first-write-wins.
type Record struct {
	Message string
	Fields  []Field
	Level   Level
	Err     error
}

// formatRecord substitutes the operation's positional template with the
// call arguments and assembles the structured context. It performs no I/O.
// Shape errors were caught at compile time; what remains at call time —
// wrong arity, an argument of the wrong kind, a value whose rendering
// panics — surfaces as a *FormatError.
func formatRecord(op *compiledOp, args []any) (Record, error) {
	if len(args) != len(op.spec.Params) {
		return Record{}, &FormatError{
			Operation: op.spec.Name,
			Reason:    fmt.Sprintf("got %d arguments, operation declares %d", len(args), len(op.spec.Params)),
		}
	}
	for i, p := range op.spec.Params {
		if !kindMatches(p.Kind, args[i]) {
			return Record{}, &FormatError{
				Operation: op.spec.Name,
				Reason:    fmt.Sprintf("argument %s is %T, declared %s", p.Name, args[i], p.Kind),
			}
		}
	}

	msg, err := substitute(op, args)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Message: msg,
		Fields:  contextFields(op, args),
		Level:   op.spec.Level,
	}
	if op.cls.exceptionIndex >= 0 {
		if e, ok := args[op.cls.exceptionIndex].(error); ok {
			rec.Err = e
		}
	}
	return rec, nil
}

// contextFields builds the ordered context for the given arguments,
// keeping the first value on a duplicate key.
func contextFields(op *compiledOp, args []any) []Field {
	if len(op.cls.contextIndices) == 0 {
		return nil
	}
	fields := make([]Field, 0, len(op.cls.contextIndices))
	seen := make(map[string]bool, len(op.cls.contextIndices))
	for _, i := range op.cls.contextIndices {
		key := op.spec.Params[i].Name
		if seen[key] {
			continue
		}
		seen[key] = true
		fields = append(fields, Field{Key: key, Value: args[i]})
	}
	return fields
}

// substitute replaces every {i} marker with the rendered argument. The
// positional template is trusted to contain only valid {digits} tokens; an
// out-of-range index or a panicking String method becomes a *FormatError.
func substitute(op *compiledOp, args []any) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg = emptyString
			err = &FormatError{
				Operation: op.spec.Name,
				Reason:    fmt.Sprintf("rendering a value panicked: %v", r),
			}
		}
	}()

	tmpl := op.positional
	var b strings.Builder
	b.Grow(len(tmpl) + 16)
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '{' {
			b.WriteByte(tmpl[i])
			continue
		}
		end := strings.IndexByte(tmpl[i+1:], '}')
		idx, _ := strconv.Atoi(tmpl[i+1 : i+1+end])
		if idx >= len(args) {
			return emptyString, &FormatError{
				Operation: op.spec.Name,
				Reason:    fmt.Sprintf("positional marker {%d} exceeds argument count %d", idx, len(args)),
			}
		}
		b.WriteString(renderValue(args[idx]))
		i += end + 1
	}
	return b.String(), nil
}

// renderValue is the standard string conversion used for interpolation.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
