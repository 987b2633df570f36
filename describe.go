package tracelog

import (
	"fmt"
	"strings"
)

// Describe renders the compiled contract for debug output: one line per
// operation with its level, positional template and parameter kinds.
func (c *CompiledContract) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "contract %s (%d operations)\n", c.name, len(c.order))

	for _, name := range c.order {
		op := c.ops[name]

		kind := "fire"
		if op.spec.ReturnsActivity {
			kind = "activity"
		}
		fmt.Fprintf(&b, "  %s %s [%s] %q", kind, name, op.spec.Level, op.positional)

		if len(op.spec.Params) > 0 {
			parts := make([]string, len(op.spec.Params))
			for i, p := range op.spec.Params {
				parts[i] = p.Name + ":" + p.Kind.String()
			}
			fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
