package tracelog

// classification partitions an operation's parameters: at most one error
// payload, the context-eligible indices, and the full positional list used
// for template substitution. A parameter may appear both in the context and
// in the message.
type classification struct {
	exceptionIndex int // -1 when no error parameter is declared
	contextIndices []int
	allIndices     []int
}

// classify scans an operation's parameter list in declared order. The first
// error-kind parameter takes the exception slot; a second one is a
// *ClassificationError, as is any error parameter on an activity operation,
// because the record format assumes a single exception argument and timed
// activities carry none.
func classify(op *OperationSpec) (classification, error) {
	cls := classification{
		exceptionIndex: -1,
		allIndices:     make([]int, len(op.Params)),
	}
	for i, p := range op.Params {
		cls.allIndices[i] = i

		if p.Kind == KindError {
			if op.ReturnsActivity {
				return classification{}, &ClassificationError{
					Operation: op.Name,
					Param:     p.Name,
					Reason:    "error parameter not allowed on an activity operation",
				}
			}
			if cls.exceptionIndex >= 0 {
				return classification{}, &ClassificationError{
					Operation: op.Name,
					Param:     p.Name,
					Reason:    "second error parameter; only one exception slot exists",
				}
			}
			cls.exceptionIndex = i
			continue
		}

		if contextEligible(p.Kind) {
			cls.contextIndices = append(cls.contextIndices, i)
		}
	}
	return cls, nil
}
