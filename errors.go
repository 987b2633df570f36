package tracelog

import "fmt"

// TemplateError reports a message template that references an undeclared
// parameter or contains a malformed brace sequence. It is detected while a
// contract compiles, never at call time.
type TemplateError struct {
	Contract  string
	Operation string
	Template  string
	Token     string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("contract %s: operation %s: template %q: invalid token %q",
		e.Contract, e.Operation, e.Template, e.Token)
}

// ClassificationError reports an operation whose parameter list cannot be
// classified: a second error-typed parameter, or an error parameter on an
// activity operation.
type ClassificationError struct {
	Contract  string
	Operation string
	Param     string
	Reason    string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("contract %s: operation %s: parameter %s: %s",
		e.Contract, e.Operation, e.Param, e.Reason)
}

// ContractError reports a contract that failed to compile. Compilation of
// the whole contract aborts; the registry never caches a partial result.
// Unwrap exposes the operation-level cause (TemplateError,
// ClassificationError) when there is one.
type ContractError struct {
	Contract  string
	Operation string
	Reason    string
	Err       error
}

func (e *ContractError) Error() string {
	msg := "contract " + e.Contract
	if e.Operation != emptyString {
		msg += ": operation " + e.Operation
	}
	if e.Reason != emptyString {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ContractError) Unwrap() error { return e.Err }

// FormatError reports a call-time failure to produce a record: wrong
// argument count, an argument that does not match its declared kind, or a
// value whose rendering panicked. It surfaces to the caller of the logging
// operation instead of being swallowed.
type FormatError struct {
	Operation string
	Reason    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("operation %s: %s", e.Operation, e.Reason)
}
