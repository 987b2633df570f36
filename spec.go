package tracelog

import (
	"fmt"
	"time"
)

// Kind is the declared type of an operation parameter. String, integer,
// unsigned, float and bool parameters are context-eligible: they become
// structured fields on the emitted record. KindError marks the exception
// payload. KindAny participates in message interpolation only.
type Kind uint8

const (
	KindAny Kind = iota
	KindString
	KindInt
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindDuration
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindDuration:
		return "duration"
	case KindError:
		return "error"
	default:
		return "any"
	}
}

// contextEligible reports whether a parameter of this kind is a candidate
// for inclusion in the structured context of a record.
func contextEligible(k Kind) bool {
	switch k {
	case KindString, KindInt, KindInt64, KindUint64, KindFloat64, KindBool, KindDuration:
		return true
	default:
		return false
	}
}

// kindMatches reports whether a call-time argument satisfies the declared
// kind. A nil error argument is acceptable for KindError.
func kindMatches(k Kind, v any) bool {
	switch k {
	case KindAny:
		return true
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInt:
		_, ok := v.(int)
		return ok
	case KindInt64:
		_, ok := v.(int64)
		return ok
	case KindUint64:
		_, ok := v.(uint64)
		return ok
	case KindFloat64:
		_, ok := v.(float64)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindDuration:
		_, ok := v.(time.Duration)
		return ok
	case KindError:
		if v == nil {
			return true
		}
		_, ok := v.(error)
		return ok
	default:
		return false
	}
}

// Param declares one operation parameter. Position is the parameter's index
// in OperationSpec.Params.
type Param struct {
	Name string `validate:"required"`
	Kind Kind
}

// OperationSpec declares one logging operation of a contract: a unique name,
// exactly one severity level, a message template whose {name} placeholders
// must each match a declared parameter, and the ordered parameter list.
// Operations with ReturnsActivity produce a timed Activity instead of firing
// a record immediately; they may not declare an error parameter.
type OperationSpec struct {
	Name            string `validate:"required"`
	Level           Level
	Template        string
	Params          []Param `validate:"dive"`
	ReturnsActivity bool
}

// ContractSpec is an ordered set of operations sharing one contract name.
// The name is the contract's identity in the Registry: one compiled
// realization exists per name for the lifetime of the process.
type ContractSpec struct {
	Name       string          `validate:"required"`
	Operations []OperationSpec `validate:"required,dive"`
}

// paramNames returns the declared parameter names in positional order.
func (op *OperationSpec) paramNames() []string {
	names := make([]string, len(op.Params))
	for i, p := range op.Params {
		names[i] = p.Name
	}
	return names
}

func (op *OperationSpec) String() string {
	return fmt.Sprintf("%s(%d params, level %s)", op.Name, len(op.Params), op.Level)
}
