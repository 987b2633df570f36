package tracelog

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// compiledOp is one operation after compilation: the declared spec, the
// positional template, and the parameter classification.
type compiledOp struct {
	spec       OperationSpec
	positional string
	cls        classification
}

// CompiledContract is the immutable realization of a ContractSpec. One
// instance exists per contract name per Registry; owner names bind to it
// via Bind without recompiling.
type CompiledContract struct {
	name  string
	ops   map[string]*compiledOp
	order []string
}

// Name returns the contract name this realization was compiled from.
func (c *CompiledContract) Name() string { return c.name }

// Operations returns the operation names in declared order.
func (c *CompiledContract) Operations() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Registry caches compiled contracts by contract name. Compilation runs
// under one mutex: concurrent first calls for the same name all observe the
// same CompiledContract, and a failed compilation is never cached.
type Registry struct {
	mu       sync.Mutex
	compiled map[string]*CompiledContract
	compiles atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{compiled: make(map[string]*CompiledContract)}
}

// defaultRegistry is the process-wide registry, initialized empty and never
// evicted; teardown is process exit.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// GetOrCompile returns the compiled contract for spec.Name, compiling it on
// first use. A spec that fails validation aborts as a whole with a
// *ContractError and leaves the registry unchanged; re-querying a
// previously compiled name returns the cached instance without
// re-validating.
func (r *Registry) GetOrCompile(spec ContractSpec) (*CompiledContract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.compiled[spec.Name]; ok {
		return c, nil
	}

	c, err := compileContract(spec)
	if err != nil {
		return nil, err
	}
	r.compiles.Add(1)
	r.compiled[spec.Name] = c
	return c, nil
}

// compileCount reports how many contracts this registry has compiled.
func (r *Registry) compileCount() int64 { return r.compiles.Load() }

func compileContract(spec ContractSpec) (*CompiledContract, error) {
	if err := validateSpec(&spec); err != nil {
		return nil, &ContractError{Contract: spec.Name, Reason: "invalid contract spec", Err: err}
	}

	c := &CompiledContract{
		name:  spec.Name,
		ops:   make(map[string]*compiledOp, len(spec.Operations)),
		order: make([]string, 0, len(spec.Operations)),
	}

	for i := range spec.Operations {
		op := spec.Operations[i]

		if _, dup := c.ops[op.Name]; dup {
			return nil, &ContractError{
				Contract:  spec.Name,
				Operation: op.Name,
				Reason:    "duplicate operation name",
			}
		}
		if op.Level == levelUnset {
			return nil, &ContractError{
				Contract:  spec.Name,
				Operation: op.Name,
				Reason:    "operation has no severity level",
			}
		}

		cls, err := classify(&op)
		if err != nil {
			if cerr, ok := err.(*ClassificationError); ok {
				cerr.Contract = spec.Name
			}
			return nil, &ContractError{Contract: spec.Name, Operation: op.Name, Err: err}
		}

		positional, err := validateTemplate(op.Template, op.paramNames())
		if err != nil {
			if terr, ok := err.(*TemplateError); ok {
				terr.Contract = spec.Name
				terr.Operation = op.Name
			}
			return nil, &ContractError{Contract: spec.Name, Operation: op.Name, Err: err}
		}

		c.ops[op.Name] = &compiledOp{spec: op, positional: positional, cls: cls}
		c.order = append(c.order, op.Name)
	}
	return c, nil
}

// Dispatcher is a compiled contract bound to one owner name and one Sink.
// The compiled operation bodies are shared across owners; only the binding
// differs. Dispatchers are cheap to create and safe for concurrent use.
type Dispatcher struct {
	contract *CompiledContract
	owner    string
	sink     Sink
}

// Bind attaches an owner name and a sink to the compiled contract.
func (c *CompiledContract) Bind(owner string, sink Sink) *Dispatcher {
	return &Dispatcher{contract: c, owner: owner, sink: sink}
}

// Fire formats and emits one record for a fire-and-forget operation.
// Operations declared with ReturnsActivity must go through Begin. An
// operation at LevelNone formats nothing and is never emitted.
func (d *Dispatcher) Fire(operation string, args ...any) error {
	op, ok := d.contract.ops[operation]
	if !ok {
		return fmt.Errorf("contract %s: unknown operation %q", d.contract.name, operation)
	}
	if op.spec.ReturnsActivity {
		return fmt.Errorf("contract %s: operation %s returns an activity, use Begin", d.contract.name, operation)
	}
	if op.spec.Level == LevelNone {
		return nil
	}

	rec, err := formatRecord(op, args)
	if err != nil {
		return err
	}
	d.sink.Emit(d.owner, rec.Level, rec.Message, rec.Fields, rec.Err)
	return nil
}

// Begin starts a timed activity for an operation declared with
// ReturnsActivity: the start record is emitted immediately and the end
// record exactly once when the returned Activity is closed.
func (d *Dispatcher) Begin(operation string, args ...any) (*Activity, error) {
	op, ok := d.contract.ops[operation]
	if !ok {
		return nil, fmt.Errorf("contract %s: unknown operation %q", d.contract.name, operation)
	}
	if !op.spec.ReturnsActivity {
		return nil, fmt.Errorf("contract %s: operation %s does not return an activity, use Fire", d.contract.name, operation)
	}

	if len(args) != len(op.spec.Params) {
		return nil, &FormatError{
			Operation: op.spec.Name,
			Reason:    fmt.Sprintf("got %d arguments, operation declares %d", len(args), len(op.spec.Params)),
		}
	}
	for i, p := range op.spec.Params {
		if !kindMatches(p.Kind, args[i]) {
			return nil, &FormatError{
				Operation: op.spec.Name,
				Reason:    fmt.Sprintf("argument %s is %T, declared %s", p.Name, args[i], p.Kind),
			}
		}
	}

	return startActivity(d.owner, op.spec.Name, op.spec.Level, contextFields(op, args), d.sink), nil
}
