// Package tracelog turns declarative trace contracts into callable,
// structured logging dispatchers backed by rs/zerolog (or any Sink).
//
// A contract is plain data: a named set of operations, each with a severity
// level, a message template with {param} placeholders, and a typed parameter
// list. Contracts are compiled once per process (templates validated,
// parameters classified) and bound per owner to a Sink.
//
// Key features
//   - Compile-time template validation: a placeholder that names an
//     undeclared parameter, or any stray brace, fails registration instead
//     of the first real log call
//   - Parameter classification: one optional error payload, primitive and
//     string parameters become structured context fields, everything is
//     available for message interpolation
//   - One compiled contract per contract name, safe under concurrent first
//     use; binding an owner name to a sink is cheap
//   - Timed activities: operations declared with ReturnsActivity emit a
//     start record immediately and exactly one end record (with elapsed
//     time) when the activity is closed, on every exit path
//   - Error history enrichment: the zerolog Service sink attaches the full
//     unwrap chain and root cause for any record carrying an error
//
// Typical usage
//
//	svc := tracelog.NewService(&tracelog.ServiceConfig{Level: "debug", ConsoleLogging: true})
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	compiled, err := tracelog.Default().GetOrCompile(spec)
//	if err != nil { panic(err) }
//	disp := compiled.Bind("orders", svc)
//
//	_ = disp.Fire("Greet", "Ada")
//	act, _ := disp.Begin("Sync", 3)
//	defer act.Close()
package tracelog
