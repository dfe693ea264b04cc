// Package dispatch executes event handler invocations for the bus.
//
// The Executor runs one invocation at a time on the caller's goroutine and
// captures timing. By default a handler panic propagates: the bus contract
// assumes handlers do not fail across the dispatch boundary, and a panic is
// the caller's problem. Installing a PanicHandler switches the executor to
// recovery mode: the panic value and stack are captured into the Result and
// reported, and the process keeps running.
package dispatch
