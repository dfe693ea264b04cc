package dispatch

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// PanicHandler is called when a recovered handler panics. It receives the
// event being delivered, the panic value, and the captured stack.
type PanicHandler func(event any, panicValue any, stack []byte)

// Result reports the outcome of a single handler invocation.
type Result struct {
	// Completed is true when the handler ran to completion.
	Completed bool

	// Panicked is true when the handler panicked and was recovered.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked.
	PanicValue any

	// PanicStack is the stack trace captured at recovery, if Panicked.
	PanicStack []byte

	// Duration is the handler execution time.
	Duration time.Duration
}

// Executor runs handler invocations synchronously with timing capture and
// optional panic recovery.
type Executor struct {
	panicHandler PanicHandler

	// Stats
	invoked     atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicHandler installs a panic handler, switching the executor to
// recovery mode.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates an executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Invoke runs fn, which delivers event to one handler, and captures timing.
// Without a panic handler a panic inside fn propagates to the caller.
func (e *Executor) Invoke(event any, fn func()) Result {
	if e.panicHandler == nil {
		return e.invokePropagating(fn)
	}
	return e.invokeRecovering(event, fn)
}

func (e *Executor) invokePropagating(fn func()) Result {
	e.invoked.Add(1)

	start := time.Now()
	fn()
	d := time.Since(start)

	e.totalTimeNs.Add(d.Nanoseconds())
	return Result{Completed: true, Duration: d}
}

func (e *Executor) invokeRecovering(event any, fn func()) (result Result) {
	e.invoked.Add(1)
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)
		e.totalTimeNs.Add(result.Duration.Nanoseconds())

		if r := recover(); r != nil {
			result.Completed = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = debug.Stack()
			e.panicked.Add(1)

			// The panic handler must not take down the process either.
			func() {
				defer func() { _ = recover() }()
				e.panicHandler(event, result.PanicValue, result.PanicStack)
			}()
		}
	}()

	fn()
	result.Completed = true
	return result
}

// Stats contains executor counters.
type Stats struct {
	// Invoked is the total number of invocations started.
	Invoked uint64

	// Panicked is the number of invocations that panicked and were
	// recovered.
	Panicked uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}

// Stats returns a snapshot of the executor counters. Values may be slightly
// inconsistent with each other under concurrent updates.
func (e *Executor) Stats() Stats {
	invoked := e.invoked.Load()
	totalNs := e.totalTimeNs.Load()

	var avgNs int64
	if invoked > 0 {
		avgNs = totalNs / int64(invoked)
	}

	return Stats{
		Invoked:       invoked,
		Panicked:      e.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}
