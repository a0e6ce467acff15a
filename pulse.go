package pulse

import "github.com/pulsego/pulse/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a readable/writable signal holding an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial),
	}
}

// Read the current value of the signal, tracking the dependency if within a reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.signal.Read())
}

// Peek at the current value without creating a dependency edge.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Peek())
}

// Write a new value to the signal, triggering updates to any dependents.
// Writes always propagate, even when the value is unchanged.
func (s *Signal[T]) Write(v T) {
	s.signal.Write(v)
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a lazily-memoized value derived from other signals.
// The derivation only re-runs when read after one of its inputs changed.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return compute()
		}),
	}
}

// Read the current value of the computed, tracking the dependency if within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.computed.Read())
}

// Peek at the cached value without tracking or refreshing; it may be
// stale if an input changed since the last read.
func (c *Computed[T]) Peek() T {
	return as[T](c.computed.Peek())
}

type Effect struct {
	effect *internal.Effect
}

// NewEffect creates a reactive effect that runs immediately and re-runs
// whenever its dependencies change. The body may return a cleanup
// function, invoked before the next run and on Stop.
func NewEffect(body func() func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(body, false),
	}
}

// NewManualEffect creates an effect that does not run until Run is
// called. Once started it behaves like a regular effect.
func NewManualEffect(body func() func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(body, true),
	}
}

// Run the effect body, re-capturing its dependencies.
func (e *Effect) Run() {
	e.effect.Run()
}

// Stop the effect: its cleanup runs and it detaches from the graph.
// A stopped effect does not restart on dependency changes unless
// explicitly re-run. Stopping twice is a no-op.
func (e *Effect) Stop() {
	e.effect.Stop()
}

// Batch coalesces multiple signal writes into a single update cycle,
// instead of triggering updates after each write.
func Batch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// OnSettled registers a function called once, after the next update
// cycle fully settles.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}
