package internal

type Signal struct {
	*Node

	value any
}

func (r *Runtime) NewSignal(initial any) *Signal {
	s := &Signal{
		Node:  r.NewNode(),
		value: initial,
	}

	s.fn = nil // signals have nothing to recompute

	return s
}

// Read returns the current value, linking the active evaluation (if any)
// as a subscriber.
func (s *Signal) Read() any {
	s.track()
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal) Peek() any {
	return s.value
}

// Write stores v and propagates to subscribers. Writing an equal value
// still propagates; callers wanting change detection can compare against
// Peek first. Inside a batch the write is buffered and propagates when
// the outermost batch exits.
func (s *Signal) Write(v any) {
	r := GetRuntime()

	s.value = v

	if r.batcher.IsBatching() {
		r.batcher.Add(s)
		return
	}

	s.invalidate()
	r.scheduler.Drain()
}
