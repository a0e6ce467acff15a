package internal

type Effect struct {
	*Node

	body    func() func()
	cleanup func()

	running bool
	manual  bool
}

// NewEffect creates an effect whose body returns an optional cleanup,
// invoked before the next run and on Stop. A manual effect stays inert
// until its first explicit Run.
func (r *Runtime) NewEffect(body func() func(), manual bool) *Effect {
	e := &Effect{
		Node:   r.NewNode(),
		body:   body,
		manual: manual,
	}

	e.fn = func() {
		// a stopped effect left in the pending set stays stopped
		if e.running {
			e.Run()
		}
	}

	if !manual {
		e.Run()
	}

	return e
}

// Run (re)subscribes the effect: the previous cleanup fires, previous
// edges drop, and the body captures whatever it reads this time.
func (e *Effect) Run() {
	r := GetRuntime()

	e.running = true

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.release()
	r.tracker.RunWithNode(e.Node, func() {
		e.cleanup = e.body()
	})
	e.reweigh()

	e.dirty = false
}

// Stop runs the pending cleanup and detaches the effect from the graph.
// A stopped effect stays inert until explicitly re-run. Stopping an
// already-stopped effect is a no-op.
func (e *Effect) Stop() {
	if !e.running {
		return
	}
	e.running = false

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.release()
}
