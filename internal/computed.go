package internal

type Computed struct {
	*Node

	compute func() any
	value   any
}

func (r *Runtime) NewComputed(compute func() any) *Computed {
	c := &Computed{
		Node:    r.NewNode(),
		compute: compute,
	}

	c.dirty = true // derives lazily, on first read

	c.fn = func() {
		c.ensureFresh()
		c.invalidate()
		GetRuntime().scheduler.Drain() // continue propagation outward
	}

	return c
}

// ensureFresh re-derives the cached value if the node is dirty. Edges
// are rebuilt from scratch: the previous upstream set is released and
// whatever the derivation actually reads this time is captured anew.
// A panicking derivation propagates, leaving the node dirty.
func (c *Computed) ensureFresh() {
	if !c.dirty {
		return
	}

	r := GetRuntime()

	c.release()
	r.tracker.RunWithNode(c.Node, func() {
		c.value = c.compute()
	})
	c.reweigh()

	c.dirty = false
}

// Read links the active evaluation to this computed before refreshing,
// so the subscription exists even when the refresh is a no-op.
func (c *Computed) Read() any {
	c.track()
	c.ensureFresh()
	return c.value
}

// Peek returns the cached value without tracking or refreshing. It may
// be stale while the node is dirty.
func (c *Computed) Peek() any {
	return c.value
}
