package internal

type Tracker struct {
	tracking bool

	// nodes currently being evaluated, innermost last
	// (a computed read during an effect run nests on top of it)
	stack []*Node
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

// Current returns the node on top of the evaluation stack, or nil when
// reads should go untracked. Only the top entry captures new edges.
func (t *Tracker) Current() *Node {
	if !t.tracking || len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

// RunWithNode evaluates fn with node as the active evaluation. Tracking
// is re-enabled for the duration: a node rebuilding its dependency set
// must capture its own reads even when the read that triggered the
// refresh came from an untracked scope. The pop and the restore are
// deferred so a panicking evaluation can't leave the stack corrupted.
func (t *Tracker) RunWithNode(node *Node, fn func()) {
	prev := t.tracking
	t.tracking = true
	t.stack = append(t.stack, node)
	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
		t.tracking = prev
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}
