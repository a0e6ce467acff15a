package internal

import "slices"

// Scheduler holds the deduplicated set of dirty nodes and drains it in
// priority order, lowest weight first.
type Scheduler struct {
	pending map[uint64]*Node
	order   []*Node

	running bool

	settled []func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[uint64]*Node),
	}
}

// Submit queues a node for evaluation. Submitting an already-pending
// node is a no-op; a node re-dirtied while running re-enqueues itself
// fresh because Drain removes it before invoking run.
func (s *Scheduler) Submit(node *Node) {
	if _, ok := s.pending[node.id]; ok {
		return
	}

	s.pending[node.id] = node
	s.order = append(s.order, node)
}

// Drain runs pending nodes until none remain. Running a node may submit
// more nodes (its own downstream); those are picked up by the same loop.
// Calling Drain while a drain is already unwinding is a no-op.
//
// The summed-priority order is a heuristic, not a topological sort:
// under uneven fan-in a node can run before an indirect dependency has
// settled.
func (s *Scheduler) Drain() {
	if s.running {
		return
	}

	s.running = true
	defer func() { s.running = false }()

	for len(s.order) > 0 {
		min := 0
		for i, node := range s.order {
			if node.priority < s.order[min].priority {
				min = i
			}
		}

		node := s.order[min]
		s.order = slices.Delete(s.order, min, min+1)
		delete(s.pending, node.id)

		node.run()
	}

	// settled callbacks may write signals, which needs a fresh drain
	s.running = false
	s.settle()
}

// OnSettled registers a one-shot callback invoked once the next drain
// leaves the pending set empty.
func (s *Scheduler) OnSettled(fn func()) {
	s.settled = append(s.settled, fn)
}

func (s *Scheduler) settle() {
	callbacks := s.settled
	s.settled = nil

	for _, fn := range callbacks {
		fn()
	}
}
