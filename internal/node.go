package internal

import "sync/atomic"

var lastID atomic.Uint64

// Node is the graph vertex shared by signals, computeds and effects.
// Edges are mirrored: n is in sub.upstream iff sub is in n.downstream,
// and both sides are always added and removed together.
type Node struct {
	id uint64

	// accumulated upstream weight, used by the scheduler to rank
	// pending nodes (sources run before things derived from them)
	priority int

	dirty bool

	upstream   map[uint64]*Node
	downstream map[uint64]*Node

	// per-kind evaluation, called by the scheduler while the node is dirty
	fn func()
}

func (r *Runtime) NewNode() *Node {
	return &Node{
		id:         lastID.Add(1),
		priority:   1,
		upstream:   make(map[uint64]*Node),
		downstream: make(map[uint64]*Node),
	}
}

// track links the currently-evaluating node as a subscriber of n.
// Reads outside any evaluation are untracked, and the first read within
// a given evaluation wins (an edge is registered at most once per run).
func (n *Node) track() {
	sub := GetRuntime().tracker.Current()
	if sub == nil {
		return
	}

	if _, ok := n.downstream[sub.id]; ok {
		return
	}

	n.downstream[sub.id] = sub
	sub.upstream[n.id] = n
	sub.priority += n.priority
}

// release drops every upstream edge and resets the node's weight.
// Dependency sets are rebuilt from scratch on each evaluation, so a
// branch that stopped reading some input no longer subscribes to it.
func (n *Node) release() {
	for id, dep := range n.upstream {
		delete(dep.downstream, n.id)
		delete(n.upstream, id)
	}

	n.priority = 1
}

// reweigh recomputes the node's priority as the summed weight of its
// current upstream set. Nodes with no upstream keep the default weight.
func (n *Node) reweigh() {
	if len(n.upstream) == 0 {
		n.priority = 1
		return
	}

	priority := 0
	for _, dep := range n.upstream {
		priority += dep.priority
	}
	n.priority = priority
}

// invalidate marks every subscriber dirty and hands it to the scheduler.
func (n *Node) invalidate() {
	scheduler := GetRuntime().scheduler

	for _, sub := range n.downstream {
		sub.dirty = true
		scheduler.Submit(sub)
	}
}

func (n *Node) run() {
	if n.fn != nil {
		n.fn()
	}

	n.dirty = false
}
