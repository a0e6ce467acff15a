package internal

// Runtime owns one reactive scope: the evaluation stack, the scheduler
// and the batcher. Everything in a scope runs on a single goroutine, so
// no locking is needed inside the graph.
type Runtime struct {
	tracker   *Tracker
	scheduler *Scheduler
	batcher   *Batcher
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker:   NewTracker(),
		scheduler: NewScheduler(),
		batcher:   NewBatcher(),
	}
}

func (r *Runtime) NewBatch(fn func()) {
	r.batcher.Batch(fn)
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

func (r *Runtime) OnSettled(fn func()) {
	r.scheduler.OnSettled(fn)
}
