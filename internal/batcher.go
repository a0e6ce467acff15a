package internal

// Batcher buffers signal writes made inside a batch so the whole group
// propagates through a single scheduler drain.
type Batcher struct {
	// each nested batch increases the depth by 1
	// only the outermost batch flushes
	depth int

	pending map[uint64]*Signal
	order   []*Signal
}

func NewBatcher() *Batcher {
	return &Batcher{
		pending: make(map[uint64]*Signal),
	}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

// Add records a written signal, deduplicated by id.
func (b *Batcher) Add(s *Signal) {
	if _, ok := b.pending[s.id]; ok {
		return
	}

	b.pending[s.id] = s
	b.order = append(b.order, s)
}

// Batch runs fn with signal writes buffered, then propagates all
// buffered writes through exactly one drain.
func (b *Batcher) Batch(fn func()) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 {
			b.flush()
		}
	}()

	fn()
}

func (b *Batcher) flush() {
	signals := b.order
	b.order = nil
	clear(b.pending)

	for _, s := range signals {
		s.invalidate()
	}

	GetRuntime().scheduler.Drain()
}
