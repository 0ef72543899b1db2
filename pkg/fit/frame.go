package fit

import "sync"

// Scheduler defers a callback to the host's next paint.
type Scheduler interface {
	Schedule(fn func())
}

// FrameQueue collects single-shot callbacks until the host flushes them,
// the way a browser runs animation-frame callbacks before the next paint.
// It is safe for concurrent use.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
}

// Schedule queues fn for the next Flush.
func (q *FrameQueue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush runs every callback queued before the call, in order, and returns
// how many ran. Callbacks queued while flushing wait for the next frame.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len reports how many callbacks are waiting.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Immediate runs callbacks synchronously. It suits hosts with no paint
// cycle, such as a one-shot render to a file.
type Immediate struct{}

// Schedule runs fn now.
func (Immediate) Schedule(fn func()) {
	if fn != nil {
		fn()
	}
}

var nextFrame = &FrameQueue{}

// NextFrame returns a process-wide frame queue for hosts that drain one queue
// per paint. Wrappers use it only when passed WithScheduler(NextFrame()), and
// nothing runs until the host calls Flush.
func NextFrame() *FrameQueue {
	return nextFrame
}
