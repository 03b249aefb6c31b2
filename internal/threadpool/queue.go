package threadpool

import (
	"container/list"
	"sync"

	"github.com/pkg/errors"
)

var ErrQueueClosed = errors.New("queue closed")

// Queue is an unbounded FIFO shared by many producers and many consumers.
// Dequeuing is serialized by mu; receivers park on ready while it is empty.
type Queue struct {
	mu     sync.Mutex
	ready  *sync.Cond
	items  *list.List
	closed bool
}

func NewQueue() *Queue {
	q := &Queue{items: list.New()}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// Send appends msg. It never waits for capacity.
func (q *Queue) Send(msg Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items.PushBack(msg)
	q.ready.Signal()
	return nil
}

// Shutdown appends quits Quit messages and closes the queue for senders in
// one step, so nothing can be enqueued behind the stop signals.
func (q *Queue) Shutdown(quits int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	for range quits {
		q.items.PushBack(Quit())
	}
	q.closed = true
	q.ready.Broadcast()
	return nil
}

// Close stops accepting messages. Messages already queued can still be received.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.ready.Broadcast()
}

// Receive blocks until a message is available. It fails only when the queue
// is closed and fully drained.
func (q *Queue) Receive() (Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.items.Len() == 0 {
		if q.closed {
			return Message{}, ErrQueueClosed
		}
		q.ready.Wait()
	}

	front := q.items.Front()
	q.items.Remove(front)
	return front.Value.(Message), nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
