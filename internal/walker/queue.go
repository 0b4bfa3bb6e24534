package walker

// Queue is a growable FIFO ring buffer. Items pushed while the queue is
// being drained are seen by later PopFront calls.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.size
}

// PushBack appends v at the tail.
func (q *Queue[T]) PushBack(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// PopFront removes and returns the head item.
func (q *Queue[T]) PopFront() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

func (q *Queue[T]) grow() {
	capacity := 2 * len(q.buf)
	if capacity == 0 {
		capacity = 8
	}
	buf := make([]T, capacity)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
