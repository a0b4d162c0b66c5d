package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns *EmptyQueueError if there is none.
	Pop() (T, error)
	// Peek at the oldest item, the zero value of T if there is none.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growing circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
