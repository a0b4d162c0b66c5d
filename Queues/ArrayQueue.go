package Queues

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize the backing array to newLen, newLen>=sz. The items are moved to the front.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head = 0
	if this.tail = this.sz; newLen > 0 {
		this.tail %= newLen
	}
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

// Clear the queue. Items are zeroed so that they can be collected.
func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}
