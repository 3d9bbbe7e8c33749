package stack

// Queue is a FIFO queue made of two stacks. Nodes are relinked from the back
// stack to the front stack rather than copied, so each node still has a
// single owner at every point.
type Queue[T any] struct {
	back  Stack[T]
	front Stack[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Push(x T) {
	q.back.Push(x)
}

func (q *Queue[T]) emptyBack() {
	for {
		n := q.back.pop()
		if n == nil {
			break
		}
		q.front.push(n)
	}
}

// Pop returns the least recently pushed element, or false if the queue is
// empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.front.IsEmpty() {
		q.emptyBack()
	}
	return q.front.Pop()
}

func (q *Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.back.IsEmpty()
}

func (q *Queue[T]) Clear() {
	q.front.Clear()
	q.back.Clear()
}
