package deque

// IntoIter owns the nodes taken from a Deque and yields them by popping from
// either end.
type IntoIter[T any] struct {
	d Deque[T]
}

// IntoIter moves every node of d into the returned iterator, leaving d empty.
func (d *Deque[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{d: Deque[T]{ends: d.ends}}
	d.ends = [2]*node[T]{}
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.d.PopFront()
}

func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.d.PopBack()
}
