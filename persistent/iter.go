package persistent

import "iter"

// Iter walks a stack front to back. It does not take ownership of any node,
// so the stack it came from must not be released while it is in use.
type Iter[T any] struct {
	next *node[T]
}

func (s Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.top()}
}

func (it *Iter[T]) Next() (T, bool) {
	n := it.next
	if n == nil {
		var zero T
		return zero, false
	}
	it.next = n.next
	return n.elem, true
}

func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top(); n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}
