package stack

import "iter"

// IntoIter owns a chain taken from a Stack and hands out its elements by
// popping them.
type IntoIter[T any] struct {
	s Stack[T]
}

// IntoIter moves every node of s into the returned iterator, leaving s empty.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{s: Stack[T]{head: s.head}}
	s.head = nil
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	return it.s.Pop()
}

// Iter walks the stack from head to tail without modifying it.
type Iter[T any] struct {
	next *node[T]
}

func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.head}
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

// IterMut is like Iter but yields pointers to the elements, which may be
// written through. The stack must not be pushed or popped while an IterMut
// is in use.
type IterMut[T any] struct {
	next *node[T]
}

func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: s.head}
}

func (it *IterMut[T]) Next() (*T, bool) {
	n := it.next
	if n == nil {
		return nil, false
	}
	it.next = n.next
	return &n.elem, true
}

// All returns an iterator over the elements from most to least recently
// pushed.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Drain returns an iterator that empties s as it is ranged over. The nodes
// are taken from s when ranging starts, not when Drain is called. Elements
// the caller does not consume are released when the loop stops early.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.IntoIter()
		for {
			x, ok := it.Next()
			if !ok {
				return
			}
			if !yield(x) {
				it.s.Clear()
				return
			}
		}
	}
}
