// Package stack implements a singly linked stack in which every node has
// exactly one owner: the stack itself or the node before it.
package stack

import "github.com/goose-lang/primitive"

type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a LIFO stack. The zero value is an empty stack.
type Stack[T any] struct {
	head *node[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push moves the current head under a new node holding elem.
func (s *Stack[T]) Push(elem T) {
	s.push(&node[T]{elem: elem})
}

// push links an already detached node in as the new head.
func (s *Stack[T]) push(n *node[T]) {
	primitive.Assert(n.next == nil)
	n.next = s.head
	s.head = n
}

// pop detaches the head node. The detached node no longer links to the rest
// of the chain.
func (s *Stack[T]) pop() *node[T] {
	n := s.head
	if n == nil {
		return nil
	}
	s.head = n.next
	n.next = nil
	return n
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	n := s.pop()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

// Peek returns a copy of the head element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the head element. The pointer is only valid
// until the stack is next modified.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Clear releases every node, one at a time from the head, cutting each link
// before moving on so that no release ever walks the rest of the chain.
func (s *Stack[T]) Clear() {
	var cur = s.head
	s.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		var zero T
		cur.elem = zero
		cur = next
	}
}
