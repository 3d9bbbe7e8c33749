// Package persistent implements an immutable singly linked stack whose nodes
// may be shared by many handles.
//
// Nodes carry an explicit owner count. Every handle returned by New, Prepend,
// PrependAll, Tail, Skip or Clone owns one count on its head node and must
// eventually be Released. A Stack value refers to its handle, so a plain copy
// of a Stack is the same handle: releasing either copy releases it once, and
// the other copy then sees an empty stack. Use Clone for an independent owner.
//
// Each call that returns a handle registers an owner, including calls on
// temporaries. A chain like s.Prepend(2).Prepend(3) leaves the middle handle
// unreleased and its node is never torn down; use s.PrependAll(2, 3) and
// s.Skip(2) instead of chaining Prepend and Tail.
package persistent

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type node[T any] struct {
	elem T
	next *node[T]
	// number of handles and nodes linking to this node
	refs uint64
}

// retain registers one more owner of n. n may be nil.
func retain[T any](n *node[T]) *node[T] {
	if n != nil {
		n.refs = std.SumAssumeNoOverflow(n.refs, 1)
	}
	return n
}

type handle[T any] struct {
	head *node[T]
}

// Stack is a handle onto a chain of shared nodes. The zero value is an empty,
// already released stack.
type Stack[T any] struct {
	h *handle[T]
}

// newStack wraps a link the caller already owns.
func newStack[T any](head *node[T]) Stack[T] {
	return Stack[T]{h: &handle[T]{head: head}}
}

func (s Stack[T]) top() *node[T] {
	if s.h == nil {
		return nil
	}
	return s.h.head
}

func New[T any]() Stack[T] {
	return newStack[T](nil)
}

// Prepend returns a new stack with elem in front of s. s is unchanged and
// shares all of its nodes with the result.
func (s Stack[T]) Prepend(elem T) Stack[T] {
	return newStack(&node[T]{elem: elem, next: retain(s.top()), refs: 1})
}

// PrependAll is s.Prepend(elems[0]).Prepend(elems[1])... without the
// intermediate handles: only the result owns the new nodes.
func (s Stack[T]) PrependAll(elems ...T) Stack[T] {
	var head = retain(s.top())
	for _, elem := range elems {
		// the link to the previous head moves into the new node
		head = &node[T]{elem: elem, next: head, refs: 1}
	}
	return newStack(head)
}

// Tail returns the stack without its first element, or an empty stack if s
// has at most one element.
func (s Stack[T]) Tail() Stack[T] {
	return s.Skip(1)
}

// Skip returns the stack without its first n elements, registering an owner
// only on the node it ends at.
func (s Stack[T]) Skip(n int) Stack[T] {
	var cur = s.top()
	for i := 0; i < n && cur != nil; i++ {
		cur = cur.next
	}
	return newStack(retain(cur))
}

func (s Stack[T]) Head() (T, bool) {
	n := s.top()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.elem, true
}

func (s Stack[T]) IsEmpty() bool {
	return s.top() == nil
}

// Clone returns a second, independent handle onto the same nodes.
func (s Stack[T]) Clone() Stack[T] {
	return newStack(retain(s.top()))
}

// Release gives up this handle's ownership. Nodes whose last owner goes away
// are unlinked one at a time; the walk stops at the first node some other
// handle still owns, leaving it and its successors intact. The handle is
// empty afterwards, and releasing it again does nothing.
func (s Stack[T]) Release() {
	if s.h == nil {
		return
	}
	var cur = s.h.head
	s.h.head = nil
	for cur != nil {
		primitive.Assert(cur.refs > 0)
		cur.refs--
		if cur.refs > 0 {
			break
		}
		// cur is dead, so its link to next is handed over to us.
		next := cur.next
		cur.next = nil
		var zero T
		cur.elem = zero
		cur = next
	}
}
