// Package deque implements a doubly linked deque whose nodes are shared
// between their neighbors and mutated through runtime-checked borrows.
//
// Each interior node is owned by both of its neighbors, which makes every
// pair of adjacent nodes a cycle of owners. Counting alone never frees such a
// cycle, so nodes only go away by being popped off an end, and Clear pops
// until the deque is empty.
//
// Any operation that finds a node it needs already borrowed, for example
// PopFront while a RefMut from PeekFrontMut is held, panics with an error
// wrapping ErrBorrowConflict and leaves the deque unchanged.
package deque

import "github.com/goose-lang/primitive"

// Deque is not safe for concurrent use.
type Deque[T any] struct {
	ends [2]*node[T]
}

func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) IsEmpty() bool {
	return d.ends[front] == nil
}

func (d *Deque[T]) PushFront(elem T) {
	d.push(front, elem)
}

func (d *Deque[T]) PushBack(elem T) {
	d.push(back, elem)
}

func (d *Deque[T]) PopFront() (T, bool) {
	return d.pop(front)
}

func (d *Deque[T]) PopBack() (T, bool) {
	return d.pop(back)
}

// push splices a new node in beyond the current node at end e.
func (d *Deque[T]) push(e end, elem T) {
	n := newNode(elem)
	old := d.ends[e]
	if old == nil {
		primitive.Assert(d.ends[e.opposite()] == nil)
		d.ends[e.opposite()] = n.clone()
		d.ends[e] = n
		return
	}
	g := old.borrowMut()
	primitive.Assert(old.link[e] == nil)
	old.link[e] = n.clone()
	g.Release()

	g = n.borrowMut()
	// the end's link to old moves into the new node
	n.link[e.opposite()] = old
	g.Release()
	d.ends[e] = n
}

// pop detaches the node at end e. Both nodes whose links change are borrowed
// before anything is modified, so a borrow conflict leaves d as it was.
func (d *Deque[T]) pop(e end) (T, bool) {
	old := d.ends[e]
	if old == nil {
		var zero T
		return zero, false
	}
	g := old.borrowMut()
	inner := old.link[e.opposite()]
	var ig *RefMut[T]
	if inner != nil {
		var err error
		ig, err = inner.tryBorrowMut()
		if err != nil {
			g.Release()
			panic(err)
		}
	}

	// the caller now holds the end's link to old
	d.ends[e] = nil
	old.link[e.opposite()] = nil
	if inner != nil {
		primitive.Assert(inner.link[e] == old)
		inner.link[e] = nil
		old.drop()
		ig.Release()
		// old's link to inner becomes the end's link
		d.ends[e] = inner
	} else {
		primitive.Assert(d.ends[e.opposite()] == old)
		d.ends[e.opposite()] = nil
		old.drop()
	}
	g.Release()
	return old.unwrap(), true
}

func (d *Deque[T]) peek(e end) (*Ref[T], bool) {
	n := d.ends[e]
	if n == nil {
		return nil, false
	}
	r, err := n.tryBorrow()
	if err != nil {
		panic(err)
	}
	return r, true
}

func (d *Deque[T]) peekMut(e end) (*RefMut[T], bool) {
	n := d.ends[e]
	if n == nil {
		return nil, false
	}
	return n.borrowMut(), true
}

// PeekFront borrows the front element. The returned Ref must be released
// before the front node is pushed past or popped.
func (d *Deque[T]) PeekFront() (*Ref[T], bool) {
	return d.peek(front)
}

func (d *Deque[T]) PeekBack() (*Ref[T], bool) {
	return d.peek(back)
}

// PeekFrontMut borrows the front element exclusively.
func (d *Deque[T]) PeekFrontMut() (*RefMut[T], bool) {
	return d.peekMut(front)
}

func (d *Deque[T]) PeekBackMut() (*RefMut[T], bool) {
	return d.peekMut(back)
}

// Clear pops every node off the front. Each pop breaks the pair of links
// between the popped node and its successor.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PopFront(); !ok {
			break
		}
	}
}
