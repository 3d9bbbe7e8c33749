package deque

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"github.com/pkg/errors"
)

// ErrBorrowConflict is the panic value (wrapped) when a node is borrowed in a
// way that conflicts with a borrow that is still held.
var ErrBorrowConflict = errors.New("deque: borrow conflict")

// end names one side of the deque, and equally the neighbor of a node on that
// side: a node's link[front] is its predecessor.
type end int

const (
	front end = 0
	back  end = 1
)

func (e end) opposite() end {
	return 1 - e
}

// A node is owned jointly by everything that links to it: the deque's ends
// and its two neighbors. Once a node is shared, elem and link are only touched
// while it is borrowed.
type node[T any] struct {
	refs uint64
	// 0 when free, n > 0 for n shared borrows, -1 for one exclusive borrow
	borrow int
	elem   T
	link   [2]*node[T]
}

// newNode returns the one and only link to a fresh node.
func newNode[T any](elem T) *node[T] {
	return &node[T]{refs: 1, elem: elem}
}

// clone registers another owning link to n.
func (n *node[T]) clone() *node[T] {
	n.refs = std.SumAssumeNoOverflow(n.refs, 1)
	return n
}

// drop gives up one owning link to n.
func (n *node[T]) drop() {
	primitive.Assert(n.refs > 0)
	n.refs--
}

// unwrap takes the value out of a node whose only remaining link is held by
// the caller.
func (n *node[T]) unwrap() T {
	primitive.Assert(n.refs == 1)
	primitive.Assert(n.borrow == 0)
	primitive.Assert(n.link[front] == nil && n.link[back] == nil)
	n.refs = 0
	elem := n.elem
	var zero T
	n.elem = zero
	return elem
}

func (n *node[T]) tryBorrow() (*Ref[T], error) {
	if n.borrow < 0 {
		return nil, errors.Wrap(ErrBorrowConflict, "already mutably borrowed")
	}
	n.borrow++
	return &Ref[T]{n: n}, nil
}

func (n *node[T]) tryBorrowMut() (*RefMut[T], error) {
	if n.borrow < 0 {
		return nil, errors.Wrap(ErrBorrowConflict, "already mutably borrowed")
	}
	if n.borrow > 0 {
		return nil, errors.Wrapf(ErrBorrowConflict, "already borrowed %d times", n.borrow)
	}
	n.borrow = -1
	return &RefMut[T]{n: n}, nil
}

func (n *node[T]) borrowMut() *RefMut[T] {
	g, err := n.tryBorrowMut()
	if err != nil {
		panic(err)
	}
	return g
}

// Ref is a shared borrow of one element. It must be released before the
// element's node can be modified again.
type Ref[T any] struct {
	n *node[T]
}

func (r *Ref[T]) Value() T {
	if r.n == nil {
		panic("deque: Value on released Ref")
	}
	return r.n.elem
}

// Release ends the borrow. Releasing an already released Ref does nothing.
func (r *Ref[T]) Release() {
	if r.n == nil {
		return
	}
	primitive.Assert(r.n.borrow > 0)
	r.n.borrow--
	r.n = nil
}

// RefMut is an exclusive borrow of one element. While it is held no other
// borrow of the same node succeeds.
type RefMut[T any] struct {
	n *node[T]
}

// Value returns a pointer to the element, valid until Release.
func (r *RefMut[T]) Value() *T {
	if r.n == nil {
		panic("deque: Value on released RefMut")
	}
	return &r.n.elem
}

func (r *RefMut[T]) Set(elem T) {
	*r.Value() = elem
}

func (r *RefMut[T]) Release() {
	if r.n == nil {
		return
	}
	primitive.Assert(r.n.borrow == -1)
	r.n.borrow = 0
	r.n = nil
}
