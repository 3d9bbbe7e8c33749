package stack_test

import (
	"slices"
	"testing"

	"linked_lists/stack"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func newStack(elems ...int) *stack.Stack[int] {
	s := stack.New[int]()
	for _, x := range elems {
		s.Push(x)
	}
	return s
}

func TestIntoIter(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2, 3)

	it := s.IntoIter()
	assert.True(s.IsEmpty(), "IntoIter takes the nodes")

	x, ok := it.Next()
	assert.True(ok)
	assert.Equal(3, x)
	x, _ = it.Next()
	assert.Equal(2, x)
	x, _ = it.Next()
	assert.Equal(1, x)

	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		assert.False(ok, "exhausted iterator stays exhausted")
	}
}

func TestIter(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2, 3)

	it := s.Iter()
	x, ok := it.Next()
	assert.True(ok)
	assert.Equal(3, x)
	x, _ = it.Next()
	assert.Equal(2, x)
	x, _ = it.Next()
	assert.Equal(1, x)
	_, ok = it.Next()
	assert.False(ok)

	// the stack is untouched and a fresh iterator starts over
	x, _ = s.Peek()
	assert.Equal(3, x)
	x, _ = s.Iter().Next()
	assert.Equal(3, x)
}

func TestIterMut(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2, 3)

	it := s.IterMut()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p *= 10
	}
	assert.Equal([]int{30, 20, 10}, slices.Collect(s.All()))
}

func TestAll(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2, 3)

	var seen []int
	for x := range s.All() {
		seen = append(seen, x)
		if x == 2 {
			break
		}
	}
	assert.Equal([]int{3, 2}, seen)
	assert.Equal([]int{3, 2, 1}, slices.Collect(s.All()))
}

func TestDrain(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2, 3, 4)

	var seen []int
	for x := range s.Drain() {
		seen = append(seen, x)
		if x == 3 {
			break
		}
	}
	assert.Equal([]int{4, 3}, seen)
	assert.True(s.IsEmpty())
}

func TestDrainIsLazy(t *testing.T) {
	assert := assert.New(t)
	s := newStack(1, 2)

	seq := s.Drain()
	x, ok := s.Peek()
	assert.True(ok, "Drain alone leaves the stack intact")
	assert.Equal(2, x)

	s.Push(3)
	assert.Equal([]int{3, 2, 1}, slices.Collect(seq))
	assert.True(s.IsEmpty())
	assert.Empty(slices.Collect(seq), "a second pass finds nothing")
}

func TestIntoIterProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		elems := rapid.SliceOf(rapid.Int()).Draw(t, "elems")
		s := newStack(elems...)

		borrowed := slices.Collect(s.All())
		assert.Len(borrowed, len(elems))

		it := s.IntoIter()
		var n = 0
		for {
			_, ok := it.Next()
			if !ok {
				break
			}
			n++
		}
		assert.Equal(len(elems), n)
		_, ok := it.Next()
		assert.False(ok)
	})
}
