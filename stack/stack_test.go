package stack_test

import (
	"slices"
	"testing"

	"linked_lists/stack"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestStackBasics(t *testing.T) {
	assert := assert.New(t)
	s := stack.New[int]()

	_, ok := s.Pop()
	assert.False(ok, "pop on empty stack")

	s.Push(1)
	s.Push(2)
	s.Push(3)

	x, ok := s.Pop()
	assert.True(ok)
	assert.Equal(3, x)
	x, _ = s.Pop()
	assert.Equal(2, x)

	s.Push(4)
	s.Push(5)

	x, _ = s.Pop()
	assert.Equal(5, x)
	x, _ = s.Pop()
	assert.Equal(4, x)
	x, _ = s.Pop()
	assert.Equal(1, x)

	_, ok = s.Pop()
	assert.False(ok)
	assert.True(s.IsEmpty())
}

func TestStackPeek(t *testing.T) {
	assert := assert.New(t)
	s := stack.New[int]()

	_, ok := s.Peek()
	assert.False(ok)
	p, ok := s.PeekMut()
	assert.False(ok)
	assert.Nil(p)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	x, ok := s.Peek()
	assert.True(ok)
	assert.Equal(3, x)

	p, ok = s.PeekMut()
	assert.True(ok)
	*p = 42

	x, _ = s.Peek()
	assert.Equal(42, x, "write through PeekMut")
	x, _ = s.Pop()
	assert.Equal(42, x)
	x, _ = s.Peek()
	assert.Equal(2, x)
}

func TestStackZeroValue(t *testing.T) {
	var s stack.Stack[string]
	assert.True(t, s.IsEmpty())
	s.Push("a")
	x, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", x)
}

func TestStackClear(t *testing.T) {
	assert := assert.New(t)
	s := stack.New[int]()
	s.Clear()
	assert.True(s.IsEmpty(), "clear on empty stack")

	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	s.Clear()
	assert.True(s.IsEmpty())
	_, ok := s.Pop()
	assert.False(ok)

	// the stack is still usable after a clear
	s.Push(7)
	x, _ := s.Peek()
	assert.Equal(7, x)
}

func TestStackClearLong(t *testing.T) {
	s := stack.New[uint64]()
	for i := uint64(0); i < 1_000_000; i++ {
		s.Push(i)
	}
	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStackLIFOProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		elems := rapid.SliceOf(rapid.Int()).Draw(t, "elems")

		s := stack.New[int]()
		for _, x := range elems {
			s.Push(x)
		}

		var popped []int
		for {
			x, ok := s.Pop()
			if !ok {
				break
			}
			popped = append(popped, x)
		}

		expected := slices.Clone(elems)
		slices.Reverse(expected)
		assert.Len(popped, len(elems))
		if len(elems) > 0 {
			assert.Equal(expected, popped)
		}
		assert.True(s.IsEmpty())
	})
}
