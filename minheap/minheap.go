// Package minheap implements a generic array-backed binary min-heap whose
// ordering is supplied by the caller.
package minheap

import (
	"github.com/chronos-tachyon/assert"
)

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 256

// Compare is a three-way ordering function.  It returns a negative number if
// a orders before b, a positive number if a orders after b, and zero if they
// are equivalent.
type Compare[T any] func(a, b T) int

// MinHeap is a binary min-heap of T.  Ties are resolved entirely by the
// Compare function; insertion order plays no part in the ordering.
//
// The zero value is not usable; construct one with New or NewWithCapacity.
//
type MinHeap[T any] struct {
	cmp  Compare[T]
	data []T
	size int
}

// New returns an empty MinHeap with DefaultCapacity slots.
func New[T any](cmp Compare[T]) *MinHeap[T] {
	return NewWithCapacity(cmp, DefaultCapacity)
}

// NewWithCapacity returns an empty MinHeap with the given number of slots.
// Capacities below 1 are raised to 1.
func NewWithCapacity[T any](cmp Compare[T], capacity int) *MinHeap[T] {
	assert.Assertf(cmp != nil, "minheap: nil Compare")
	if capacity < 1 {
		capacity = 1
	}
	return &MinHeap[T]{
		cmp:  cmp,
		data: make([]T, capacity),
	}
}

// Len returns the number of items in the heap.
func (h *MinHeap[T]) Len() int {
	return h.size
}

// Cap returns the number of allocated slots.  It doubles whenever Len
// reaches it and never shrinks.
func (h *MinHeap[T]) Cap() int {
	return len(h.data)
}

// Add inserts item into the heap.
func (h *MinHeap[T]) Add(item T) {
	h.data[h.size] = item
	h.siftUp(h.size)
	h.size++
	if h.size >= len(h.data) {
		h.grow()
	}
}

// PeekMin returns the minimum item without removing it.  It panics if the
// heap is empty.
func (h *MinHeap[T]) PeekMin() T {
	assert.Assertf(h.size > 0, "minheap: PeekMin on empty heap")
	return h.data[0]
}

// RemoveMin removes and returns the minimum item.  It panics if the heap is
// empty.
func (h *MinHeap[T]) RemoveMin() T {
	assert.Assertf(h.size > 0, "minheap: RemoveMin on empty heap")

	var zero T
	top := h.data[0]
	h.size--
	h.data[0] = h.data[h.size]
	h.data[h.size] = zero
	h.siftDown(0)
	return top
}

// Check reports whether every non-root item compares greater than or equal
// to its parent.
func (h *MinHeap[T]) Check() bool {
	for i := 1; i < h.size; i++ {
		if h.cmp(h.data[parent(i)], h.data[i]) > 0 {
			return false
		}
	}
	return true
}

func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.cmp(h.data[p], h.data[i]) <= 0 {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *MinHeap[T]) siftDown(i int) {
	for {
		child := leftChild(i)
		if child >= h.size {
			return
		}
		if right := rightChild(i); right < h.size && h.cmp(h.data[right], h.data[child]) < 0 {
			child = right
		}
		if h.cmp(h.data[i], h.data[child]) <= 0 {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *MinHeap[T]) grow() {
	data := make([]T, 2*len(h.data))
	copy(data, h.data[:h.size])
	h.data = data
}

func parent(i int) int     { return (i - 1) / 2 }
func leftChild(i int) int  { return 2*i + 1 }
func rightChild(i int) int { return 2*i + 2 }
