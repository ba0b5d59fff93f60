// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package heap - a fixed array max-heap with an in-place heap sort
//
// The heap works directly on the caller's slice; nothing is copied.
// Not thread safe.
package heap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/bitmark-inc/treekit/fault"
)

// Heap - a max-heap over the first size elements of items
type Heap[T cmp.Ordered] struct {
	items  []T
	size   int  // logical heap size, items[size:] are outside the heap
	heaped bool // items[:size] currently satisfy the max-heap property
}

// New - wrap items with a logical heap size
//
// the max-heap property is not established until Build or the first
// Max or ExtractMax; items must not be changed by the caller between
// extractions
func New[T cmp.Ordered](items []T, size int) (*Heap[T], error) {
	if size < 0 || size > len(items) {
		return nil, fault.ErrInvalidHeapSize
	}
	return &Heap[T]{
		items: items,
		size:  size,
	}, nil
}

// Len - the current logical size
func (h *Heap[T]) Len() int {
	return h.size
}

// index arithmetic for a zero based array
func leftChild(i int) int  { return 2*i + 1 }
func rightChild(i int) int { return 2*i + 2 }

// move items[i] down until both children are no larger
func (h *Heap[T]) siftDown(i int) {
	for {
		largest := i
		if l := leftChild(i); l < h.size && h.items[l] > h.items[largest] {
			largest = l
		}
		if r := rightChild(i); r < h.size && h.items[r] > h.items[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}

// Build - establish the max-heap property over the logical size
func (h *Heap[T]) Build() {
	for i := h.size/2 - 1; i >= 0; i -= 1 {
		h.siftDown(i)
	}
	h.heaped = true
}

// HeapSort - sort the logical heap ascending in place by repeatedly
// moving the maximum to the end
//
// the logical size is unchanged afterwards, but the elements are no
// longer a max-heap
func (h *Heap[T]) HeapSort() {
	size := h.size
	h.Build()
	for i := size - 1; i >= 1; i -= 1 {
		h.items[0], h.items[i] = h.items[i], h.items[0]
		h.size -= 1
		h.siftDown(0)
	}
	h.size = size
	h.heaped = size <= 1
}

// Max - the largest element without removing it
func (h *Heap[T]) Max() (T, error) {
	if 0 == h.size {
		var zero T
		return zero, fault.ErrEmptyHeap
	}
	if !h.heaped {
		h.Build()
	}
	return h.items[0], nil
}

// ExtractMax - remove the largest element, which is moved just past
// the end of the shrunken heap
func (h *Heap[T]) ExtractMax() (T, error) {
	if 0 == h.size {
		var zero T
		return zero, fault.ErrEmptyHeap
	}
	if !h.heaped {
		h.Build()
	}
	m := h.items[0]
	h.size -= 1
	h.items[0], h.items[h.size] = h.items[h.size], h.items[0]
	h.siftDown(0)
	return m, nil
}

// Dump - every element of the backing storage, one per line, in
// storage order
func (h *Heap[T]) Dump() string {
	var b strings.Builder
	for _, v := range h.items {
		fmt.Fprintf(&b, "%v\n", v)
	}
	return b.String()
}
