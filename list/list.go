// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package list - a circular doubly linked list with linear search
//
// Not thread safe.
package list

import (
	"fmt"
	"strings"
)

type element[T comparable] struct {
	value T
	prev  *element[T]
	next  *element[T]
}

// List - the head is the oldest element, head.prev is the tail
type List[T comparable] struct {
	head  *element[T]
	count int
}

// New - create an empty list
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len - number of elements
func (l *List[T]) Len() int {
	return l.count
}

// Insert - append value at the tail, O(1)
func (l *List[T]) Insert(value T) {
	e := &element[T]{value: value}
	if nil == l.head {
		e.next = e
		e.prev = e
		l.head = e
	} else {
		tail := l.head.prev
		e.prev = tail
		e.next = l.head
		tail.next = e
		l.head.prev = e
	}
	l.count += 1
}

// first element holding value, or nil
func (l *List[T]) search(value T) *element[T] {
	if nil == l.head {
		return nil
	}
	e := l.head
	for {
		if e.value == value {
			return e
		}
		e = e.next
		if e == l.head {
			return nil
		}
	}
}

// Contains - true if some element holds value, O(n)
func (l *List[T]) Contains(value T) bool {
	return nil != l.search(value)
}

// Remove - unlink the first element holding value, O(n)
// returns false if there was no such element
func (l *List[T]) Remove(value T) bool {
	e := l.search(value)
	if nil == e {
		return false
	}

	if e.next == e {
		l.head = nil
	} else {
		e.prev.next = e.next
		e.next.prev = e.prev
		if e == l.head {
			l.head = e.next
		}
	}
	e.next = nil
	e.prev = nil
	l.count -= 1
	return true
}

// Values - all values in insertion order
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	l.each(func(v T) {
		values = append(values, v)
	})
	return values
}

// Dump - one value per line in insertion order
func (l *List[T]) Dump() string {
	var b strings.Builder
	l.each(func(v T) {
		fmt.Fprintf(&b, "%v\n", v)
	})
	return b.String()
}

func (l *List[T]) each(fn func(T)) {
	if nil == l.head {
		return
	}
	e := l.head
	for {
		fn(e.value)
		e = e.next
		if e == l.head {
			return
		}
	}
}
