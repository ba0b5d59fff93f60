// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treekit/fault"
)

// Minimum - return the lowest key
func (tree *Tree[K, V]) Minimum() (K, error) {
	h := tree.first()
	if none == h {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	return tree.nodes[h].key, nil
}

// internal: lowest node in the tree
func (tree *Tree[K, V]) first() handle {
	h := tree.root
	if none == h {
		return none
	}
	for none != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// Maximum - return the highest key
func (tree *Tree[K, V]) Maximum() (K, error) {
	h := tree.last()
	if none == h {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	return tree.nodes[h].key, nil
}

// internal: highest node in the tree
func (tree *Tree[K, V]) last() handle {
	h := tree.root
	if none == h {
		return none
	}
	for none != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// Walk - call fn for every entry in ascending key order until fn
// returns false
//
// uses an explicit stack, so an unbalanced tree built from sorted keys
// does not recurse to its full height
func (tree *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	stack := make([]handle, 0, 64)
	h := tree.root
	for none != h || len(stack) > 0 {
		for none != h {
			stack = append(stack, h)
			h = tree.nodes[h].left
		}
		h = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &tree.nodes[h]
		if !fn(n.key, n.value) {
			return
		}
		h = n.right
	}
}

// InOrder - all entries in ascending key order
func (tree *Tree[K, V]) InOrder() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	tree.Walk(func(key K, value V) bool {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
		return true
	})
	return entries
}
