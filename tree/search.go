// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treekit/fault"
)

// NotFound - CountSteps result for a key that is not in the tree
const NotFound = -1

// RecursiveSearch - find the value of the first node matching key
func (tree *Tree[K, V]) RecursiveSearch(key K) (V, error) {
	if none == tree.root {
		var zero V
		return zero, fault.ErrEmptyTree
	}
	return tree.search(tree.root, key)
}

func (tree *Tree[K, V]) search(h handle, key K) (V, error) {
	if none == h {
		var zero V
		return zero, fault.ErrKeyNotFound
	}

	n := &tree.nodes[h]
	switch c := tree.compare(key, n.key); {
	case 0 == c:
		return n.value, nil
	case c < 0:
		return tree.search(n.left, key)
	default:
		return tree.search(n.right, key)
	}
}

// IterativeSearch - find the value of the first node matching key
// without recursion
func (tree *Tree[K, V]) IterativeSearch(key K) (V, error) {
	var zero V
	if none == tree.root {
		return zero, fault.ErrEmptyTree
	}

	h, _ := tree.find(key)
	if none == h {
		return zero, fault.ErrKeyNotFound
	}
	return tree.nodes[h].value, nil
}

// CountSteps - the 1-based depth of the first node matching key, or
// NotFound
func (tree *Tree[K, V]) CountSteps(key K) int {
	h, steps := tree.find(key)
	if none == h {
		return NotFound
	}
	return steps
}

// descend to the first node matching key; returns the node and the
// number of nodes visited, or none
func (tree *Tree[K, V]) find(key K) (handle, int) {
	steps := 0
	h := tree.root
	for none != h {
		steps += 1
		c := tree.compare(key, tree.nodes[h].key)
		if 0 == c {
			return h, steps
		}
		if c < 0 {
			h = tree.nodes[h].left
		} else {
			h = tree.nodes[h].right
		}
	}
	return none, 0
}
