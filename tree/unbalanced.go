// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// plain binary search tree insertion, no balancing
type unbalanced[K, V any] struct{}

func (unbalanced[K, V]) insert(tree *Tree[K, V], key K, value V) {
	tree.attach(key, value, Black)
}

// descend from the root and hang a new node on the first absent
// child slot; strictly less goes left, everything else goes right
//
// returns the new node
func (tree *Tree[K, V]) attach(key K, value V, color Color) handle {
	z := tree.newNode(key, value, color)

	y := none
	x := tree.root
	less := false
	for none != x {
		y = x
		less = tree.compare(key, tree.nodes[x].key) < 0
		if less {
			x = tree.nodes[x].left
		} else {
			x = tree.nodes[x].right
		}
	}

	tree.nodes[z].up = y
	switch {
	case none == y:
		tree.root = z
	case less:
		tree.nodes[y].left = z
	default:
		tree.nodes[y].right = z
	}
	return z
}
