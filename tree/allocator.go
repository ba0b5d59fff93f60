// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Color - the red/black tag carried by every node
type Color bool

// node colours
const (
	Black Color = false
	Red   Color = true
)

// String - printable colour name
func (c Color) String() string {
	if Red == c {
		return "red"
	}
	return "black"
}

// index of a node in the arena
type handle int32

// the absent node
const none handle = -1

// a node in the tree
type node[K, V any] struct {
	key   K      // key part for ordering
	value V      // value part for data storage
	color Color  // unused by the unbalanced variant
	left  handle // left sub-tree
	right handle // right sub-tree
	up    handle // parent node, never set by the left-leaning variant
}

// allocate a new node at the end of the arena
//
// the arena may move, so callers must not hold a *node across this
// call
func (tree *Tree[K, V]) newNode(key K, value V, color Color) handle {
	tree.nodes = append(tree.nodes, node[K, V]{
		key:   key,
		value: value,
		color: color,
		left:  none,
		right: none,
		up:    none,
	})
	return handle(len(tree.nodes) - 1)
}

// colour of a possibly absent node; absent counts as black
func (tree *Tree[K, V]) isRed(h handle) bool {
	return none != h && Red == tree.nodes[h].color
}

// Reset - release all nodes, the tree becomes empty
func (tree *Tree[K, V]) Reset() {
	tree.nodes = nil
	tree.root = none
	tree.count = 0
	tree.stats.reset()
}
