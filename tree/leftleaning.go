// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// left-leaning red-black insertion, no parent links
type leftLeaning[K, V any] struct{}

func (leftLeaning[K, V]) insert(tree *Tree[K, V], key K, value V) {
	if none == tree.root {
		tree.root = tree.newNode(key, value, Red)
	} else {
		tree.root = tree.insertAt(tree.root, key, value)
	}
	if tree.isRed(tree.root) {
		tree.recolor(tree.root, Black)
	}
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Tree[K, V]) insertAt(h handle, key K, value V) handle {
	if none == h {
		return tree.newNode(key, value, Red)
	}

	// split a 4-node met on the way down
	// the split after the rotations below leaves no 4-node at rest,
	// so this flip never fires; it stays for the top-down 2-3-4 form
	if tree.isRed(tree.nodes[h].left) && tree.isRed(tree.nodes[h].right) {
		tree.colorFlip(h)
	}

	// the recursion may grow the arena: index afresh after it
	if tree.compare(key, tree.nodes[h].key) < 0 {
		l := tree.insertAt(tree.nodes[h].left, key, value)
		tree.nodes[h].left = l
	} else {
		r := tree.insertAt(tree.nodes[h].right, key, value)
		tree.nodes[h].right = r
	}

	if tree.isRed(tree.nodes[h].right) && !tree.isRed(tree.nodes[h].left) {
		h = tree.leanLeft(h)
	}
	if l := tree.nodes[h].left; tree.isRed(l) && tree.isRed(tree.nodes[l].left) {
		h = tree.leanRight(h)
	}
	if tree.isRed(tree.nodes[h].left) && tree.isRed(tree.nodes[h].right) {
		tree.colorFlip(h)
	}
	return h
}

// rotate the red right link of h to the left; the new sub-tree root
// takes h's colour and h becomes red
func (tree *Tree[K, V]) leanLeft(h handle) handle {
	n := tree.nodes
	x := n[h].right
	n[h].right = n[x].left
	n[x].left = h
	n[x].color = n[h].color
	n[h].color = Red

	tree.stats.rotations.Increment()
	tree.debugf("lean left at: %v", n[h].key)
	return x
}

// mirror of leanLeft
func (tree *Tree[K, V]) leanRight(h handle) handle {
	n := tree.nodes
	x := n[h].left
	n[h].left = n[x].right
	n[x].right = h
	n[x].color = n[h].color
	n[h].color = Red

	tree.stats.rotations.Increment()
	tree.debugf("lean right at: %v", n[h].key)
	return x
}

// invert the colour of h and both its children
func (tree *Tree[K, V]) colorFlip(h handle) {
	n := tree.nodes
	n[h].color = !n[h].color
	n[n[h].left].color = !n[n[h].left].color
	n[n[h].right].color = !n[n[h].right].color

	tree.stats.colorFlips.Increment()
	tree.debugf("colour flip at: %v", n[h].key)
}
