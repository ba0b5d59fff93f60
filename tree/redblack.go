// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// red-black insertion: attach a red node then repair upwards
type redBlack[K, V any] struct{}

func (redBlack[K, V]) insert(tree *Tree[K, V], key K, value V) {
	z := tree.attach(key, value, Red)
	tree.fixInsert(z)
}

// restore the red-black properties after attaching red node z
func (tree *Tree[K, V]) fixInsert(z handle) {
	n := tree.nodes // arena is not resized below

	for tree.isRed(n[z].up) {
		p := n[z].up
		g := n[p].up // exists: a red node is never the root here

		if p == n[g].left {
			u := n[g].right
			if tree.isRed(u) {
				tree.recolor(p, Black)
				tree.recolor(u, Black)
				tree.recolor(g, Red)
				z = g
				continue
			}
			if z == n[p].right {
				// inner child: turn it into an outer one
				z = p
				tree.rotateLeft(z)
				p = n[z].up
			}
			tree.recolor(p, Black)
			tree.recolor(g, Red)
			tree.rotateRight(g)
		} else {
			u := n[g].left
			if tree.isRed(u) {
				tree.recolor(p, Black)
				tree.recolor(u, Black)
				tree.recolor(g, Red)
				z = g
				continue
			}
			if z == n[p].left {
				z = p
				tree.rotateRight(z)
				p = n[z].up
			}
			tree.recolor(p, Black)
			tree.recolor(g, Red)
			tree.rotateLeft(g)
		}
	}

	if tree.isRed(tree.root) {
		tree.recolor(tree.root, Black)
	}
}

func (tree *Tree[K, V]) recolor(h handle, color Color) {
	if color == tree.nodes[h].color {
		return
	}
	tree.nodes[h].color = color
	tree.stats.recolors.Increment()
}

// make x's parent slot (or the root) point at y
func (tree *Tree[K, V]) replaceChild(x handle, y handle) {
	n := tree.nodes
	p := n[x].up
	n[y].up = p
	switch {
	case none == p:
		tree.root = y
	case x == n[p].left:
		n[p].left = y
	default:
		n[p].right = y
	}
}

// left rotation around node x, colours are unchanged
//
//	  P                P
//	  |                |
//	  x                y
//	 / \              / \
//	A   y     →      x   C
//	   / \          / \
//	  B   C        A   B
func (tree *Tree[K, V]) rotateLeft(x handle) {
	n := tree.nodes
	y := n[x].right
	n[x].right = n[y].left
	if none != n[y].left {
		n[n[y].left].up = x
	}
	tree.replaceChild(x, y)
	n[y].left = x
	n[x].up = y

	tree.stats.rotations.Increment()
	tree.debugf("rotate left at: %v", n[x].key)
}

// right rotation around node y, the mirror of rotateLeft
func (tree *Tree[K, V]) rotateRight(y handle) {
	n := tree.nodes
	x := n[y].left
	n[y].left = n[x].right
	if none != n[x].right {
		n[n[x].right].up = y
	}
	tree.replaceChild(y, x)
	n[x].right = y
	n[y].up = x

	tree.stats.rotations.Increment()
	tree.debugf("rotate right at: %v", n[y].key)
}
