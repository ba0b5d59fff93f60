// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"math"
)

// Height - number of edges on the longest root to leaf path; an
// empty tree has height -1 and a single node height 0
//
// O(n): the tree is walked level by level on every call
func (tree *Tree[K, V]) Height() int {
	if none == tree.root {
		return -1
	}

	height := -1
	level := []handle{tree.root}
	next := make([]handle, 0, 2)
	for len(level) > 0 {
		height += 1
		next = next[:0]
		for _, h := range level {
			if l := tree.nodes[h].left; none != l {
				next = append(next, l)
			}
			if r := tree.nodes[h].right; none != r {
				next = append(next, r)
			}
		}
		level, next = next, level
	}
	return height
}

// HeightBound - the maximum height a red-black tree holding the
// current number of keys may have: 2·log₂(n+1)
func (tree *Tree[K, V]) HeightBound() float64 {
	return 2 * math.Log2(float64(tree.count+1))
}
