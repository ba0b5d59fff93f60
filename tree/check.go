// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treekit/fault"
)

// a pending node for the consistency walk
type checkItem struct {
	h      handle
	up     handle
	blacks int // black nodes from the root down to and including h
}

// Check - verify the structure of the tree
//
// every variant: node count, parent links and key order; balanced
// variants also: black root, no red node with a red child, equal black
// height on every path and the height bound; left-leaning: no red
// right child
func (tree *Tree[K, V]) Check() error {
	if err := tree.checkLinks(); nil != err {
		return err
	}
	if err := tree.checkOrder(); nil != err {
		return err
	}
	if !tree.variant.Balanced() {
		return nil
	}
	if err := tree.checkColors(); nil != err {
		return err
	}
	if h := tree.Height(); float64(h) > tree.HeightBound() {
		tree.debugf("height: %d  bound: %f", h, tree.HeightBound())
		return fault.ErrHeightBound
	}
	return nil
}

// internal: parent links and node count
func (tree *Tree[K, V]) checkLinks() error {
	withParents := LeftLeaning != tree.variant

	seen := 0
	stack := []checkItem{}
	if none != tree.root {
		stack = append(stack, checkItem{h: tree.root, up: none})
	}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen += 1

		n := &tree.nodes[item.h]
		if withParents && n.up != item.up || !withParents && none != n.up {
			tree.debugf("parent link fail at node: %v", n.key)
			return fault.ErrParentLink
		}
		if none != n.left {
			stack = append(stack, checkItem{h: n.left, up: item.h})
		}
		if none != n.right {
			stack = append(stack, checkItem{h: n.right, up: item.h})
		}
	}

	if seen != tree.count {
		tree.debugf("reachable nodes: %d  count: %d", seen, tree.count)
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: in-order keys never decrease
func (tree *Tree[K, V]) checkOrder() error {
	var previous K
	first := true
	ok := true
	tree.Walk(func(key K, _ V) bool {
		if !first && tree.compare(previous, key) > 0 {
			tree.debugf("key: %v  follows: %v", key, previous)
			ok = false
			return false
		}
		first = false
		previous = key
		return true
	})
	if !ok {
		return fault.ErrOutOfOrder
	}
	return nil
}

// internal: red-black colouring rules
func (tree *Tree[K, V]) checkColors() error {
	if none == tree.root {
		return nil
	}
	if tree.isRed(tree.root) {
		return fault.ErrRedRoot
	}

	leftLeaning := LeftLeaning == tree.variant
	blackHeight := -1

	stack := []checkItem{{h: tree.root, up: none}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &tree.nodes[item.h]
		blacks := item.blacks
		if Red == n.color {
			if tree.isRed(n.left) || tree.isRed(n.right) {
				tree.debugf("red node: %v has a red child", n.key)
				return fault.ErrConsecutiveRed
			}
		} else {
			blacks += 1
		}
		if leftLeaning && tree.isRed(n.right) {
			tree.debugf("node: %v has a red right child", n.key)
			return fault.ErrRedRightChild
		}

		for _, child := range []handle{n.left, n.right} {
			if none != child {
				stack = append(stack, checkItem{h: child, up: item.h, blacks: blacks})
				continue
			}
			if -1 == blackHeight {
				blackHeight = blacks
			} else if blacks != blackHeight {
				tree.debugf("black height: %d below: %v  expected: %d", blacks, n.key, blackHeight)
				return fault.ErrBlackHeight
			}
		}
	}
	return nil
}
