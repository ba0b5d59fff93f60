// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

var redKey = color.New(color.FgRed, color.Bold).SprintFunc()

// Dump - one "key: value" line per entry in ascending key order
func (tree *Tree[K, V]) Dump() string {
	var b strings.Builder
	tree.Walk(func(key K, value V) bool {
		fmt.Fprintf(&b, "%v: %v\n", key, value)
		return true
	})
	return b.String()
}

// Print - display an ASCII graphic representation of the tree,
// right sub-trees above their parent and left sub-trees below
//
// returns the number of levels printed
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	if none == tree.root {
		return 0
	}

	// reverse in-order with an explicit stack, so a degenerate tree
	// does not recurse to its full height
	type frame struct {
		h       handle
		prefix  string
		br      branch
		depth   int
		visited bool // right sub-tree already pushed
	}

	maxDepth := 0
	stack := []frame{{h: tree.root, br: root, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &tree.nodes[f.h]

		if !f.visited {
			f.visited = true
			stack = append(stack, f)
			if none != n.right {
				t := "       "
				if left == f.br {
					t = "|      "
				}
				stack = append(stack, frame{h: n.right, prefix: f.prefix + t, br: right, depth: f.depth + 1})
			}
			continue
		}

		tree.printNode(w, f.h, f.prefix, f.br, printData)
		if f.depth > maxDepth {
			maxDepth = f.depth
		}

		if none != n.left {
			t := "       "
			if right == f.br {
				t = "|      "
			}
			stack = append(stack, frame{h: n.left, prefix: f.prefix + t, br: left, depth: f.depth + 1})
		}
	}
	return maxDepth
}

// one line of the drawing
func (tree *Tree[K, V]) printNode(w io.Writer, h handle, prefix string, br branch, printData bool) {
	n := &tree.nodes[h]
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}

	key := fmt.Sprintf("%v", n.key)
	if tree.variant.Balanced() && Red == n.color {
		key = redKey(key)
	}
	if printData {
		up := "-"
		if none != n.up {
			up = fmt.Sprintf("%v", tree.nodes[n.up].key)
		}
		fmt.Fprintf(w, "%s → %v ^%s %s\n", key, n.value, up, n.color)
	} else {
		fmt.Fprintf(w, "%s\n", key)
	}
}
