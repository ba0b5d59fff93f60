// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - ordered key/value containers backed by binary search
// trees
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Three insertion disciplines share one node arena and one set of
// read operations:
//
//	Unbalanced  - plain binary search tree insert, height depends on
//	              insertion order
//	RedBlack    - insert as unbalanced, colour red, then walk upwards
//	              recolouring and rotating (Cormen et al. chapter 13)
//	LeftLeaning - Sedgewick's left-leaning red-black tree, repaired
//	              on the way back up the recursion without any parent
//	              pointers
//
// Nodes live in a slice owned by the tree and refer to each other by
// index, so the parent back references used by the red-black fixup
// are never dangling.
//
// Duplicate keys are kept: an insert with an existing key goes to the
// right, so equal keys are visited in insertion order.  There is no
// delete.
package tree
