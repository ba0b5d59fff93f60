// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/counter"
	"github.com/bitmark-inc/treekit/fault"
)

// Variant - selects the insertion algorithm of a tree
type Variant int

// the supported algorithms
const (
	Unbalanced Variant = iota
	RedBlack
	LeftLeaning
)

// Variants - all supported variants, in declaration order
var Variants = []Variant{Unbalanced, RedBlack, LeftLeaning}

// String - the canonical name of a variant
func (v Variant) String() string {
	switch v {
	case Unbalanced:
		return "unbalanced"
	case RedBlack:
		return "red-black"
	case LeftLeaning:
		return "left-leaning"
	default:
		return "unknown"
	}
}

// Balanced - true if the variant guarantees logarithmic height
func (v Variant) Balanced() bool {
	return RedBlack == v || LeftLeaning == v
}

// ParseVariant - convert a name or short alias to a variant
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbalanced", "bst":
		return Unbalanced, nil
	case "red-black", "redblack", "rb":
		return RedBlack, nil
	case "left-leaning", "leftleaning", "llrb":
		return LeftLeaning, nil
	default:
		return 0, fault.ErrInvalidVariant
	}
}

// the capability each variant supplies
type inserter[K, V any] interface {
	insert(tree *Tree[K, V], key K, value V)
}

// Entry - a key/value pair as returned by traversal
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	nodes    []node[K, V]
	root     handle
	count    int
	compare  func(a, b K) int
	variant  Variant
	strategy inserter[K, V]
	log      *logger.L
	stats    statistics
}

// New - create an initially empty tree ordered by the natural
// ordering of its keys
func New[K cmp.Ordered, V any](variant Variant) (*Tree[K, V], error) {
	return NewFunc[K, V](variant, cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative number, zero or a positive number when a is
// less than, equal to or greater than b
func NewFunc[K, V any](variant Variant, compare func(a, b K) int) (*Tree[K, V], error) {
	if nil == compare {
		return nil, fault.ErrMissingCompare
	}

	var strategy inserter[K, V]
	switch variant {
	case Unbalanced:
		strategy = unbalanced[K, V]{}
	case RedBlack:
		strategy = redBlack[K, V]{}
	case LeftLeaning:
		strategy = leftLeaning[K, V]{}
	default:
		return nil, fault.ErrInvalidVariant
	}

	return &Tree[K, V]{
		root:     none,
		compare:  compare,
		variant:  variant,
		strategy: strategy,
	}, nil
}

// Insert - insert a new key/value; an existing key is not replaced,
// the new entry is placed after it
func (tree *Tree[K, V]) Insert(key K, value V) {
	tree.strategy.insert(tree, key, value)
	tree.count += 1
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Variant - the insertion algorithm of this tree
func (tree *Tree[K, V]) Variant() Variant {
	return tree.variant
}

// SetLog - attach a logger channel; rotations, recolouring and check
// failures are reported on it at debug level
func (tree *Tree[K, V]) SetLog(log *logger.L) {
	tree.log = log
}

// to log only when a channel is attached
func (tree *Tree[K, V]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

// Stats - counts of the structural changes made by insertion
type Stats struct {
	Rotations  uint64
	Recolors   uint64
	ColorFlips uint64
}

type statistics struct {
	rotations  counter.Counter
	recolors   counter.Counter
	colorFlips counter.Counter
}

func (s *statistics) reset() {
	s.rotations.Reset()
	s.recolors.Reset()
	s.colorFlips.Reset()
}

// Stats - snapshot of the structural change counters
func (tree *Tree[K, V]) Stats() Stats {
	return Stats{
		Rotations:  tree.stats.rotations.Uint64(),
		Recolors:   tree.stats.recolors.Uint64(),
		ColorFlips: tree.stats.colorFlips.Uint64(),
	}
}
