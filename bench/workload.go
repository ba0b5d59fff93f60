// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"math/rand"
	"strings"

	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/tree"
)

// Order - the sequence in which keys are inserted
type Order int

// supported orders
const (
	Ascending Order = iota
	Descending
	Shuffled
)

// String - the configuration name of an order
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Shuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a configuration name to an order
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "sorted":
		return Ascending, nil
	case "descending", "reversed":
		return Descending, nil
	case "shuffled", "random":
		return Shuffled, nil
	default:
		return 0, fault.ErrInvalidOrder
	}
}

// Keys - the distinct keys 0…size-1 in the given order; shuffled
// sequences are repeatable for the same seed
func Keys(order Order, size int, seed int64) ([]int, error) {
	if size < 0 {
		return nil, fault.ErrInvalidSize
	}

	switch order {
	case Ascending:
		keys := make([]int, size)
		for i := range keys {
			keys[i] = i
		}
		return keys, nil
	case Descending:
		keys := make([]int, size)
		for i := range keys {
			keys[i] = size - 1 - i
		}
		return keys, nil
	case Shuffled:
		return rand.New(rand.NewSource(seed)).Perm(size), nil
	default:
		return nil, fault.ErrInvalidOrder
	}
}

// Workload - what a runner builds
type Workload struct {
	Variants  []tree.Variant
	Orders    []Order
	Sizes     []int
	Seed      int64
	Check     bool
	HeapSizes []int
}

// Configuration - a workload as written in a configuration file
type Configuration struct {
	Variants  []string `gluamapper:"variants" json:"variants"`
	Orders    []string `gluamapper:"orders" json:"orders"`
	Sizes     []int    `gluamapper:"sizes" json:"sizes"`
	Seed      int64    `gluamapper:"seed" json:"seed"`
	Check     bool     `gluamapper:"check" json:"check"`
	HeapSizes []int    `gluamapper:"heap_sizes" json:"heap_sizes"`
}

// Workload - convert names to values; empty variant or order lists
// select everything
func (c Configuration) Workload() (Workload, error) {
	w := Workload{
		Sizes:     c.Sizes,
		Seed:      c.Seed,
		Check:     c.Check,
		HeapSizes: c.HeapSizes,
	}

	if 0 == len(c.Variants) {
		w.Variants = tree.Variants
	}
	for _, name := range c.Variants {
		v, err := tree.ParseVariant(name)
		if nil != err {
			return Workload{}, err
		}
		w.Variants = append(w.Variants, v)
	}

	if 0 == len(c.Orders) {
		w.Orders = []Order{Ascending, Descending, Shuffled}
	}
	for _, name := range c.Orders {
		o, err := ParseOrder(name)
		if nil != err {
			return Workload{}, err
		}
		w.Orders = append(w.Orders, o)
	}

	for _, sizes := range [][]int{w.Sizes, w.HeapSizes} {
		for _, size := range sizes {
			if size < 0 {
				return Workload{}, fault.ErrInvalidSize
			}
		}
	}
	return w, nil
}
