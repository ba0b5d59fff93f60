// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/bitmark-inc/treekit/tree"
)

// the five named keys used to compare the variants by eye
var scenarioItems = map[int]string{
	1: "first",
	2: "second",
	3: "third",
	4: "fourth",
	5: "fifth",
}

// ScenarioResult - heights after each insert and the final dump
type ScenarioResult struct {
	Variant tree.Variant
	Order   Order
	Keys    []int
	Heights []int
	Dump    string
	Check   error
}

// Scenario - insert the keys 1…5 with their names in the given order
func Scenario(variant tree.Variant, order Order) (ScenarioResult, error) {
	keys, err := Keys(order, len(scenarioItems), 0)
	if nil != err {
		return ScenarioResult{}, err
	}
	for i := range keys {
		keys[i] += 1
	}

	tr, err := tree.New[int, string](variant)
	if nil != err {
		return ScenarioResult{}, err
	}

	result := ScenarioResult{
		Variant: variant,
		Order:   order,
		Keys:    keys,
		Heights: make([]int, 0, len(keys)),
	}
	for _, k := range keys {
		tr.Insert(k, scenarioItems[k])
		result.Heights = append(result.Heights, tr.Height())
	}
	result.Dump = tr.Dump()
	result.Check = tr.Check()
	return result, nil
}
