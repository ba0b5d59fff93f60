// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/heap"
)

func runHeapSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	numbers, err := checkNumbers(c.Args())
	if nil != err {
		return err
	}

	h, err := heap.New(numbers, len(numbers))
	if nil != err {
		return err
	}

	if m.verbose {
		h.Build()
		fmt.Fprintf(m.e, "heap:\n%s", h.Dump())
	}

	h.HeapSort()
	fmt.Fprint(m.w, h.Dump())
	return nil
}
