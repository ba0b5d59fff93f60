// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/list"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return ErrRequiredValue
	}

	l := list.New[string]()
	for _, v := range c.Args() {
		l.Insert(v)
	}

	for _, v := range c.StringSlice("remove") {
		removed := l.Remove(v)
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %q  found: %t\n", v, removed)
		}
	}

	fmt.Fprint(m.w, l.Dump())
	return nil
}
