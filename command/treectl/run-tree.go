// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/tree"
)

// build a tree from the command arguments
func buildTree(c *cli.Context) (*tree.Tree[int, string], *metadata, error) {

	m := c.App.Metadata["config"].(*metadata)

	entries, err := checkEntries(c.Args())
	if nil != err {
		return nil, nil, err
	}

	t, err := tree.New[int, string](m.variant)
	if nil != err {
		return nil, nil, err
	}
	for _, e := range entries {
		t.Insert(e.Key, e.Value)
	}

	if m.verbose {
		stats := t.Stats()
		fmt.Fprintf(m.e, "variant: %s\n", m.variant)
		fmt.Fprintf(m.e, "count: %d\n", t.Count())
		fmt.Fprintf(m.e, "rotations: %d\n", stats.Rotations)
		fmt.Fprintf(m.e, "recolors: %d\n", stats.Recolors)
		fmt.Fprintf(m.e, "color flips: %d\n", stats.ColorFlips)
	}
	return t, m, nil
}

func runDump(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}
	fmt.Fprint(m.w, t.Dump())
	return nil
}

func runPrint(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}
	depth := t.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runHeight(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}

	out := struct {
		Variant string  `json:"variant"`
		Count   int     `json:"count"`
		Height  int     `json:"height"`
		Bound   float64 `json:"bound"`
	}{
		Variant: t.Variant().String(),
		Count:   t.Count(),
		Height:  t.Height(),
		Bound:   t.HeightBound(),
	}
	return printJson(m.w, out)
}

func runSearch(c *cli.Context) error {
	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}

	t, m, err := buildTree(c)
	if nil != err {
		return err
	}

	search := t.RecursiveSearch
	if c.Bool("iterative") {
		search = t.IterativeSearch
	}
	value, err := search(key)
	if nil != err {
		return err
	}

	out := struct {
		Key   int    `json:"key"`
		Value string `json:"value"`
	}{
		Key:   key,
		Value: value,
	}
	return printJson(m.w, out)
}

func runSteps(c *cli.Context) error {
	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}

	t, m, err := buildTree(c)
	if nil != err {
		return err
	}

	out := struct {
		Key   int  `json:"key"`
		Steps int  `json:"steps"`
		Found bool `json:"found"`
	}{
		Key:   key,
		Steps: t.CountSteps(key),
	}
	out.Found = tree.NotFound != out.Steps
	return printJson(m.w, out)
}

func runMinimum(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}
	key, err := t.Minimum()
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%d\n", key)
	return nil
}

func runMaximum(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}
	key, err := t.Maximum()
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%d\n", key)
	return nil
}

func runCheck(c *cli.Context) error {
	t, m, err := buildTree(c)
	if nil != err {
		return err
	}
	err = t.Check()
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "ok\n")
	return nil
}

// indented JSON for the structured results
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
