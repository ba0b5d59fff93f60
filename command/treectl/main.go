// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/tree"
)

type metadata struct {
	variant tree.Variant
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "treectl"
	app.Usage = "insert keys into a search tree and inspect the result"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "variant, t",
			Value: tree.RedBlack.String(),
			Usage: " tree `VARIANT` [unbalanced|red-black|left-leaning]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "list entries in ascending key order",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runDump,
		},
		{
			Name:      "print",
			Usage:     "draw the tree, right sub-trees above left",
			ArgsUsage: "KEY[=VALUE]...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " show value, parent key and color of each node",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "height",
			Usage:     "display height and the balanced height bound",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runHeight,
		},
		{
			Name:      "search",
			Usage:     "find the value stored for a key",
			ArgsUsage: "KEY[=VALUE]...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to find `KEY`",
				},
				cli.BoolFlag{
					Name:  "iterative, i",
					Usage: " use the loop instead of recursion",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "steps",
			Usage:     "count the comparisons needed to find a key",
			ArgsUsage: "KEY[=VALUE]...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to find `KEY`",
				},
			},
			Action: runSteps,
		},
		{
			Name:      "min",
			Usage:     "display the smallest key",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runMinimum,
		},
		{
			Name:      "max",
			Usage:     "display the largest key",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runMaximum,
		},
		{
			Name:      "check",
			Usage:     "verify ordering, links and coloring",
			ArgsUsage: "KEY[=VALUE]...",
			Action:    runCheck,
		},
		{
			Name:      "heapsort",
			Usage:     "sort integers with a max-heap",
			ArgsUsage: "NUMBER...",
			Action:    runHeapSort,
		},
		{
			Name:      "list",
			Usage:     "append values to a circular list then remove some",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "remove, r",
					Usage: " `VALUE` to remove, may be repeated",
				},
			},
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display treectl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		variant, err := tree.ParseVariant(c.GlobalString("variant"))
		if nil != err {
			return fmt.Errorf("variant: %q  error: %s", c.GlobalString("variant"), err)
		}

		c.App.Metadata["config"] = &metadata{
			variant: variant,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
