// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/treekit/bench"
	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/tree"
)

// setup command handler
//
// commands that do not need the configuration file; returns false
// if the command needs the configuration and should be processed by
// main
func processSetupCommand(program string, command string, w io.Writer) bool {

	switch command {
	case "run", "start", "watch":
		return false // continue processing

	case "scenario", "s":
		if err := printScenarios(w); nil != err {
			fmt.Fprintf(w, "error: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version sting\n\n")

		fmt.Fprintf(w, "  scenario                   (s)      - insert five named keys in every order\n")
		fmt.Fprintf(w, "                                        into every variant and show the heights\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  run [NAME=VALUE...]        (start)  - run the configured workload once\n")
		fmt.Fprintf(w, "                                        NAME=VALUE becomes a Lua global\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  watch [NAME=VALUE...]               - run the workload and again each time\n")
		fmt.Fprintf(w, "                                        the configuration file changes\n")
		fmt.Fprintf(w, "\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// the five key insertion for each variant and order
func printScenarios(w io.Writer) error {
	for _, variant := range tree.Variants {
		for _, order := range []bench.Order{bench.Ascending, bench.Descending, bench.Shuffled} {
			result, err := bench.Scenario(variant, order)
			if nil != err {
				return err
			}
			fmt.Fprintf(w, "%s tree, %s keys: %v\n", variant, order, result.Keys)
			fmt.Fprintf(w, "heights: %v\n", result.Heights)
			fmt.Fprint(w, result.Dump)
			fault.PanicIfError(fmt.Sprintf("%s tree check", variant), result.Check)
			fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

// NAME=VALUE arguments
func parseVariables(arguments []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, a := range arguments {
		s := strings.SplitN(a, "=", 2)
		if 2 != len(s) || "" == strings.TrimSpace(s[0]) {
			return nil, fault.ErrInvalidVariable
		}
		variables[strings.TrimSpace(s[0])] = s[1]
	}
	return variables, nil
}
