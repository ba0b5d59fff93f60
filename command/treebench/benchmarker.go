// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/bench"
	"github.com/bitmark-inc/treekit/fault"
)

const (
	benchmarkLoggerPrefix = "benchmark"
)

// rerun the workload each time the configuration changes
//
// only the benchmark section is reloaded, logging keeps the settings
// read at startup
type benchmarker struct {
	log       *logger.L
	fileName  string
	variables map[string]string
	output    io.Writer
	change    <-chan struct{}
}

// Run - run once then once more for every change event
func (b *benchmarker) Run(args interface{}, shutdown <-chan struct{}) {
	b.runOnce(shutdown)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-b.change:
			b.log.Info("configuration changed, rerun")
			b.runOnce(shutdown)
		}
	}
	b.log.Info("stopped")
}

func (b *benchmarker) runOnce(shutdown <-chan struct{}) {
	c, err := getConfiguration(b.fileName, b.variables)
	if nil != err {
		b.log.Errorf("configuration: %q  error: %s", b.fileName, err)
		return
	}

	workload, err := c.Benchmark.Workload()
	if nil != err {
		b.log.Errorf("workload error: %s", err)
		return
	}

	err = runWorkload(workload, b.output, b.log, shutdown)
	if fault.ErrAborted == err {
		b.log.Info("run aborted")
	} else if nil != err {
		b.log.Errorf("run error: %s", err)
	}
}

// run a workload and write the tables to output
func runWorkload(workload bench.Workload, output io.Writer, log *logger.L, shutdown <-chan struct{}) error {
	log.Infof("workload: %d variants  %d orders  sizes: %v  heap sizes: %v", len(workload.Variants), len(workload.Orders), workload.Sizes, workload.HeapSizes)
	reporter := bench.NewTableReporter(output)
	return bench.NewRunner(workload, reporter, log).Run(shutdown)
}
