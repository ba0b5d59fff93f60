// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/heap"
	"github.com/bitmark-inc/treekit/tree"
)

// Runner - executes a workload
type Runner struct {
	workload Workload
	reporter Reporter
	log      *logger.L
}

// NewRunner - log may be nil
func NewRunner(workload Workload, reporter Reporter, log *logger.L) *Runner {
	return &Runner{
		workload: workload,
		reporter: reporter,
		log:      log,
	}
}

// Run - build every tree of the workload then run the heap sorts;
// closing shutdown abandons the run between two builds
func (r *Runner) Run(shutdown <-chan struct{}) error {
	w := r.workload
	for _, variant := range w.Variants {
		for _, order := range w.Orders {
			for _, size := range w.Sizes {
				if stopped(shutdown) {
					return fault.ErrAborted
				}
				result, err := r.build(variant, order, size)
				if nil != err {
					return err
				}
				r.infof("%s/%s/%d: height: %d  bound: %.2f  elapsed: %s", variant, order, size, result.Height, result.Bound, result.Elapsed)
				if nil != result.CheckErr {
					r.warnf("%s/%s/%d: check error: %s", variant, order, size, result.CheckErr)
				}
				if err := r.reporter.Report(result); nil != err {
					return err
				}
			}
		}
	}

	random := rand.New(rand.NewSource(w.Seed))
	for _, size := range w.HeapSizes {
		if stopped(shutdown) {
			return fault.ErrAborted
		}
		result, err := heapSort(random, size)
		if nil != err {
			return err
		}
		r.infof("heap sort: %d elements: %s", size, result.Elapsed)
		if err := r.reporter.ReportHeap(result); nil != err {
			return err
		}
	}

	return r.reporter.Flush()
}

// build one tree
func (r *Runner) build(variant tree.Variant, order Order, size int) (Result, error) {
	keys, err := Keys(order, size, r.workload.Seed)
	if nil != err {
		return Result{}, err
	}

	tr, err := tree.New[int, int](variant)
	if nil != err {
		return Result{}, err
	}

	start := time.Now()
	for _, k := range keys {
		tr.Insert(k, k)
	}
	elapsed := time.Since(start)

	result := Result{
		Variant: variant,
		Order:   order,
		Size:    size,
		Height:  tr.Height(),
		Bound:   tr.HeightBound(),
		Elapsed: elapsed,
		Stats:   tr.Stats(),
	}
	if size > 0 {
		result.Minimum, _ = tr.Minimum()
		result.Maximum, _ = tr.Maximum()
	}
	if r.workload.Check {
		result.CheckErr = tr.Check()
	}
	return result, nil
}

// sort size random numbers
func heapSort(random *rand.Rand, size int) (HeapResult, error) {
	items := make([]int, size)
	for i := range items {
		items[i] = random.Int()
	}

	h, err := heap.New(items, size)
	if nil != err {
		return HeapResult{}, err
	}

	start := time.Now()
	h.HeapSort()
	elapsed := time.Since(start)

	return HeapResult{
		Size:    size,
		Elapsed: elapsed,
		Sorted:  sort.IntsAreSorted(items),
	}, nil
}

func stopped(shutdown <-chan struct{}) bool {
	select {
	case <-shutdown:
		return true
	default:
		return false
	}
}

func (r *Runner) infof(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Infof(format, arguments...)
	}
}

func (r *Runner) warnf(format string, arguments ...interface{}) {
	if nil != r.log {
		r.log.Warnf(format, arguments...)
	}
}
