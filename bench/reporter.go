// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bitmark-inc/treekit/tree"
)

//go:generate mockgen -destination=mocks/mock_reporter.go -package=mocks github.com/bitmark-inc/treekit/bench Reporter

// Result - measurements for one tree build
type Result struct {
	Variant  tree.Variant
	Order    Order
	Size     int
	Height   int
	Bound    float64
	Minimum  int
	Maximum  int
	Elapsed  time.Duration
	Stats    tree.Stats
	CheckErr error // nil if the check passed or was not requested
}

// HeapResult - measurements for one heap sort
type HeapResult struct {
	Size    int
	Elapsed time.Duration
	Sorted  bool
}

// Reporter - receives results as they are produced
type Reporter interface {
	Report(Result) error
	ReportHeap(HeapResult) error
	Flush() error
}

// TableReporter - collect results and render them as text tables
type TableReporter struct {
	w     io.Writer
	trees table.Writer
	heaps table.Writer
	rows  int
	sorts int
}

// NewTableReporter - tables are written to w on Flush
func NewTableReporter(w io.Writer) *TableReporter {
	trees := table.NewWriter()
	trees.SetStyle(table.StyleLight)
	trees.AppendHeader(table.Row{"variant", "order", "keys", "height", "bound", "min", "max", "rotations", "flips", "time", "check"})

	heaps := table.NewWriter()
	heaps.SetStyle(table.StyleLight)
	heaps.AppendHeader(table.Row{"heap sort", "time", "sorted"})

	return &TableReporter{
		w:     w,
		trees: trees,
		heaps: heaps,
	}
}

// Report - add one tree row
func (r *TableReporter) Report(result Result) error {
	check := "ok"
	if nil != result.CheckErr {
		check = result.CheckErr.Error()
	}
	r.trees.AppendRow(table.Row{
		result.Variant,
		result.Order,
		humanize.Comma(int64(result.Size)),
		result.Height,
		fmt.Sprintf("%.2f", result.Bound),
		result.Minimum,
		result.Maximum,
		humanize.Comma(int64(result.Stats.Rotations)),
		humanize.Comma(int64(result.Stats.ColorFlips)),
		result.Elapsed.Round(time.Microsecond),
		check,
	})
	r.rows += 1
	return nil
}

// ReportHeap - add one heap sort row
func (r *TableReporter) ReportHeap(result HeapResult) error {
	r.heaps.AppendRow(table.Row{
		humanize.Comma(int64(result.Size)),
		result.Elapsed.Round(time.Microsecond),
		result.Sorted,
	})
	r.sorts += 1
	return nil
}

// Flush - render the tables collected so far
func (r *TableReporter) Flush() error {
	if r.rows > 0 {
		if _, err := fmt.Fprintln(r.w, r.trees.Render()); nil != err {
			return err
		}
	}
	if r.sorts > 0 {
		if _, err := fmt.Fprintln(r.w, r.heaps.Render()); nil != err {
			return err
		}
	}
	return nil
}
