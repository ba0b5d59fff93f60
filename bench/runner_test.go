// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bench_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treekit/bench"
	"github.com/bitmark-inc/treekit/bench/mocks"
	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/tree"
)

func TestRunnerReportsEveryBuild(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := bench.Workload{
		Variants:  tree.Variants,
		Orders:    []bench.Order{bench.Ascending, bench.Shuffled},
		Sizes:     []int{0, 1, 500},
		Seed:      3,
		Check:     true,
		HeapSizes: []int{0, 1000},
	}

	var results []bench.Result
	reporter := mocks.NewMockReporter(ctl)
	reporter.EXPECT().Report(gomock.Any()).DoAndReturn(func(r bench.Result) error {
		results = append(results, r)
		return nil
	}).Times(3 * 2 * 3)
	reporter.EXPECT().ReportHeap(gomock.Any()).DoAndReturn(func(r bench.HeapResult) error {
		assert.True(t, r.Sorted, "heap sort %d", r.Size)
		return nil
	}).Times(2)
	reporter.EXPECT().Flush().Return(nil).Times(1)

	err := bench.NewRunner(w, reporter, nil).Run(nil)
	assert.Nil(t, err, "run error")

	for _, r := range results {
		assert.Nil(t, r.CheckErr, "%s/%s/%d check", r.Variant, r.Order, r.Size)
		switch r.Size {
		case 0:
			assert.Equal(t, -1, r.Height, "empty height")
		case 500:
			assert.Equal(t, 0, r.Minimum, "minimum")
			assert.Equal(t, 499, r.Maximum, "maximum")
			if r.Variant.Balanced() {
				assert.LessOrEqual(t, float64(r.Height), r.Bound, "%s/%s height", r.Variant, r.Order)
			} else if bench.Ascending == r.Order {
				assert.Equal(t, 499, r.Height, "degenerate height")
			}
		}
	}
}

func TestRunnerStopsOnReportError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failed := errors.New("disk full")

	reporter := mocks.NewMockReporter(ctl)
	reporter.EXPECT().Report(gomock.Any()).Return(failed).Times(1)

	w := bench.Workload{
		Variants: []tree.Variant{tree.RedBlack},
		Orders:   []bench.Order{bench.Ascending},
		Sizes:    []int{10, 20},
	}
	err := bench.NewRunner(w, reporter, nil).Run(nil)
	assert.Equal(t, failed, err, "report error returned")
}

func TestRunnerAborted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	reporter := mocks.NewMockReporter(ctl)

	shutdown := make(chan struct{})
	close(shutdown)

	w := bench.Workload{
		Variants: []tree.Variant{tree.LeftLeaning},
		Orders:   []bench.Order{bench.Descending},
		Sizes:    []int{10},
	}
	err := bench.NewRunner(w, reporter, nil).Run(shutdown)
	assert.Equal(t, fault.ErrAborted, err, "aborted")
}
