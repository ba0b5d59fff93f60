// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/treekit/counter"
)

func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(10); 15 != n {
		t.Errorf("counter is not 15 after adding: %d", n)
	}

	if n := c1.Reset(); 15 != n {
		t.Errorf("reset returned: %d  expected: 15", n)
	}
	if !c1.IsZero() {
		t.Errorf("counter is not zero after reset: %d", c1.Uint64())
	}
}

func TestConcurrentIncrement(t *testing.T) {

	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const perWorker = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if workers*perWorker != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), workers*perWorker)
	}
}
