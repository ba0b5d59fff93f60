// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench - build trees from generated key sequences, verify
// them and report height, balance statistics and timing
//
// A workload is the cross product of variants, insertion orders and
// sizes; every combination produces one Result passed to a Reporter.
// Heap sort timings follow the tree results.
package bench
