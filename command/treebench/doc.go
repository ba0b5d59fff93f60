// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treebench - build trees of every variant from a configured
// workload and tabulate height, balance work and timing
//
// the workload and logging come from a Lua configuration file; in
// watch mode the workload is rerun each time that file is saved
package main
