// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treectl - build a tree, heap or list from command line arguments
// and display it
//
// tree commands take keys as KEY[=VALUE], a missing value is the key
// text; keys are inserted in the order given
package main
