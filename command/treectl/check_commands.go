// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/tree"
)

var (
	ErrInvalidKey    = fault.InvalidError("key must be an integer")
	ErrInvalidNumber = fault.InvalidError("value must be an integer")
	ErrRequiredKey   = fault.InvalidError("key is required")
	ErrRequiredValue = fault.InvalidError("at least one value is required")
)

// KEY[=VALUE] arguments
func checkEntries(arguments []string) ([]tree.Entry[int, string], error) {
	entries := make([]tree.Entry[int, string], 0, len(arguments))
	for _, a := range arguments {
		s := strings.SplitN(a, "=", 2)
		key, err := checkKey(s[0])
		if nil != err {
			return nil, err
		}
		value := strings.TrimSpace(s[0])
		if 2 == len(s) {
			value = s[1]
		}
		entries = append(entries, tree.Entry[int, string]{Key: key, Value: value})
	}
	return entries, nil
}

// key is required and must be numeric
func checkKey(s string) (int, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, ErrRequiredKey
	}
	key, err := strconv.Atoi(s)
	if nil != err {
		return 0, ErrInvalidKey
	}
	return key, nil
}

// at least one number
func checkNumbers(arguments []string) ([]int, error) {
	if 0 == len(arguments) {
		return nil, ErrRequiredValue
	}
	numbers := make([]int, len(arguments))
	for i, a := range arguments {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if nil != err {
			return nil, ErrInvalidNumber
		}
		numbers[i] = n
	}
	return numbers, nil
}
