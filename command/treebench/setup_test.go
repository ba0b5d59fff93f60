// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"
)

// initialise the logger in a temporary directory
func setupLogger(t *testing.T) {
	dir := t.TempDir()
	logging := logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}
	require.NoError(t, logger.Initialise(logging), "logger initialise")
	t.Cleanup(logger.Finalise)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "treebench.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return fileName
}
