// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

const panicTag = "PANIC"

// last chance channel, nil until Initialise
var log *logger.L

// Initialise - open the channel used for critical messages
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the channel; messages after this go to
// standard error
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Criticalf - log a formatted message prefixed by the caller's file
// and line
func Criticalf(format string, arguments ...interface{}) {
	criticalf(location(2)+format, arguments...)
}

// PanicIfError - log and panic when err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s%s failed with error: %s", location(2), message, err)
	criticalf("%s", s)
	panic(s)
}

// "(file.go:N) " for the function skip levels up the stack
func location(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s:%d) ", filepath.Base(file), line)
}

func criticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
