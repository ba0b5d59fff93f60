// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAborted               = ProcessError("run aborted")
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrBlackHeight           = InvalidError("black height differs between paths")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrConsecutiveRed        = InvalidError("red node has a red child")
	ErrCountMismatch         = InvalidError("node count does not match tree")
	ErrEmptyHeap             = EmptyError("heap is empty")
	ErrEmptyTree             = EmptyError("tree is empty")
	ErrHeightBound           = InvalidError("height exceeds balanced bound")
	ErrInvalidHeapSize       = InvalidError("heap size is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOrder          = InvalidError("insertion order is invalid")
	ErrInvalidSize           = InvalidError("workload size is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidVariable       = InvalidError("variable must be NAME=VALUE")
	ErrInvalidVariant        = InvalidError("tree variant is invalid")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingCompare        = InvalidError("compare function is missing")
	ErrOutOfOrder            = InvalidError("keys are out of order")
	ErrParentLink            = InvalidError("parent link is inconsistent")
	ErrRedRightChild         = InvalidError("red right child in left-leaning tree")
	ErrRedRoot               = InvalidError("root is red")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
