// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are
// helpful for logging errors and ignoring them when appropriate.
// It also re-exports the standard library errors functions,
// so it can be used as a drop-in replacement.
package errors

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	return errors.Log(MyFunc(v))
//	// or
//	if err := errors.Log(MyFunc(v)); err != nil {
//		// do some more things
//	}
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + filepath.Base(file) + ":" + strconv.Itoa(line)
}

// New is a wrapper for [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is a wrapper for [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper for [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is a wrapper for [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
