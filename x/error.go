/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package x holds helpers shared by the corecalc binary and tooling.
package x

import (
	"log"

	"github.com/pkg/errors"
)

// This file contains some functions for error handling used by the command
// line surface. Library packages never call these; they return errors as
// values. The common use case: you receive an error from an external lib
// and would like to log fatal with a stack trace. Use x.Check, x.Checkf.

// Check logs fatal if err != nil.
func Check(err error) {
	if err != nil {
		err = errors.Wrap(err, "")
		log.Fatalf("%+v", err)
	}
}

// Checkf is Check with extra info.
func Checkf(err error, format string, args ...interface{}) {
	if err != nil {
		err = errors.Wrapf(err, format, args...)
		log.Fatalf("%+v", err)
	}
}
