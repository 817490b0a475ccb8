/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"github.com/golang/glog"

	"github.com/corecalc/corecalc/corecalc/cmd"
)

func main() {
	defer glog.Flush()
	cmd.Execute()
}
