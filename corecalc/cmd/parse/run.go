/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

// Package parse implements the "corecalc parse" subcommand. All file
// reading happens here; the parser core itself performs no I/O.
package parse

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/corecalc/corecalc/parser"
	"github.com/corecalc/corecalc/x"
)

// Parse is the sub-command invoked when running "corecalc parse".
var Parse x.SubCommand

func init() {
	Parse.Cmd = &cobra.Command{
		Use:   "parse [file ...]",
		Short: "Parse calculus source files and print the expression trees",
		Long: `Parse reads each named file (or standard input when no files are given),
parses it as one expression of the core calculus, and pretty-prints the
resulting tree. On the first malformed input it prints a positioned
diagnostic to standard error and exits non-zero.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	Parse.EnvPrefix = "CORECALC_PARSE"
	Parse.Cmd.Flags().BoolP("echo", "e", true,
		"Print the parsed expression on success. Disable for a pure syntax check.")
}

func run(args []string) error {
	echo := Parse.GetBoolP("echo", "e", true)
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
		return parseOne("<stdin>", string(data), echo)
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
		if err := parseOne(name, string(data), echo); err != nil {
			return err
		}
	}
	return nil
}

func parseOne(name, src string, echo bool) error {
	start := time.Now()
	expr, perr := parser.Parse(src)
	if perr != nil {
		return errors.Errorf("%s:%s", name, perr)
	}
	glog.V(2).Infof("parsed %s (%s) in %s",
		name, humanize.Bytes(uint64(len(src))), time.Since(start))
	if echo {
		fmt.Println(expr)
	}
	return nil
}
