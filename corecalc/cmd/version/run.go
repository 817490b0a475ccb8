/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corecalc/corecalc/x"
)

// Version is the sub-command invoked when running "corecalc version".
var Version x.SubCommand

func init() {
	Version.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the corecalc version details",
		Long:  "Version prints the corecalc version as reported by the build details.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(x.BuildDetails())
		},
	}
	Version.EnvPrefix = "CORECALC_VERSION"
}
