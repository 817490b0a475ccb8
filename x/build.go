/*
 * SPDX-FileCopyrightText: © Corecalc Authors
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import "fmt"

// These variables are set using -ldflags.
var (
	corecalcVersion = "dev"
	gitBranch       string
	lastCommitSHA   string
	lastCommitTime  string
)

func BuildDetails() string {
	return fmt.Sprintf(`
Corecalc version : %v
Commit SHA-1     : %v
Commit timestamp : %v
Branch           : %v
`,
		corecalcVersion, lastCommitSHA, lastCommitTime, gitBranch)
}

func Version() string {
	return corecalcVersion
}
