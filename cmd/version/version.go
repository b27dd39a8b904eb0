// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stratastor/nimbus/internal/constants"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Nimbus version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Nimbus Version: %s\n", constants.Version)
			fmt.Printf("Commit: %s\n", constants.CommitSHA)
			fmt.Printf("Build Time: %s\n", constants.BuildTime)
		},
	}
}
