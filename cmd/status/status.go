// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stratastor/nimbus/internal/constants"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check Nimbus gateway status",
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := os.Stat(constants.NimbusPIDFilePath); err == nil {
				fmt.Println("Nimbus gateway is running")
			} else {
				fmt.Println("Nimbus gateway is not running")
			}
		},
	}
}
