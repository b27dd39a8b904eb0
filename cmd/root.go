// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stratastor/nimbus/cmd/config"
	"github.com/stratastor/nimbus/cmd/health"
	"github.com/stratastor/nimbus/cmd/logs"
	"github.com/stratastor/nimbus/cmd/serve"
	"github.com/stratastor/nimbus/cmd/status"
	"github.com/stratastor/nimbus/cmd/version"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nimbus",
		Short: "Nimbus: StrataSTOR gateway for Azure NetApp Files",
	}

	rootCmd.AddCommand(serve.NewServeCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(health.NewHealthCmd())
	rootCmd.AddCommand(status.NewStatusCmd())
	rootCmd.AddCommand(logs.NewLogsCmd())
	rootCmd.AddCommand(config.NewConfigCmd())

	return rootCmd
}
