// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"context"
	"os"

	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/config"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/lifecycle"
	"github.com/stratastor/nimbus/pkg/server"
)

var detached bool

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Nimbus gateway",
		Run:   runServe,
	}

	cmd.Flags().BoolVarP(&detached, "detach", "d", false, "Run as a daemon")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) {
	lcfg := config.NewLoggerConfig(config.GetConfig())
	log, err := logger.NewTag(lcfg, "serve")
	if err != nil {
		panic(err)
	}

	nc := config.GetConfig()
	pidFile := constants.NimbusPIDFilePath
	// Check for existing instance before proceeding
	if err := lifecycle.EnsureSingleInstance(pidFile); err != nil {
		log.Error("Failed to start: %v", err)
		os.Exit(1)
	}

	if detached {
		ctx := &daemon.Context{
			PidFileName: pidFile,
			PidFilePerm: 0644,
			LogFileName: nc.Logs.Path,
			LogFilePerm: 0640,
			WorkDir:     "/",
			Umask:       027,
			Args:        []string{"nimbus", "serve"},
		}

		d, err := ctx.Reborn()
		if err != nil {
			log.Error("Failed to start daemon: %v", err)
			os.Exit(1)
		}

		if d != nil {
			log.Info("Nimbus is running as a daemon")
			return
		}
		defer ctx.Release()
	}

	startServer()
}

func startServer() {
	lcfg := config.NewLoggerConfig(config.GetConfig())
	log, err := logger.NewTag(lcfg, "serve")
	if err != nil {
		panic(err)
	}
	cfg := config.GetConfig()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lifecycle.RegisterContextCanceller(cancel)

	lifecycle.RegisterShutdownHook(func() {
		log.Info("Shutting down gateway...")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Error during server shutdown: %v", err)
		}
	})

	// Start handling lifecycle signals (e.g., SIGTERM, SIGHUP)
	go lifecycle.HandleSignals(ctx)

	log.Info("Starting Nimbus gateway on port %d...", cfg.Server.Port)
	if err := server.Start(ctx, cfg.Server.Port); err != nil {
		log.Error("Failed to start server: %v", err)
	}
}
