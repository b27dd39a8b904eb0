// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package server wires the gin engine into an http.Server so startup errors,
// timeouts, and graceful shutdown stay under the lifecycle package's control
// rather than gin.Run()'s.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/config"
	"github.com/stratastor/nimbus/pkg/anf/azure"
)

var srv *http.Server

func Start(ctx context.Context, port int) error {
	l, err := logger.NewTag(config.NewLoggerConfig(config.GetConfig()), "server")
	if err != nil {
		return err
	}
	cfg := config.GetConfig()

	// Missing Azure coordinates are a fatal startup condition.
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Switch to debug mode for non-production environments
	switch cfg.Environment {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	cp, err := azure.NewControlPlane(
		azure.Settings{
			SubscriptionID: cfg.Azure.SubscriptionID,
			ResourceGroup:  cfg.Azure.ResourceGroup,
		},
		azure.DefaultCredentialProvider{},
		l,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Azure control plane: %w", err)
	}

	engine := NewRouter(cfg, cp, LoggerMiddleware(l))

	srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}

	// Channel to catch server startup errors
	errChan := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				errChan <- err
			}
		}
	}()

	l.Info("Gateway listening",
		"port", port,
		"subscription", cfg.Azure.SubscriptionID,
		"resource_group", cfg.Azure.ResourceGroup,
	)

	// Wait for either server error or context cancellation
	select {
	case err := <-errChan:
		return fmt.Errorf("server startup failed: %w", err)
	case <-ctx.Done():
		return Shutdown(ctx)
	}
}

func Shutdown(ctx context.Context) error {
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
