// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/nimbus/config"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/anf/account"
	"github.com/stratastor/nimbus/pkg/anf/api"
	"github.com/stratastor/nimbus/pkg/anf/pool"
)

// NewRouter assembles the gateway surface on a fresh engine: an unauthenticated
// liveness probe plus the account and pool routes behind the API key check.
// The control plane is injected so tests can run the full surface against a
// stub collaborator.
func NewRouter(cfg *config.Config, cp anf.ControlPlane, mw ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(mw...)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerGatewayRoutes(engine, cfg, cp)

	return engine
}

func registerGatewayRoutes(engine *gin.Engine, cfg *config.Config, cp anf.ControlPlane) {
	accountHandler := api.NewAccountHandler(account.NewManager(cp))
	poolHandler := api.NewPoolHandler(pool.NewManager(cp))

	// Everything except /health sits behind the shared-secret check.
	authorized := engine.Group("", api.RequireAPIKey(cfg.Auth.APIKey))
	{
		accountHandler.RegisterRoutes(authorized)
		poolHandler.RegisterRoutes(authorized)
	}
}
