// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/anf/account"
	"github.com/stratastor/nimbus/pkg/errors"
)

type AccountHandler struct {
	manager *account.Manager
}

func NewAccountHandler(manager *account.Manager) *AccountHandler {
	return &AccountHandler{manager: manager}
}

func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	accounts := router.Group("/accounts")
	{
		// Both slash forms are served directly, no redirect hop.
		accounts.GET("", h.listAccounts)
		accounts.GET("/", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.POST("/", h.createAccount)
		accounts.DELETE("/:name", h.deleteAccount)
	}
}

func (h *AccountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.manager.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) createAccount(c *gin.Context) {
	var spec anf.AccountSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondError(c, errors.New(errors.ServerRequestValidation, err.Error()))
		return
	}

	result, err := h.manager.Create(c.Request.Context(), spec, waitFlag(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Done() {
		c.JSON(http.StatusAccepted, result.Resource)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"operation": result.Pending})
}

func (h *AccountHandler) deleteAccount(c *gin.Context) {
	name := c.Param("name")

	result, err := h.manager.Delete(c.Request.Context(), name, waitFlag(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Done() {
		c.JSON(http.StatusAccepted, gin.H{"status": "deleted"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"operation": result.Pending})
}
