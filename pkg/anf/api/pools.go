// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/anf/pool"
	"github.com/stratastor/nimbus/pkg/errors"
)

type PoolHandler struct {
	manager *pool.Manager
}

func NewPoolHandler(manager *pool.Manager) *PoolHandler {
	return &PoolHandler{manager: manager}
}

func (h *PoolHandler) RegisterRoutes(router *gin.RouterGroup) {
	pools := router.Group("/pools")
	{
		// Both slash forms are served directly, no redirect hop.
		pools.GET("", h.listPools)
		pools.GET("/", h.listPools)
		pools.POST("", h.createPool)
		pools.POST("/", h.createPool)
		pools.PATCH("", h.updatePool)
		pools.PATCH("/", h.updatePool)
		pools.DELETE("", h.deletePool)
		pools.DELETE("/", h.deletePool)
	}
}

func (h *PoolHandler) listPools(c *gin.Context) {
	pools, err := h.manager.List(c.Request.Context(), c.Query("account"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pools)
}

func (h *PoolHandler) createPool(c *gin.Context) {
	var spec anf.PoolSpec
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

type poolUpdateRequest struct {
	Account      string            `json:"account"`
	Pool         string            `json:"pool"`
	SizeTiB      *int64            `json:"new_size_tb"`
	ServiceLevel *anf.ServiceLevel `json:"service_level"`
}

func (h *PoolHandler) updatePool(c *gin.Context) {
	var req poolUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ServerRequestValidation, err.Error()))
		return
	}

	id := anf.PoolID{Account: req.Account, Pool: req.Pool}
	patch := anf.PoolPatch{SizeTiB: req.SizeTiB, ServiceLevel: req.ServiceLevel}

	result, err := h.manager.Update(c.Request.Context(), id, patch, waitFlag(c))
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

func (h *PoolHandler) deletePool(c *gin.Context) {
	id := anf.PoolID{Account: c.Query("account"), Pool: c.Query("pool")}

	result, err := h.manager.Delete(c.Request.Context(), id, waitFlag(c))
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
