// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/errors"
)

// RequireAPIKey rejects requests whose x-api-key header does not match the
// configured secret. It runs before any handler logic, so unauthorized
// requests never touch the control plane.
func RequireAPIKey(key string) gin.HandlerFunc {
	secret := []byte(key)
	return func(c *gin.Context) {
		got := c.GetHeader(constants.APIKeyHeader)
		if got == "" {
			abortWith(c, errors.New(errors.AuthMissingAPIKey, ""))
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), secret) != 1 {
			abortWith(c, errors.New(errors.AuthInvalidAPIKey, ""))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *errors.NimbusError) {
	c.Error(err)
	c.AbortWithStatusJSON(err.HTTPStatus, err)
}

// respondError shapes any error into the uniform response body. Coded errors
// keep their HTTP status, which for control-plane failures is the upstream
// status verbatim.
func respondError(c *gin.Context, err error) {
	ne := errors.Wrap(err, errors.ServerInternalError)
	c.Error(ne)
	status := ne.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ne)
}

// waitFlag reports whether the caller asked to block on the long-running
// operation. Any bool form ("true", "1", "T") counts; absent or unparsable
// values mean async.
func waitFlag(c *gin.Context) bool {
	wait, err := strconv.ParseBool(c.Query("wait"))
	if err != nil {
		return false
	}
	return wait
}
