// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/errors"
)

// LoggerMiddleware creates a dedicated middleware function for better reusability and testing
func LoggerMiddleware(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Skip logging for health check endpoints
		if path == constants.APIHealth {
			c.Next()
			return
		}

		// Get or generate request ID
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-Id", requestID)
		}

		// Store request ID in context for error correlation
		c.Set("request_id", requestID)

		// Process request
		c.Next()

		// Build common request attributes
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.Int("bytes_out", c.Writer.Size()),
			slog.String("ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		}

		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			attrs = append(attrs, slog.String("forwarded_for", xff))
		}

		// Handle errors if present
		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				if ne, ok := err.Err.(*errors.NimbusError); ok {
					attrs = append(attrs,
						slog.Int("error_code", int(ne.Code)),
						slog.String("error_domain", string(ne.Domain)),
						slog.String("error_message", ne.Message),
						slog.String("error_details", ne.Details),
					)

					// Add metadata as individual fields
					for k, v := range ne.Metadata {
						attrs = append(attrs, slog.String("error_metadata_"+k, v))
					}
				} else {
					attrs = append(attrs, slog.String("error", err.Error()))
				}
			}

			// Log as error for 5xx, warn for 4xx
			switch {
			case c.Writer.Status() >= 500:
				l.Error("Server Error", logAttrs(attrs)...)
			case c.Writer.Status() >= 400:
				l.Warn("Client Error", logAttrs(attrs)...)
			}
		} else {
			// Log successful requests
			l.Info("Request", logAttrs(attrs)...)
		}
	}
}

// Helper to convert slog.Attr slice to interface slice
func logAttrs(attrs []slog.Attr) []interface{} {
	args := make([]interface{}, len(attrs)*2)
	for i, attr := range attrs {
		args[i*2] = attr.Key
		args[i*2+1] = attr.Value.Any()
	}
	return args
}
