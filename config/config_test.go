// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequiresAzureCoordinates(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, errors.ConfigMissingSubscription))

	cfg.Azure.SubscriptionID = "00000000-0000-0000-0000-000000000000"
	err = cfg.Validate()
	assert.True(t, errors.Is(err, errors.ConfigMissingResourceGroup))

	cfg.Azure.ResourceGroup = "anf-rg"
	assert.NoError(t, cfg.Validate())
}

func TestNewLoggerConfig(t *testing.T) {
	assert.Equal(t, "info", NewLoggerConfig(nil).LogLevel)

	cfg := &Config{}
	cfg.Logger.LogLevel = "debug"
	cfg.Logger.EnableSentry = true
	cfg.Logger.SentryDSN = "https://example.invalid/1"

	lc := NewLoggerConfig(cfg)
	assert.Equal(t, "debug", lc.LogLevel)
	assert.True(t, lc.EnableSentry)
	assert.Equal(t, "https://example.invalid/1", lc.SentryDSN)
}
