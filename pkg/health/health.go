// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"fmt"
	"time"

	"github.com/stratastor/logger"
	"github.com/stratastor/nimbus/config"
	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stratastor/nimbus/pkg/httpclient"
)

type HealthChecker struct {
	Client *httpclient.Client
	Logger logger.Logger
}

func NewHealthChecker(cfg *config.Config) *HealthChecker {
	logConfig := config.NewLoggerConfig(cfg)
	l, err := logger.NewTag(logConfig, "health")
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	baseURL := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	clientConfig := httpclient.NewClientConfig()
	clientConfig.Timeout = 5 * time.Second
	// The probe is a read, retrying it is safe.
	clientConfig.RetryCount = 3
	clientConfig.RetryWaitTime = 2 * time.Second
	clientConfig.BaseURL = baseURL
	client := httpclient.NewClient(clientConfig)

	return &HealthChecker{
		Client: client,
		Logger: l,
	}
}

// CheckHealth hits the gateway liveness endpoint. The endpoint sits outside
// the API key check, so a plain GET suffices.
func (hc *HealthChecker) CheckHealth() (string, error) {
	cfg := config.GetConfig()

	resp, err := hc.Client.R().
		SetPathParam("endpoint", cfg.Health.Endpoint).
		Get("{endpoint}")

	if err != nil {
		return "", errors.Wrap(err, errors.HealthCheckFailed)
	}

	if resp.IsSuccess() {
		return resp.String(), nil
	}
	return "", errors.New(errors.HealthCheckFailed,
		fmt.Sprintf("status: %s, response: %s", resp.Status(), resp.String()))
}
