// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package constants

// Build-time variables set via ldflags
var (
	Version   = "v0.0.1-dev" // Set via -X flag during build
	CommitSHA = "unknown"    // Set via -X flag during build
	BuildTime = "unknown"    // Set via -X flag during build
)

const (
	NimbusVersion     = "v0.0.1"
	NimbusPIDFilePath = "/home/nimbus/.nimbus/nimbus.pid"

	// config
	ConfigFileName = "nimbus.yml"

	// routes
	APIHealth   = "/health"
	APIAccounts = "/accounts"
	APIPools    = "/pools"

	// APIKeyHeader carries the shared secret on every non-health route.
	APIKeyHeader = "x-api-key"
)
