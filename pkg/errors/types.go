// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package errors

import "net/http"

const (
	DomainConfig    Domain = "CONFIG"
	DomainServer    Domain = "SERVER"
	DomainAuth      Domain = "AUTH"
	DomainANF       Domain = "ANF"
	DomainAzure     Domain = "AZURE"
	DomainClient    Domain = "CLIENT"
	DomainHealth    Domain = "HEALTH"
	DomainLifecycle Domain = "LIFECYCLE"
)

// ErrorCode represents unique error identifiers
type ErrorCode int

// Domain represents the subsystem where the error originated
type Domain string

type NimbusError struct {
	Code       ErrorCode `json:"code"`
	Domain     Domain    `json:"domain"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`

	// Metadata carries contextual fields that don't fit the standard
	// error attributes: upstream error codes, resource names, request IDs.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error code ranges:
// 1000-1099: Configuration errors
// 1100-1199: Server errors
// 1200-1299: Auth errors
// 1300-1399: ANF request validation
// 1400-1499: Azure control-plane errors
// 1500-1599: Consumer client errors
// 1600-1699: Health check
// 1700-1799: Lifecycle management
const (
	// Configuration Errors (1000-1099)
	ConfigNotFound           = 1000 + iota // Config file not found
	ConfigInvalid                          // Invalid config format
	ConfigLoadFailed                       // Failed to load config
	ConfigWriteFailed                      // Failed to write config
	ConfigValidationFailed                 // Config validation failed
	ConfigMissingSubscription              // Azure subscription ID not set
	ConfigMissingResourceGroup             // Azure resource group not set
)

const (
	// Server Errors (1100-1199)
	ServerStart             = 1100 + iota // Failed to start server
	ServerShutdown                        // Error during shutdown
	ServerBind                            // Failed to bind port
	ServerRequestValidation               // Request validation failed
	ServerInternalError
)

const (
	// Auth Errors (1200-1299)
	AuthMissingAPIKey = 1200 + iota // x-api-key header absent
	AuthInvalidAPIKey               // x-api-key header mismatch
)

const (
	// ANF request validation (1300-1399)
	ANFAccountNameRequired = 1300 + iota // Account name missing
	ANFLocationRequired                  // Azure region missing
	ANFPoolNameRequired                  // Pool name missing
	ANFAccountScopeRequired              // Pool operation without account scope
	ANFPoolSizeInvalid                   // Pool size not a positive integer
	ANFServiceLevelInvalid               // Service level outside the allowed set
	ANFEmptyPatch                        // Patch carries no mutable field
)

const (
	// Azure control-plane errors (1400-1499)
	AzureRequestFailed   = 1400 + iota // Control-plane call rejected
	AzureOperationFailed               // Long-running operation failed
	AzureCredentialError               // Credential resolution failed
	AzureClientInit                    // ARM client construction failed
)

const (
	// Consumer client errors (1500-1599)
	ClientRequestFailed = 1500 + iota // Request transport failure
	ClientDecodeFailed                // Response payload decode failure
)

const (
	// Health check (1600-1699)
	HealthCheckFailed = 1600 + iota
)

const (
	// Lifecycle management (1700-1799)
	LifecycleAlreadyRunning = 1700 + iota // Another instance holds the PID file
	LifecyclePIDFileError                 // PID file unreadable/unwritable
)

var errorDefinitions = map[ErrorCode]struct {
	message    string
	domain     Domain
	httpStatus int
}{
	// Configuration errors
	ConfigNotFound:   {"Configuration file not found", DomainConfig, http.StatusNotFound},
	ConfigInvalid:    {"Invalid configuration format", DomainConfig, http.StatusBadRequest},
	ConfigLoadFailed: {"Failed to load configuration", DomainConfig, http.StatusInternalServerError},
	ConfigWriteFailed: {
		"Failed to write configuration",
		DomainConfig,
		http.StatusInternalServerError,
	},
	ConfigValidationFailed: {
		"Configuration validation failed",
		DomainConfig,
		http.StatusBadRequest,
	},
	ConfigMissingSubscription: {
		"Azure subscription ID is not configured",
		DomainConfig,
		http.StatusInternalServerError,
	},
	ConfigMissingResourceGroup: {
		"Azure resource group is not configured",
		DomainConfig,
		http.StatusInternalServerError,
	},

	// Server errors
	ServerStart:    {"Failed to start server", DomainServer, http.StatusInternalServerError},
	ServerShutdown: {"Error during server shutdown", DomainServer, http.StatusInternalServerError},
	ServerBind:     {"Failed to bind server port", DomainServer, http.StatusInternalServerError},
	ServerRequestValidation: {
		"Request validation failed",
		DomainServer,
		http.StatusBadRequest,
	},
	ServerInternalError: {"Internal server error", DomainServer, http.StatusInternalServerError},

	// Auth errors
	AuthMissingAPIKey: {"Missing API key", DomainAuth, http.StatusUnauthorized},
	AuthInvalidAPIKey: {"Invalid API key", DomainAuth, http.StatusUnauthorized},

	// ANF request validation
	ANFAccountNameRequired: {"Account name is required", DomainANF, http.StatusBadRequest},
	ANFLocationRequired:    {"Azure region is required", DomainANF, http.StatusBadRequest},
	ANFPoolNameRequired:    {"Pool name is required", DomainANF, http.StatusBadRequest},
	ANFAccountScopeRequired: {
		"Account query parameter is required",
		DomainANF,
		http.StatusBadRequest,
	},
	ANFPoolSizeInvalid: {
		"Pool size must be a positive number of TiB",
		DomainANF,
		http.StatusBadRequest,
	},
	ANFServiceLevelInvalid: {
		"Service level must be one of Standard, Premium, Ultra, StandardZRS",
		DomainANF,
		http.StatusBadRequest,
	},
	ANFEmptyPatch: {
		"Specify new_size_tb or service_level",
		DomainANF,
		http.StatusBadRequest,
	},

	// Azure control-plane errors. AzureRequestFailed and AzureOperationFailed
	// default to 502 but carry the upstream status verbatim when one exists.
	AzureRequestFailed:   {"Azure control-plane request failed", DomainAzure, http.StatusBadGateway},
	AzureOperationFailed: {"Azure long-running operation failed", DomainAzure, http.StatusBadGateway},
	AzureCredentialError: {
		"Failed to resolve Azure credential",
		DomainAzure,
		http.StatusInternalServerError,
	},
	AzureClientInit: {
		"Failed to construct Azure management client",
		DomainAzure,
		http.StatusInternalServerError,
	},

	// Consumer client errors
	ClientRequestFailed: {"HTTP request failed", DomainClient, http.StatusBadGateway},
	ClientDecodeFailed:  {"Failed to decode response payload", DomainClient, http.StatusBadGateway},

	// Health check
	HealthCheckFailed: {"Health check failed", DomainHealth, http.StatusServiceUnavailable},

	// Lifecycle management
	LifecycleAlreadyRunning: {
		"Another instance is already running",
		DomainLifecycle,
		http.StatusConflict,
	},
	LifecyclePIDFileError: {
		"PID file operation failed",
		DomainLifecycle,
		http.StatusInternalServerError,
	},
}
