// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesDefinition(t *testing.T) {
	err := New(ANFPoolSizeInvalid, "size_tb must be > 0")

	assert.Equal(t, ErrorCode(ANFPoolSizeInvalid), err.Code)
	assert.Equal(t, DomainANF, err.Domain)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Error(), "size_tb must be > 0")
}

func TestNewUnknownCodeFallsBack(t *testing.T) {
	err := New(ErrorCode(9999), "mystery")

	assert.Equal(t, DomainServer, err.Domain)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Contains(t, err.Error(), "mystery")
}

func TestWrapPassesNimbusErrorThrough(t *testing.T) {
	orig := New(AuthInvalidAPIKey, "")
	wrapped := Wrap(fmt.Errorf("handler: %w", orig), ServerInternalError)

	assert.Same(t, orig, wrapped, "wrapping must not re-code an existing error")
}

func TestWrapConvertsForeignError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("dial tcp: connection refused"), ClientRequestFailed)

	require.NotNil(t, wrapped)
	assert.Equal(t, DomainClient, wrapped.Domain)
	assert.Contains(t, wrapped.Details, "connection refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ServerInternalError))
}

func TestIsAndInDomain(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ANFEmptyPatch, ""))

	assert.True(t, Is(err, ANFEmptyPatch))
	assert.False(t, Is(err, ANFPoolSizeInvalid))
	assert.True(t, InDomain(err, DomainANF))
	assert.False(t, InDomain(err, DomainAzure))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Status(New(AuthInvalidAPIKey, "")))
	assert.Equal(t, http.StatusInternalServerError, Status(fmt.Errorf("plain")))
}

func TestWithStatusOverride(t *testing.T) {
	err := New(AzureRequestFailed, "quota exceeded").WithStatus(http.StatusConflict)

	assert.Equal(t, http.StatusConflict, err.HTTPStatus)
	// Zero is not a status, the override must be ignored.
	assert.Equal(t, http.StatusConflict, err.WithStatus(0).HTTPStatus)
}

func TestWithMetadata(t *testing.T) {
	err := New(AzureOperationFailed, "").
		WithMetadata("azure_status", "409").
		WithMetadata("azure_error_code", "Conflict")

	assert.Equal(t, "409", err.Metadata["azure_status"])
	assert.Equal(t, "Conflict", err.Metadata["azure_error_code"])
}

func TestJSONOmitsHTTPStatus(t *testing.T) {
	raw, err := json.Marshal(New(ANFAccountNameRequired, ""))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "HTTPStatus")
	assert.Equal(t, "ANF", decoded["domain"])
}
