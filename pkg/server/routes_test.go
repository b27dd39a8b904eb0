// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stratastor/nimbus/config"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/anf/anftest"
	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *anftest.StubControlPlane) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.APIKey = testAPIKey

	cp := anftest.NewStubControlPlane()
	return NewRouter(cfg, cp), cp
}

func doJSON(router *gin.Engine, method, target, key string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(constants.APIKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthIsUnauthenticated(t *testing.T) {
	router, cp := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Zero(t, cp.TotalCalls())
}

func TestMissingAPIKeyRejectedBeforeDispatch(t *testing.T) {
	router, cp := setupRouter(t)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/accounts"},
		{http.MethodPost, "/accounts"},
		{http.MethodGet, "/pools?account=a"},
		{http.MethodDelete, "/pools?account=a&pool=p"},
	} {
		w := doJSON(router, target.method, target.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code,
			"%s %s without key", target.method, target.path)
	}
	assert.Zero(t, cp.TotalCalls(), "unauthenticated requests must not reach the control plane")
}

func TestWrongAPIKeyRejected(t *testing.T) {
	router, cp := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/accounts", "wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var ne errors.NimbusError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ne))
	assert.Equal(t, errors.DomainAuth, ne.Domain)
	assert.Zero(t, cp.TotalCalls())
}

func TestCreateAccountWaitReturnsResource(t *testing.T) {
	router, _ := setupRouter(t)

	spec := anf.AccountSpec{Name: "acct1", Location: "eastus"}
	w := doJSON(router, http.MethodPost, "/accounts?wait=true", testAPIKey, spec)
	require.Equal(t, http.StatusAccepted, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "acct1", body["name"])
	assert.NotContains(t, body, "operation", "waited responses carry the resource, not a handle")
}

func TestCreateAccountNoWaitReturnsOperation(t *testing.T) {
	router, _ := setupRouter(t)

	spec := anf.AccountSpec{Name: "acct1", Location: "eastus"}
	w := doJSON(router, http.MethodPost, "/accounts", testAPIKey, spec)
	require.Equal(t, http.StatusAccepted, w.Code)

	var body struct {
		Operation *anf.Handle `json:"operation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Operation)
	assert.NotEmpty(t, body.Operation.ID)
}

func TestCreateAccountThenList(t *testing.T) {
	router, cp := setupRouter(t)

	spec := anf.AccountSpec{Name: "acct1", Location: "eastus"}
	w := doJSON(router, http.MethodPost, "/accounts?wait=true", testAPIKey, spec)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(router, http.MethodGet, "/accounts", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []anf.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, "acct1", accounts[0].Name)
	assert.Equal(t, 1, cp.Calls("CreateAccount"), "one request, one control-plane create")
}

func TestDeleteAccountWait(t *testing.T) {
	router, _ := setupRouter(t)

	doJSON(router, http.MethodPost, "/accounts?wait=true", testAPIKey,
		anf.AccountSpec{Name: "acct1", Location: "eastus"})

	w := doJSON(router, http.MethodDelete, "/accounts/acct1?wait=true", testAPIKey, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())
}

func TestCreatePoolInvalidSizeRejected(t *testing.T) {
	router, cp := setupRouter(t)

	spec := anf.PoolSpec{
		Account:      "acct1",
		Pool:         "pool1",
		Location:     "eastus",
		SizeTiB:      0,
		ServiceLevel: anf.ServiceLevelStandard,
	}
	w := doJSON(router, http.MethodPost, "/pools?wait=true", testAPIKey, spec)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, cp.TotalCalls())
}

func TestCreatePoolUnknownTierRejected(t *testing.T) {
	router, cp := setupRouter(t)

	spec := map[string]interface{}{
		"account":       "acct1",
		"pool":          "pool1",
		"location":      "eastus",
		"size_tb":       4,
		"service_level": "Platinum",
	}
	w := doJSON(router, http.MethodPost, "/pools", testAPIKey, spec)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var ne errors.NimbusError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ne))
	assert.Equal(t, errors.DomainANF, ne.Domain)
	assert.Zero(t, cp.TotalCalls())
}

func TestListPoolsRequiresAccount(t *testing.T) {
	router, cp := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/pools", testAPIKey, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, cp.TotalCalls())
}

func TestPoolLifecycleOverHTTP(t *testing.T) {
	router, _ := setupRouter(t)

	create := anf.PoolSpec{
		Account:      "acct1",
		Pool:         "pool1",
		Location:     "eastus",
		SizeTiB:      4,
		ServiceLevel: anf.ServiceLevelStandard,
	}
	w := doJSON(router, http.MethodPost, "/pools?wait=true", testAPIKey, create)
	require.Equal(t, http.StatusAccepted, w.Code)

	patch := map[string]interface{}{
		"account":       "acct1",
		"pool":          "pool1",
		"new_size_tb":   8,
		"service_level": "Premium",
	}
	w = doJSON(router, http.MethodPatch, "/pools?wait=true", testAPIKey, patch)
	require.Equal(t, http.StatusAccepted, w.Code)

	var pool anf.CapacityPool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pool))
	assert.Equal(t, int64(8), pool.SizeTiB())
	assert.Equal(t, anf.ServiceLevelPremium, pool.ServiceLevel)

	w = doJSON(router, http.MethodDelete, "/pools?account=acct1&pool=pool1&wait=true", testAPIKey, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/pools?account=acct1", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestEmptyPatchRejected(t *testing.T) {
	router, cp := setupRouter(t)

	patch := map[string]interface{}{"account": "acct1", "pool": "pool1"}
	w := doJSON(router, http.MethodPatch, "/pools", testAPIKey, patch)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var ne errors.NimbusError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ne))
	assert.Equal(t, errors.ErrorCode(errors.ANFEmptyPatch), ne.Code)
	assert.Zero(t, cp.TotalCalls())
}

func TestUpstreamFailurePassthrough(t *testing.T) {
	router, cp := setupRouter(t)
	cp.SubmitErr = errors.New(errors.AzureRequestFailed, "Operation returned 409").
		WithStatus(http.StatusConflict).
		WithMetadata("azure_error_code", "Conflict")

	spec := anf.AccountSpec{Name: "acct1", Location: "eastus"}
	w := doJSON(router, http.MethodPost, "/accounts?wait=true", testAPIKey, spec)
	assert.Equal(t, http.StatusConflict, w.Code, "upstream status surfaces verbatim")

	var ne errors.NimbusError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ne))
	assert.Equal(t, errors.DomainAzure, ne.Domain)
	assert.Contains(t, ne.Details, "409")
}

func TestWaitFlagAcceptsBoolForms(t *testing.T) {
	router, _ := setupRouter(t)

	spec := anf.AccountSpec{Name: "acct1", Location: "eastus"}
	w := doJSON(router, http.MethodPost, "/accounts?wait=1", testAPIKey, spec)
	require.Equal(t, http.StatusAccepted, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "acct1", body["name"], "wait=1 must block like wait=true")
	assert.NotContains(t, body, "operation")

	w = doJSON(router, http.MethodPost, "/accounts?wait=bogus", testAPIKey, spec)
	require.Equal(t, http.StatusAccepted, w.Code)
	body = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "operation", "unparsable wait values mean async")
}

func TestTrailingSlashServedDirectly(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, http.MethodGet, "/accounts/", testAPIKey, nil)
	assert.Equal(t, http.StatusOK, w.Code, "no redirect hop for the slash form")

	spec := anf.PoolSpec{
		Account:      "acct1",
		Pool:         "pool1",
		Location:     "eastus",
		SizeTiB:      4,
		ServiceLevel: anf.ServiceLevelStandard,
	}
	w = doJSON(router, http.MethodPost, "/pools/?wait=true", testAPIKey, spec)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(router, http.MethodGet, "/pools/?account=acct1", testAPIKey, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedJSONRejected(t *testing.T) {
	router, cp := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, cp.TotalCalls())
}
