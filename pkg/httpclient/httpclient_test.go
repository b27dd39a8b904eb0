// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestCarriesConfig(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotQuery  string
		gotHeader string
		gotBody   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("wait")
		gotHeader = r.Header.Get("X-Custom")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	cfg := NewClientConfig()
	cfg.BaseURL = srv.URL
	client := NewClient(cfg)

	var result struct {
		Status string `json:"status"`
	}
	resp, err := client.NewRequest(RequestConfig{
		Path:        "/pools",
		QueryParams: map[string]string{"wait": "true"},
		Headers:     map[string]string{"X-Custom": "yes"},
		Body:        map[string]string{"account": "acct1"},
		Result:      &result,
		Context:     context.Background(),
	}).Post()
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/pools", gotPath)
	assert.Equal(t, "true", gotQuery)
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, "acct1", gotBody["account"])
	assert.Equal(t, "ok", result.Status)
}

func TestNewRequestMethods(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cfg := NewClientConfig()
	cfg.BaseURL = srv.URL
	client := NewClient(cfg)

	req := func() *Request { return client.NewRequest(RequestConfig{Path: "/x"}) }
	_, err := req().Get()
	require.NoError(t, err)
	_, err = req().Post()
	require.NoError(t, err)
	_, err = req().Patch()
	require.NoError(t, err)
	_, err = req().Delete()
	require.NoError(t, err)

	assert.Equal(t, []string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
	}, methods)
}

func TestDefaultUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cfg := NewClientConfig()
	cfg.BaseURL = srv.URL
	_, err := NewClient(cfg).NewRequest(RequestConfig{Path: "/"}).Get()
	require.NoError(t, err)
	assert.Contains(t, ua, "Nimbus-Agent")
}
