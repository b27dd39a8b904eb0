// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package client provides a typed Go consumer for the nimbus gateway. It
// speaks the same wire shapes the gateway serves and surfaces non-2xx
// responses as APIError values without retrying on the caller's behalf.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/stratastor/nimbus/internal/constants"
	"github.com/stratastor/nimbus/pkg/anf"
	"github.com/stratastor/nimbus/pkg/errors"
	"github.com/stratastor/nimbus/pkg/httpclient"
)

// Config holds the coordinates of a nimbus gateway.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client is a typed wrapper over the gateway's REST surface.
type Client struct {
	http *httpclient.Client
}

// APIError carries a non-2xx gateway response back to the caller. Body is the
// decoded coded-error payload when the gateway produced one.
type APIError struct {
	Status int
	Body   *errors.NimbusError
	Raw    string
}

func (e *APIError) Error() string {
	if e.Body != nil {
		return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Body.Error())
	}
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Raw)
}

// MutationResponse is the envelope every mutation returns. Exactly one of the
// fields is populated: Operation when the gateway acknowledged without
// waiting, Resource or Deleted when it waited for completion.
type MutationResponse struct {
	Operation *anf.Handle
	Resource  json.RawMessage
	Deleted   bool
}

type mutationEnvelope struct {
	Operation *anf.Handle `json:"operation"`
	Status    string      `json:"status"`
}

func New(cfg Config) *Client {
	clientConfig := httpclient.NewClientConfig()
	clientConfig.BaseURL = cfg.BaseURL
	if cfg.APIKey != "" {
		clientConfig.Headers[constants.APIKeyHeader] = cfg.APIKey
	}
	return &Client{http: httpclient.NewClient(clientConfig)}
}

func waitParam(wait bool) map[string]string {
	return map[string]string{"wait": strconv.FormatBool(wait)}
}

// Health probes the gateway liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	reqCfg := httpclient.RequestConfig{
		Path:    constants.APIHealth,
		Context: ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Get()
	if err != nil {
		return errors.Wrap(err, errors.ClientRequestFailed)
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}

// ListAccounts returns every NetApp account in the configured resource group.
func (c *Client) ListAccounts(ctx context.Context) ([]anf.Account, error) {
	var accounts []anf.Account
	reqCfg := httpclient.RequestConfig{
		Path:    constants.APIAccounts,
		Result:  &accounts,
		Context: ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Get()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	return accounts, nil
}

// CreateAccount submits an account create. With wait set, the gateway blocks
// until provisioning finishes and the response carries the resource.
func (c *Client) CreateAccount(ctx context.Context, spec anf.AccountSpec, wait bool) (*MutationResponse, error) {
	reqCfg := httpclient.RequestConfig{
		Path:        constants.APIAccounts,
		QueryParams: waitParam(wait),
		Body:        spec,
		Context:     ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Post()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	return mutationResult(resp)
}

// DeleteAccount removes an account by name.
func (c *Client) DeleteAccount(ctx context.Context, name string, wait bool) (*MutationResponse, error) {
	reqCfg := httpclient.RequestConfig{
		Path:        constants.APIAccounts + "/" + name,
		QueryParams: waitParam(wait),
		Context:     ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Delete()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	return mutationResult(resp)
}

// ListPools returns the capacity pools under the named account.
func (c *Client) ListPools(ctx context.Context, account string) ([]anf.CapacityPool, error) {
	var pools []anf.CapacityPool
	reqCfg := httpclient.RequestConfig{
		Path:        constants.APIPools,
		QueryParams: map[string]string{"account": account},
		Result:      &pools,
		Context:     ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Get()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	return pools, nil
}

// CreatePool submits a capacity pool create.
func (c *Client) CreatePool(ctx context.Context, spec anf.PoolSpec, wait bool) (*MutationResponse, error) {
	reqCfg := httpclient.RequestConfig{
		Path:        constants.APIPools,
		QueryParams: waitParam(wait),
		Body:        spec,
		Context:     ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Post()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	return mutationResult(resp)
}

// UpdatePool resizes a pool or moves it to another service level.
func (c *Client) UpdatePool(ctx context.Context, id anf.PoolID, patch anf.PoolPatch, wait bool) (*MutationResponse, error) {
	body := map[string]interface{}{
		"account": id.Account,
		"pool":    id.Pool,
	}
	if patch.SizeTiB != nil {
		body["new_size_tb"] = *patch.SizeTiB
	}
	if patch.ServiceLevel != nil {
		body["service_level"] = *patch.ServiceLevel
	}
	reqCfg := httpclient.RequestConfig{
		Path:        constants.APIPools,
		QueryParams: waitParam(wait),
		Body:        body,
		Context:     ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Patch()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	return mutationResult(resp)
}

// DeletePool removes a capacity pool.
func (c *Client) DeletePool(ctx context.Context, id anf.PoolID, wait bool) (*MutationResponse, error) {
	reqCfg := httpclient.RequestConfig{
		Path: constants.APIPools,
		QueryParams: map[string]string{
			"account": id.Account,
			"pool":    id.Pool,
			"wait":    strconv.FormatBool(wait),
		},
		Context: ctx,
	}
	resp, err := c.http.NewRequest(reqCfg).Delete()
	if err != nil {
		return nil, errors.Wrap(err, errors.ClientRequestFailed)
	}
	return mutationResult(resp)
}

func mutationResult(resp *resty.Response) (*MutationResponse, error) {
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}

	var envelope mutationEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, errors.Wrap(err, errors.ClientDecodeFailed)
	}
	if envelope.Operation != nil {
		return &MutationResponse{Operation: envelope.Operation}, nil
	}
	if envelope.Status == "deleted" {
		return &MutationResponse{Deleted: true}, nil
	}
	return &MutationResponse{Resource: json.RawMessage(resp.Body())}, nil
}

func apiError(resp *resty.Response) error {
	apiErr := &APIError{
		Status: resp.StatusCode(),
		Raw:    resp.String(),
	}
	var ne errors.NimbusError
	if err := json.Unmarshal(resp.Body(), &ne); err == nil && ne.Code != 0 {
		apiErr.Body = &ne
	}
	return apiErr
}
