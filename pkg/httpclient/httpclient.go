// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

// Package httpclient wraps resty with the transport and retry defaults shared
// by the gateway consumers (the typed client and the health probe).
package httpclient

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stratastor/nimbus/internal/constants"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultRetryCount      = 0
	defaultMaxIdleConns    = 100
	defaultIdleConnTimeout = 90 * time.Second
	defaultUserAgent       = "Nimbus-Agent"
)

// Client wraps resty.Client with additional functionality
type Client struct {
	*resty.Client
	config ClientConfig
}

// ClientConfig holds configuration values for the HTTP client
type ClientConfig struct {
	BaseURL          string
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	RetryConditions  []resty.RetryConditionFunc
	UserAgent        string

	// Security settings
	TLSConfig     *tls.Config
	AllowInsecure bool

	// Request settings
	Headers     map[string]string
	QueryParams map[string]string

	// Transport settings
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	DisableKeepAlives   bool

	// Debug settings
	Debug          bool
	DebugBodyLimit int64
}

// NewClientConfig returns a ClientConfig with sensible defaults. Mutation
// requests against long-running Azure operations are not idempotent, so
// retries stay off unless the caller opts in.
func NewClientConfig() ClientConfig {
	return ClientConfig{
		Headers:         make(map[string]string),
		QueryParams:     make(map[string]string),
		MaxIdleConns:    defaultMaxIdleConns,
		IdleConnTimeout: defaultIdleConnTimeout,
		Timeout:         defaultTimeout,
		RetryCount:      defaultRetryCount,
		UserAgent:       defaultUserAgent + "/" + constants.NimbusVersion,
	}
}

// NewClient creates a new Resty client with provided configuration
func NewClient(config ClientConfig) *Client {
	client := &Client{
		Client: resty.New(),
		config: config,
	}
	client.applyConfig()
	return client
}

func (c *Client) applyConfig() {
	if c.config.Timeout > 0 {
		c.Client.SetTimeout(c.config.Timeout)
	}
	if c.config.RetryCount > 0 {
		c.Client.SetRetryCount(c.config.RetryCount)
	}
	if c.config.RetryWaitTime > 0 {
		c.Client.SetRetryWaitTime(c.config.RetryWaitTime)
	}
	if c.config.RetryMaxWaitTime > 0 {
		c.Client.SetRetryMaxWaitTime(c.config.RetryMaxWaitTime)
	}
	if c.config.UserAgent != "" {
		c.Client.SetHeader("User-Agent", c.config.UserAgent)
	}
	if c.config.BaseURL != "" {
		c.Client.SetBaseURL(c.config.BaseURL)
	}
	if c.config.Headers != nil {
		c.Client.SetHeaders(c.config.Headers)
	}
	if c.config.QueryParams != nil {
		c.Client.SetQueryParams(c.config.QueryParams)
	}
	if c.config.Debug {
		c.Client.SetDebug(true)
		if c.config.DebugBodyLimit > 0 {
			c.Client.SetDebugBodyLimit(c.config.DebugBodyLimit)
		}
	} else {
		c.Client.SetDebug(false)
		// Suppress Resty logs by setting a no-op logger
		c.Client.SetLogger(NoOpLogger{})
	}
	for _, condition := range c.config.RetryConditions {
		c.Client.AddRetryCondition(condition)
	}

	transport := &http.Transport{
		MaxIdleConns:        c.config.MaxIdleConns,
		MaxIdleConnsPerHost: c.config.MaxIdleConnsPerHost,
		IdleConnTimeout:     c.config.IdleConnTimeout,
		DisableKeepAlives:   c.config.DisableKeepAlives,
	}
	if c.config.TLSConfig != nil {
		transport.TLSClientConfig = c.config.TLSConfig
	} else if c.config.AllowInsecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	c.Client.SetTransport(transport)
}

// NoOpLogger suppresses all logs
type NoOpLogger struct{}

func (l NoOpLogger) Printf(format string, v ...interface{}) {}
func (l NoOpLogger) Debugf(format string, v ...interface{}) {}
func (l NoOpLogger) Warnf(format string, v ...interface{})  {}
func (l NoOpLogger) Errorf(format string, v ...interface{}) {}

// RequestConfig holds request-level parameters
type RequestConfig struct {
	Path        string
	Headers     map[string]string
	QueryParams map[string]string
	Body        interface{}
	Result      interface{}
	Error       interface{}
	Context     context.Context
}

// Request wraps resty.Request with additional functionality
type Request struct {
	client  *Client
	request *resty.Request
	config  RequestConfig
}

// NewRequest creates a new request with given configuration
func (c *Client) NewRequest(cfg RequestConfig) *Request {
	req := &Request{
		client:  c,
		request: c.R(),
		config:  cfg,
	}

	if cfg.Headers != nil {
		req.request.SetHeaders(cfg.Headers)
	}
	if cfg.QueryParams != nil {
		req.request.SetQueryParams(cfg.QueryParams)
	}
	if cfg.Body != nil {
		req.request.SetBody(cfg.Body)
	}
	if cfg.Result != nil {
		req.request.SetResult(cfg.Result)
	}
	if cfg.Error != nil {
		req.request.SetError(cfg.Error)
	}
	if cfg.Context != nil {
		req.request.SetContext(cfg.Context)
	}

	return req
}

// Execute performs the HTTP request with the specified method
func (r *Request) Execute(method string) (*resty.Response, error) {
	return r.request.Execute(method, r.config.Path)
}

// Convenience methods for common HTTP methods
func (r *Request) Get() (*resty.Response, error) {
	return r.Execute(http.MethodGet)
}

func (r *Request) Post() (*resty.Response, error) {
	return r.Execute(http.MethodPost)
}

func (r *Request) Patch() (*resty.Response, error) {
	return r.Execute(http.MethodPatch)
}

func (r *Request) Delete() (*resty.Response, error) {
	return r.Execute(http.MethodDelete)
}
