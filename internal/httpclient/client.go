// Package httpclient provides the shared outbound HTTP client constructor.
package httpclient

import (
	"net/http"
	"time"
)

// Default transport settings for outbound requests.
const (
	DefaultTimeout               = 30 * time.Second
	DefaultMaxIdleConns          = 100
	DefaultMaxIdleConnsPerHost   = 10
	DefaultIdleConnTimeout       = 90 * time.Second
	DefaultResponseHeaderTimeout = 30 * time.Second
	DefaultTLSHandshakeTimeout   = 10 * time.Second
)

// Config configures an HTTP client.
type Config struct {
	// Timeout bounds each request end to end. Zero uses DefaultTimeout.
	Timeout time.Duration

	// MaxIdleConns controls idle keep-alive connections across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost controls idle keep-alive connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout closes idle connections after this duration.
	IdleConnTimeout time.Duration
}

// New creates an HTTP client with standardized transport configuration.
// If cfg is nil, default values are used.
func New(cfg *Config) *http.Client {
	if cfg == nil {
		cfg = &Config{}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	maxIdleConns := cfg.MaxIdleConns
	if maxIdleConns == 0 {
		maxIdleConns = DefaultMaxIdleConns
	}

	maxIdleConnsPerHost := cfg.MaxIdleConnsPerHost
	if maxIdleConnsPerHost == 0 {
		maxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}

	idleConnTimeout := cfg.IdleConnTimeout
	if idleConnTimeout == 0 {
		idleConnTimeout = DefaultIdleConnTimeout
	}

	transport := &http.Transport{
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		IdleConnTimeout:       idleConnTimeout,
		ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
		TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
