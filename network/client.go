// Package network provides the HTTP client used for content API calls.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole API exchange unless configured otherwise.
const DefaultTimeout = 30 * time.Second

// Client is the shared HTTP client with the default timeout.
var Client = NewClient(DefaultTimeout)

// NewClient returns a client over a tuned transport.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
