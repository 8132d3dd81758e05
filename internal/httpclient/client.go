// Package httpclient builds the HTTP client remote calls run on.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds one whole request/response exchange. The dispatch
// loop itself enforces no deadline of its own.
const DefaultTimeout = 30 * time.Second

// New returns a client with the transport tuned for short-lived CLI use.
func New(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
