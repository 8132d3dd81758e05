package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client := New(5 * time.Second)

	require.NotNil(t, client)
	assert.Equal(t, 5*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok, "transport should be *http.Transport")
	assert.True(t, transport.ForceAttemptHTTP2)
	assert.Equal(t, 100, transport.MaxIdleConns)
	assert.Equal(t, 90*time.Second, transport.IdleConnTimeout)
	assert.Equal(t, 10*time.Second, transport.TLSHandshakeTimeout)
	assert.Equal(t, 1*time.Second, transport.ExpectContinueTimeout)
	assert.NotNil(t, transport.DialContext)
}

func TestNew_DistinctTransports(t *testing.T) {
	a := New(DefaultTimeout)
	b := New(DefaultTimeout)

	assert.NotSame(t, a.Transport, b.Transport, "each client owns its transport")
}
