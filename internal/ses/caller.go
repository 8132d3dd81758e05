// Package ses performs signed query-protocol calls against the remote
// identity service and extracts the response fields the dispatch loop
// steers on.
package ses

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ses-identity-tool/internal/config"
	"ses-identity-tool/internal/logging"
	"ses-identity-tool/internal/operation"
	"ses-identity-tool/internal/sign"
	"ses-identity-tool/internal/util"
)

// DefaultEndpoint is where requests go unless -e overrides it.
const DefaultEndpoint = "https://email.us-east-1.amazonaws.com/"

// CallResult carries one HTTP exchange back to the dispatcher. ErrorCode is
// set only for non-200 responses whose body parsed as a service error
// document; NextToken only for 200 responses that carry a continuation token.
type CallResult struct {
	StatusCode int
	Body       []byte
	ErrorCode  string
	NextToken  string
}

// HTTPCaller signs and posts operation parameters to a single endpoint.
type HTTPCaller struct {
	endpoint string
	creds    config.Credentials
	client   *http.Client
	now      func() time.Time
}

// NewHTTPCaller returns a caller bound to one endpoint and credential pair.
func NewHTTPCaller(endpoint string, creds config.Credentials, client *http.Client) *HTTPCaller {
	return &HTTPCaller{
		endpoint: endpoint,
		creds:    creds,
		client:   client,
		now:      time.Now,
	}
}

// Call posts the encoded parameters and returns the classified result.
// Transport failures return an error; HTTP error statuses do not.
func (c *HTTPCaller) Call(ctx context.Context, params *operation.Params) (CallResult, error) {
	encoded := params.Encode()
	logging.Logf(logging.Debug, "Calling %s at %s", params.Action, c.endpoint)
	logging.Logf(logging.Debug, "Request body: %s", encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(encoded))
	if err != nil {
		return CallResult{}, fmt.Errorf("building request for %s: %w", params.Action, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sign.Apply(req, c.creds.AccessKey, c.creds.SecretKey, c.now())

	resp, err := c.client.Do(req)
	if err != nil {
		return CallResult{}, fmt.Errorf("calling %s: %w", params.Action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CallResult{}, fmt.Errorf("reading %s response: %w", params.Action, err)
	}
	logging.Logf(logging.Debug, "Response status %d, body: %s", resp.StatusCode, util.Snippet(body))

	result := CallResult{StatusCode: resp.StatusCode, Body: body}
	if resp.StatusCode == http.StatusOK {
		result.NextToken = nextToken(body)
	} else {
		result.ErrorCode = errorCode(body)
	}
	return result, nil
}
