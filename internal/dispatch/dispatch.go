// Package dispatch drives the request/continuation loop and maps every
// terminal outcome to a fixed process exit code.
package dispatch

import (
	"context"
	"io"
	"net/http"
	"strings"

	"ses-identity-tool/internal/logging"
	"ses-identity-tool/internal/operation"
	"ses-identity-tool/internal/ses"
)

// Exit codes are part of the tool's contract; scripts wrapping it branch on
// these values, so they must not change.
const (
	ExitSuccess      = 0
	ExitBadInput     = 1
	ExitUsage        = 2
	ExitUnavailable  = 30
	ExitAccess       = 31
	ExitExecution    = 32
	ExitInternal     = 70
	ExitThrottled    = 75
	ExitUnrecognized = -1
)

// ThrottlingPrefix marks the service error codes that mean rate limiting.
const ThrottlingPrefix = "Throttling"

// Caller executes one signed remote call.
type Caller interface {
	Call(ctx context.Context, params *operation.Params) (ses.CallResult, error)
}

// Renderer writes the user-facing output for one response body.
type Renderer interface {
	Render(op operation.Operation, body []byte, w io.Writer) error
}

// Run loops the operation's call until a terminal outcome and returns the
// exit code. Each successful page is rendered before the next call is
// issued; a continuation token is echoed back as the NextToken parameter.
// Remote failures exit quietly so wrappers read the code, not stderr.
func Run(ctx context.Context, caller Caller, renderer Renderer, op operation.Operation, params *operation.Params, out io.Writer) int {
	for page := 1; ; page++ {
		result, err := caller.Call(ctx, params)
		if err != nil {
			logging.Logf(logging.Error, "Call failed: %v", err)
			return ExitExecution
		}

		// Throttling outranks the status code: the whole run stops here so
		// an external wrapper can back off and reinvoke the process.
		if strings.HasPrefix(result.ErrorCode, ThrottlingPrefix) {
			logging.Logf(logging.Warning, "Request throttled on page %d (%s)", page, result.ErrorCode)
			return ExitThrottled
		}

		switch result.StatusCode {
		case http.StatusOK:
			if err := renderer.Render(op, result.Body, out); err != nil {
				logging.Logf(logging.Error, "Rendering response failed: %v", err)
				return ExitInternal
			}
			if result.NextToken == "" {
				logging.Logf(logging.Debug, "Completed after %d page(s)", page)
				return ExitSuccess
			}
			logging.Logf(logging.Debug, "Page %d truncated, continuing with token %q", page, result.NextToken)
			params.Set("NextToken", result.NextToken)
		case http.StatusBadRequest:
			logging.Logf(logging.Warning, "Service rejected the request (400, code %q)", result.ErrorCode)
			return ExitBadInput
		case http.StatusForbidden:
			logging.Logf(logging.Warning, "Access denied (403, code %q)", result.ErrorCode)
			return ExitAccess
		case http.StatusInternalServerError:
			logging.Logf(logging.Warning, "Service execution error (500, code %q)", result.ErrorCode)
			return ExitExecution
		case http.StatusServiceUnavailable:
			logging.Logf(logging.Warning, "Service unavailable (503, code %q)", result.ErrorCode)
			return ExitUnavailable
		default:
			logging.Logf(logging.Warning, "Unrecognized status %d (code %q)", result.StatusCode, result.ErrorCode)
			return ExitUnrecognized
		}
	}
}
