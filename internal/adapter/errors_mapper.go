package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// unavailableCauses are node-side conditions that say nothing about the
// request itself.
var unavailableCauses = map[string]bool{
	"TIMEOUT_ERROR":    true,
	"NO_SYNCED_BLOCKS": true,
	"NOT_SYNCED_YET":   true,
	"INTERNAL_ERROR":   true,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrRPC, resp.StatusCode(), body)
}

func mapRPCError(e *rpcError) error {
	cause := e.causeName()
	switch {
	case cause == "UNKNOWN_ACCOUNT":
		return fmt.Errorf("%w: %s", ErrUnknownAccount, e)
	case unavailableCauses[cause]:
		return fmt.Errorf("%w: %s", ErrUnavailable, e)
	default:
		return fmt.Errorf("%w: %s", ErrRPC, e)
	}
}

func mapFaucetError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrFaucetRejected, resp.StatusCode(), body)
}
