package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/utils"
	"github.com/google/uuid"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Name    string          `json:"name"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Cause   *struct {
		Name string          `json:"name"`
		Info json.RawMessage `json:"info"`
	} `json:"cause"`
}

func (e *rpcError) causeName() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Name
}

func (e *rpcError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if cause := e.causeName(); cause != "" {
		fmt.Fprintf(&b, " (%s)", cause)
	}
	if len(e.Data) > 0 {
		var data string
		if json.Unmarshal(e.Data, &data) == nil && data != "" {
			b.WriteString(": " + data)
		}
	}
	return b.String()
}

// rpcClient speaks JSON-RPC 2.0 with a single node endpoint.
type rpcClient struct {
	client   *utils.HTTPClient
	endpoint string
	logger   *logger.Logger
}

func newRPCClient(client *utils.HTTPClient, endpoint string, log *logger.Logger) *rpcClient {
	return &rpcClient{
		client:   client,
		endpoint: endpoint,
		logger:   log,
	}
}

// call invokes method with params and decodes the result into out.
func (c *rpcClient) call(ctx context.Context, method string, params, out any) error {
	req := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Str("method", method).
		Str("id", req.ID).
		Msg("rpc request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s request: %v", ErrUnavailable, method, err)
	}

	var rpcResp rpcResponse
	decodeErr := json.Unmarshal(resp.Body(), &rpcResp)
	if decodeErr == nil && rpcResp.Error != nil {
		return mapRPCError(rpcResp.Error)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrMalformedResponse, method, decodeErr)
	}
	if len(rpcResp.Result) == 0 {
		return fmt.Errorf("%w: %s response has no result", ErrMalformedResponse, method)
	}

	if err = json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%w: decode %s result: %v", ErrMalformedResponse, method, err)
	}
	return nil
}
