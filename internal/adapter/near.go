package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/asimov-account/internal/config"
	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/network"
	"github.com/MKhiriev/asimov-account/internal/utils"
	"github.com/MKhiriev/asimov-account/models"
	"github.com/mr-tron/base58"
)

const (
	finalityFinal    = "final"
	waitUntilExecOpt = "EXECUTED_OPTIMISTIC"
)

type endpoints struct {
	rpc    *rpcClient
	faucet string
}

type nearAdapter struct {
	client   *utils.HTTPClient
	networks map[network.Name]endpoints
	logger   *logger.Logger
}

// NewNetworkAdapter constructs the resty implementation of [NetworkAdapter].
// It normalises and validates every configured RPC and faucet URL and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if any configured URL cannot be parsed.
func NewNetworkAdapter(cfg config.CLIAdapter, log *logger.Logger) (NetworkAdapter, error) {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	a := &nearAdapter{
		client:   client,
		networks: make(map[network.Name]endpoints, len(cfg.Endpoints)),
		logger:   log,
	}

	for name, ep := range cfg.Endpoints {
		rpcURL, err := normalizeBaseURL(ep.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("invalid %s rpc url: %w", name, err)
		}

		var faucetURL string
		if ep.FaucetURL != "" {
			if faucetURL, err = normalizeBaseURL(ep.FaucetURL); err != nil {
				return nil, fmt.Errorf("invalid %s faucet url: %w", name, err)
			}
		}

		a.networks[name] = endpoints{
			rpc:    newRPCClient(client, rpcURL, log),
			faucet: faucetURL,
		}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *nearAdapter) rpc(net network.Name) (*rpcClient, error) {
	ep, ok := a.networks[net]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNetworkNotConfigured, net)
	}
	return ep.rpc, nil
}

// queryResult is the envelope of a query whose failure is reported inside
// the result instead of as a JSON-RPC error by older nodes.
type queryResult struct {
	Error string `json:"error"`
}

func (a *nearAdapter) query(ctx context.Context, net network.Name, params map[string]any, out any) error {
	rpc, err := a.rpc(net)
	if err != nil {
		return err
	}

	var raw json.RawMessage
	if err = rpc.call(ctx, "query", params, &raw); err != nil {
		return err
	}

	var qr queryResult
	if json.Unmarshal(raw, &qr) == nil && qr.Error != "" {
		if strings.Contains(qr.Error, "does not exist") {
			return fmt.Errorf("%w: %s", ErrUnknownAccount, qr.Error)
		}
		return fmt.Errorf("%w: %s", ErrRPC, qr.Error)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode query result: %v", ErrMalformedResponse, err)
	}
	return nil
}

// ViewAccount implements [NetworkAdapter] with a view_account query.
func (a *nearAdapter) ViewAccount(ctx context.Context, net network.Name, id models.AccountID) (models.AccountView, error) {
	var view models.AccountView
	err := a.query(ctx, net, map[string]any{
		"request_type": "view_account",
		"finality":     finalityFinal,
		"account_id":   id.String(),
	}, &view)
	if err != nil {
		return models.AccountView{}, fmt.Errorf("view account %s: %w", id, err)
	}
	return view, nil
}

// ViewAccessKeyList implements [NetworkAdapter] with a view_access_key_list
// query.
func (a *nearAdapter) ViewAccessKeyList(ctx context.Context, net network.Name, id models.AccountID) (models.AccessKeyList, error) {
	var list models.AccessKeyList
	err := a.query(ctx, net, map[string]any{
		"request_type": "view_access_key_list",
		"finality":     finalityFinal,
		"account_id":   id.String(),
	}, &list)
	if err != nil {
		return models.AccessKeyList{}, fmt.Errorf("view access keys of %s: %w", id, err)
	}
	return list, nil
}

// LatestBlockHash implements [NetworkAdapter].
func (a *nearAdapter) LatestBlockHash(ctx context.Context, net network.Name) ([32]byte, error) {
	var hash [32]byte

	rpc, err := a.rpc(net)
	if err != nil {
		return hash, err
	}

	var block models.BlockView
	if err = rpc.call(ctx, "block", map[string]any{"finality": finalityFinal}, &block); err != nil {
		return hash, fmt.Errorf("latest block: %w", err)
	}

	raw, err := base58.Decode(block.Header.Hash)
	if err != nil || len(raw) != len(hash) {
		return hash, fmt.Errorf("%w: block hash %q", ErrMalformedResponse, block.Header.Hash)
	}
	copy(hash[:], raw)
	return hash, nil
}

// SendTransaction implements [NetworkAdapter] with send_tx.
func (a *nearAdapter) SendTransaction(ctx context.Context, net network.Name, tx models.SignedTransaction) (models.ExecutionOutcome, error) {
	rpc, err := a.rpc(net)
	if err != nil {
		return models.ExecutionOutcome{}, err
	}

	raw, err := tx.Serialize()
	if err != nil {
		return models.ExecutionOutcome{}, fmt.Errorf("serialize transaction: %w", err)
	}

	var outcome models.ExecutionOutcome
	err = rpc.call(ctx, "send_tx", map[string]any{
		"signed_tx_base64": base64.StdEncoding.EncodeToString(raw),
		"wait_until":       waitUntilExecOpt,
	}, &outcome)
	if err != nil {
		return models.ExecutionOutcome{}, fmt.Errorf("send transaction: %w", err)
	}
	return outcome, nil
}

type faucetRequest struct {
	NewAccountID        string `json:"newAccountId"`
	NewAccountPublicKey string `json:"newAccountPublicKey"`
}

// CreateAccountViaFaucet implements [NetworkAdapter]. It POSTs the new
// account id and public key to the faucet URL and decodes the execution
// outcome it answers with.
func (a *nearAdapter) CreateAccountViaFaucet(ctx context.Context, net network.Name, id models.AccountID, pk models.PublicKey) (models.ExecutionOutcome, error) {
	ep, ok := a.networks[net]
	if !ok || ep.faucet == "" {
		return models.ExecutionOutcome{}, fmt.Errorf("%w: %s", ErrFaucetUnavailable, net)
	}

	a.logger.Debug().
		Str("endpoint", ep.faucet).
		Str("account_id", id.String()).
		Msg("faucet request")

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(faucetRequest{
			NewAccountID:        id.String(),
			NewAccountPublicKey: pk.String(),
		}).
		Post(ep.faucet)
	if err != nil {
		return models.ExecutionOutcome{}, fmt.Errorf("%w: faucet request: %v", ErrUnavailable, err)
	}
	if err = mapFaucetError(resp); err != nil {
		return models.ExecutionOutcome{}, err
	}

	var outcome models.ExecutionOutcome
	if err = json.Unmarshal(resp.Body(), &outcome); err != nil {
		return models.ExecutionOutcome{}, fmt.Errorf("%w: decode faucet response: %v", ErrMalformedResponse, err)
	}
	return outcome, nil
}
