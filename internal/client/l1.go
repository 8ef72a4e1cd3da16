package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/internal/txcbor"
	"go.uber.org/zap"
)

// L1Client reads and submits to the base chain through a Kuber API.
type L1Client struct {
	api Requester
	poller
}

// NewL1Client constructs an L1Client over api.
func NewL1Client(api Requester, metrics WaitMetrics, logger *zap.Logger, opts ...Option) *L1Client {
	endpoint := api.BaseURL()
	return &L1Client{
		api:    api,
		poller: newPoller(endpoint, metrics, logger.Named("l1").With(zap.String("endpoint", endpoint)), opts),
	}
}

// URL is the Kuber base URL.
func (c *L1Client) URL() string {
	return c.endpoint
}

// QueryUTxOByAddress lists the chain UTxOs at address.
func (c *L1Client) QueryUTxOByAddress(ctx context.Context, address string) (hydra.UTxOList, error) {
	var utxos hydra.UTxOList
	if err := c.api.Get(ctx, "l1_query_utxo_by_address", "/api/v3/utxo", url.Values{"address": {address}}, &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// QueryUTxOByTxIn looks up a single chain UTxO.
func (c *L1Client) QueryUTxOByTxIn(ctx context.Context, in hydra.TxIn) (hydra.UTxOList, error) {
	var utxos hydra.UTxOList
	if err := c.api.Get(ctx, "l1_query_utxo_by_txin", "/api/v3/utxo", url.Values{"txin": {in.String()}}, &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// QueryProtocolParameters returns the chain protocol parameters undecoded.
func (c *L1Client) QueryProtocolParameters(ctx context.Context) (json.RawMessage, error) {
	var params json.RawMessage
	if err := c.api.Get(ctx, "l1_query_protocol_parameters", "/api/v3/protocol-params", nil, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// GenesisParams carries the fields of the genesis parameters in use.
type GenesisParams struct {
	SystemStart time.Time       `json:"systemStart"`
	Raw         json.RawMessage `json:"-"`
}

// QuerySystemStart returns the chain start time.
func (c *L1Client) QuerySystemStart(ctx context.Context) (*GenesisParams, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "l1_query_system_start", "/api/v3/genesis-params", nil, &raw); err != nil {
		return nil, err
	}
	var params GenesisParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("decode genesis params: %w", err)
	}
	params.Raw = raw
	return &params, nil
}

// ChainPoint is the chain tip.
type ChainPoint struct {
	Slot uint64 `json:"slot"`
	Hash string `json:"hash"`
}

// QueryChainTip returns the current tip.
func (c *L1Client) QueryChainTip(ctx context.Context) (*ChainPoint, error) {
	var point ChainPoint
	if err := c.api.Get(ctx, "l1_query_chain_tip", "/api/v3/chain-point", nil, &point); err != nil {
		return nil, err
	}
	return &point, nil
}

// BuildTx asks Kuber to build, and optionally submit, a transaction.
func (c *L1Client) BuildTx(ctx context.Context, request any, submit bool) (*TxResult, error) {
	var res TxResult
	if err := c.api.Post(ctx, "l1_build_tx", "/api/v1/tx", boolQuery("submit", submit), request, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type submitRequest struct {
	Tx txcbor.Envelope `json:"tx"`
}

// SubmitTx submits a signed transaction to the chain. A rejected
// transaction surfaces as *transport.L1TxSubmitError.
func (c *L1Client) SubmitTx(ctx context.Context, cborHex string) (*TxResult, error) {
	env, err := txcbor.NewEnvelope(cborHex)
	if err != nil {
		return nil, fmt.Errorf("l1 submit tx: %w", err)
	}
	var res TxResult
	if err := c.api.Post(ctx, "l1_submit_tx", "/api/v1/tx/submit", nil, submitRequest{Tx: env}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WaitForUtxoConsumption polls the chain until in is spent.
func (c *L1Client) WaitForUtxoConsumption(ctx context.Context, in hydra.TxIn, timeout time.Duration, opts ...WaitOption) (time.Duration, error) {
	return c.utxoGone(ctx, in, timeout, opts, c.QueryUTxOByTxIn)
}
