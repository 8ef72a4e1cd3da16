// Package client talks to a Kuber-Hydra node: head queries, lifecycle
// commands, transaction submission and the polling waits built on them.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/internal/txcbor"
	"go.uber.org/zap"
)

// HeadPredicate inspects a full head query response.
type HeadPredicate func(head *hydra.Head) bool

// TxResult is a transaction built or submitted by a node.
type TxResult struct {
	Hash        string `json:"hash,omitempty"`
	CBORHex     string `json:"cborHex"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// TxID returns Hash, deriving it from the body when the node left it out.
func (r *TxResult) TxID() string {
	if r == nil {
		return ""
	}
	if r.Hash != "" {
		return r.Hash
	}
	tx, err := txcbor.DecodeHex(r.CBORHex)
	if err != nil {
		return ""
	}
	return tx.ID()
}

type utxoRefs struct {
	UTxOs []string `json:"utxos"`
}

func refs(ins []hydra.TxIn) utxoRefs {
	out := utxoRefs{UTxOs: make([]string, 0, len(ins))}
	for _, in := range ins {
		out.UTxOs = append(out.UTxOs, in.String())
	}
	return out
}

func boolQuery(key string, v bool) url.Values {
	return url.Values{key: {strconv.FormatBool(v)}}
}

// HeadClient drives the head of one participant's node.
type HeadClient struct {
	api Requester
	poller
}

// NewHeadClient constructs a HeadClient over api.
func NewHeadClient(api Requester, metrics WaitMetrics, logger *zap.Logger, opts ...Option) *HeadClient {
	endpoint := api.BaseURL()
	return &HeadClient{
		api:    api,
		poller: newPoller(endpoint, metrics, logger.Named("head").With(zap.String("endpoint", endpoint)), opts),
	}
}

// URL is the node base URL.
func (c *HeadClient) URL() string {
	return c.endpoint
}

// QueryHead returns the full head state.
func (c *HeadClient) QueryHead(ctx context.Context) (*hydra.Head, error) {
	var head hydra.Head
	if err := c.api.Get(ctx, "query_head", "/hydra/query/head", nil, &head); err != nil {
		return nil, err
	}
	return &head, nil
}

// QueryState returns the legacy state string.
func (c *HeadClient) QueryState(ctx context.Context) (hydra.HeadState, error) {
	var resp struct {
		State string `json:"state"`
	}
	if err := c.api.Get(ctx, "query_state", "/hydra/query/state", nil, &resp); err != nil {
		return "", err
	}
	return hydra.ParseHeadState(resp.State)
}

// QueryUTxO lists the whole head UTxO set.
func (c *HeadClient) QueryUTxO(ctx context.Context) (hydra.UTxOList, error) {
	return c.queryUTxO(ctx, "query_utxo", nil)
}

// QueryUTxOByAddress lists the head UTxOs at address.
func (c *HeadClient) QueryUTxOByAddress(ctx context.Context, address string) (hydra.UTxOList, error) {
	return c.queryUTxO(ctx, "query_utxo_by_address", url.Values{"address": {address}})
}

// QueryUTxOByTxIn looks up a single head UTxO.
func (c *HeadClient) QueryUTxOByTxIn(ctx context.Context, in hydra.TxIn) (hydra.UTxOList, error) {
	return c.queryUTxO(ctx, "query_utxo_by_txin", url.Values{"txin": {in.String()}})
}

func (c *HeadClient) queryUTxO(ctx context.Context, operation string, query url.Values) (hydra.UTxOList, error) {
	var utxos hydra.UTxOList
	if err := c.api.Get(ctx, operation, "/hydra/query/utxo", query, &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// QueryCommits lists pending incremental commits.
func (c *HeadClient) QueryCommits(ctx context.Context) ([]json.RawMessage, error) {
	var commits []json.RawMessage
	if err := c.api.Get(ctx, "query_commits", "/hydra/query/commits", nil, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// QueryProtocolParameters returns the head ledger parameters undecoded.
func (c *HeadClient) QueryProtocolParameters(ctx context.Context) (json.RawMessage, error) {
	var params json.RawMessage
	if err := c.api.Get(ctx, "query_protocol_parameters", "/hydra/query/protocol-parameters", nil, &params); err != nil {
		return nil, err
	}
	return params, nil
}

func (c *HeadClient) command(ctx context.Context, name string, wait bool) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.api.Post(ctx, name, "/hydra/"+name, boolQuery("wait", wait), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Initialize posts Init. With wait the node answers once the head is initializing on chain.
func (c *HeadClient) Initialize(ctx context.Context, wait bool) (json.RawMessage, error) {
	return c.command(ctx, "init", wait)
}

// Close posts Close.
func (c *HeadClient) Close(ctx context.Context, wait bool) (json.RawMessage, error) {
	return c.command(ctx, "close", wait)
}

// Fanout posts Fanout.
func (c *HeadClient) Fanout(ctx context.Context, wait bool) (json.RawMessage, error) {
	return c.command(ctx, "fanout", wait)
}

// Abort posts Abort.
func (c *HeadClient) Abort(ctx context.Context, wait bool) (json.RawMessage, error) {
	return c.command(ctx, "abort", wait)
}

// Contest posts Contest. A contest racing another party's contest fails
// with a *transport.L1TxSubmitError.
func (c *HeadClient) Contest(ctx context.Context, wait bool) (json.RawMessage, error) {
	return c.command(ctx, "contest", wait)
}

// Commit asks the node for a commit transaction locking ins. The result
// still needs the owner's signature unless submit is set.
func (c *HeadClient) Commit(ctx context.Context, ins []hydra.TxIn, submit bool) (*TxResult, error) {
	var res TxResult
	if err := c.api.Post(ctx, "commit", "/hydra/commit", boolQuery("submit", submit), refs(ins), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BuildDecommit returns an unsigned transaction releasing ins.
func (c *HeadClient) BuildDecommit(ctx context.Context, ins []hydra.TxIn) (*TxResult, error) {
	query := url.Values{}
	for _, in := range ins {
		query.Add("txin", in.String())
	}
	var res TxResult
	if err := c.api.Get(ctx, "build_decommit", "/hydra/decommit", query, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Decommit posts a signed decommit transaction.
func (c *HeadClient) Decommit(ctx context.Context, signedCBORHex string, wait bool) (json.RawMessage, error) {
	env, err := txcbor.NewEnvelope(signedCBORHex)
	if err != nil {
		return nil, fmt.Errorf("decommit: %w", err)
	}
	var resp json.RawMessage
	if err := c.api.Post(ctx, "decommit", "/hydra/decommit", boolQuery("wait", wait), env, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BuildTx asks the node to balance a Kuber transaction request inside the head.
func (c *HeadClient) BuildTx(ctx context.Context, request any, submit bool) (*TxResult, error) {
	var res TxResult
	if err := c.api.Post(ctx, "build_tx", "/hydra/tx", boolQuery("submit", submit), request, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitTx submits a transaction to the head.
func (c *HeadClient) SubmitTx(ctx context.Context, cborHex string) (*TxResult, error) {
	env, err := txcbor.NewEnvelope(cborHex)
	if err != nil {
		return nil, fmt.Errorf("submit tx: %w", err)
	}
	var res TxResult
	if err := c.api.Post(ctx, "submit_tx", "/hydra/submit", nil, env, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WaitForHeadState polls until the head reaches expected and returns the
// time it took. FanoutReady is matched through readyToFanoutSent.
func (c *HeadClient) WaitForHeadState(ctx context.Context, expected hydra.HeadState, timeout time.Duration, opts ...WaitOption) (time.Duration, error) {
	return c.poll(ctx, waitHeadState, "head state "+expected.String(), timeout, c.headInterval, opts,
		func(ctx context.Context) (bool, string, error) {
			head, err := c.QueryHead(ctx)
			if err != nil {
				return false, "", err
			}
			return head.Matches(expected), head.State().String(), nil
		})
}

// WaitUntil polls until predicate holds for the head.
func (c *HeadClient) WaitUntil(ctx context.Context, condition string, predicate HeadPredicate, timeout time.Duration, opts ...WaitOption) (time.Duration, error) {
	return c.poll(ctx, waitCondition, condition, timeout, c.headInterval, opts,
		func(ctx context.Context) (bool, string, error) {
			head, err := c.QueryHead(ctx)
			if err != nil {
				return false, "", err
			}
			return predicate(head), head.State().String(), nil
		})
}

// WaitForUtxoConsumption polls the head until in is spent.
func (c *HeadClient) WaitForUtxoConsumption(ctx context.Context, in hydra.TxIn, timeout time.Duration, opts ...WaitOption) (time.Duration, error) {
	return c.utxoGone(ctx, in, timeout, opts, c.QueryUTxOByTxIn)
}
