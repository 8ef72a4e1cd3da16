package cluster

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/client"
	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/internal/wallet"
	"go.uber.org/zap"
)

// Participant is one Hydra node of the cluster together with the keys that
// fund its commits.
type Participant struct {
	cfg     ParticipantConfig
	head    HeadAPI
	l1      L1API
	wallets WalletLoader
	logger  *zap.Logger

	mu      sync.Mutex
	wallet  Wallet
	nodeKey ed25519.PublicKey
}

// NewParticipant binds a node endpoint, its L1 view and a wallet loader.
func NewParticipant(cfg ParticipantConfig, head HeadAPI, l1 L1API, wallets WalletLoader, logger *zap.Logger) *Participant {
	return &Participant{
		cfg:     cfg,
		head:    head,
		l1:      l1,
		wallets: wallets,
		logger:  logger.With(zap.String("endpoint", head.URL())),
	}
}

func (p *Participant) URL() string {
	return p.head.URL()
}

func (p *Participant) Config() ParticipantConfig {
	return p.cfg
}

func (p *Participant) Head() HeadAPI {
	return p.head
}

func (p *Participant) L1() L1API {
	return p.l1
}

// ChainStatus is the participant's view of L1.
type ChainStatus struct {
	Tip         client.ChainPoint
	SystemStart time.Time
}

// ChainStatus reads the L1 tip and the chain start time.
func (p *Participant) ChainStatus(ctx context.Context) (ChainStatus, error) {
	tip, err := p.l1.QueryChainTip(ctx)
	if err != nil {
		return ChainStatus{}, fmt.Errorf("%s: query chain tip: %w", p.URL(), err)
	}
	genesis, err := p.l1.QuerySystemStart(ctx)
	if err != nil {
		return ChainStatus{}, fmt.Errorf("%s: query system start: %w", p.URL(), err)
	}
	return ChainStatus{Tip: *tip, SystemStart: genesis.SystemStart}, nil
}

// Wallet loads the funding wallet on first use.
func (p *Participant) Wallet(ctx context.Context) (Wallet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wallet != nil {
		return p.wallet, nil
	}
	w, err := p.wallets.LoadWallet(ctx, p.cfg.FundKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%s: load fund key: %w", p.URL(), err)
	}
	p.wallet = w
	return w, nil
}

// NodeKey returns the verification key of the node's Hydra signing key.
func (p *Participant) NodeKey() (ed25519.PublicKey, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.nodeKey != nil {
		return p.nodeKey, nil
	}
	if p.cfg.NodeKeyFile == "" {
		return nil, fmt.Errorf("%s: no node key configured", p.URL())
	}
	key, err := wallet.LoadSigningKey(p.cfg.NodeKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%s: load node key: %w", p.URL(), err)
	}
	p.nodeKey = key.Public().(ed25519.PublicKey)
	return p.nodeKey, nil
}

// Balance sums the wallet's L1 UTxOs.
func (p *Participant) Balance(ctx context.Context) (hydra.Value, error) {
	w, err := p.Wallet(ctx)
	if err != nil {
		return hydra.Value{}, err
	}
	return w.Balance(ctx)
}

// HasFunds reports whether the wallet balance exceeds minAmount. Failures
// count as no funds.
func (p *Participant) HasFunds(ctx context.Context, minAmount hydra.Value) bool {
	balance, err := p.Balance(ctx)
	if err != nil {
		p.logger.Warn("funds check failed", zap.Error(err))
		return false
	}
	return balance.GreaterThan(minAmount)
}

// HasCommitted reports whether the wallet already owns a UTxO committed to
// the head.
func (p *Participant) HasCommitted(ctx context.Context, head *hydra.Head) (bool, error) {
	w, err := p.Wallet(ctx)
	if err != nil {
		return false, err
	}
	return hydra.HasCommitted(head, w.Address()), nil
}

// CommitFunds commits the first wallet UTxO worth more than threshold and
// waits for the commit to consume it on L1.
func (p *Participant) CommitFunds(ctx context.Context, threshold hydra.Value, timeouts Timeouts) (*client.TxResult, error) {
	w, err := p.Wallet(ctx)
	if err != nil {
		return nil, err
	}
	address := w.Address()

	utxos, err := p.l1.QueryUTxOByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%s: query l1 utxos: %w", p.URL(), err)
	}
	selected, ok := selectUTxO(utxos, threshold)
	if !ok {
		return nil, &hydra.InsufficientFundsError{
			Endpoint:  p.URL(),
			Address:   address,
			Threshold: threshold,
			UTxOs:     len(utxos),
		}
	}

	logger := p.logger.With(zap.Stringer("txin", selected.In), zap.Stringer("value", selected.Out.Value))
	logger.Info("committing utxo")

	built, err := p.head.Commit(ctx, []hydra.TxIn{selected.In}, false)
	if err != nil {
		return nil, fmt.Errorf("%s: build commit: %w", p.URL(), err)
	}
	signed, err := w.SignTx(ctx, built.CBORHex)
	if err != nil {
		return nil, fmt.Errorf("%s: sign commit: %w", p.URL(), err)
	}
	submitted, err := p.l1.SubmitTx(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("%s: submit commit: %w", p.URL(), err)
	}
	if _, err := p.l1.WaitForUtxoConsumption(ctx, selected.In, timeouts.Commit, client.WithLogPoll()); err != nil {
		return nil, err
	}

	logger.Info("commit confirmed on l1", zap.String("tx", submitted.Hash))
	submitted.CBORHex = signed
	return submitted, nil
}

const conditionDepositSettled = "deposit settled"

// Commit locks funds into the head in whichever phase accepts them: a regular
// commit while Initial, an incremental deposit while Open.
func (p *Participant) Commit(ctx context.Context, threshold hydra.Value, timeouts Timeouts) (*client.TxResult, error) {
	head, err := p.head.QueryHead(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: query head: %w", p.URL(), err)
	}
	switch head.Tag {
	case hydra.StateInitial:
		return p.CommitFunds(ctx, threshold, timeouts)
	case hydra.StateOpen:
		return p.Deposit(ctx, head, threshold, timeouts)
	default:
		return nil, &hydra.StateError{Endpoint: p.URL(), Operation: "commit", Expected: hydra.StateOpen, Actual: head.Tag}
	}
}

// Deposit commits into an open head. After L1 consumption it waits until no
// deposit is pending and the snapshot holds more UTxOs than it did in head.
func (p *Participant) Deposit(ctx context.Context, head *hydra.Head, threshold hydra.Value, timeouts Timeouts) (*client.TxResult, error) {
	baseline := hydra.SnapshotUTxOCount(head)
	res, err := p.CommitFunds(ctx, threshold, timeouts)
	if err != nil {
		return nil, err
	}
	_, err = p.head.WaitUntil(ctx, conditionDepositSettled, func(h *hydra.Head) bool {
		return h.Tag == hydra.StateOpen && !hydra.HasPendingDeposits(h) && hydra.SnapshotUTxOCount(h) > baseline
	}, timeouts.Commit)
	if err != nil {
		return nil, err
	}
	p.logger.Info("deposit included in snapshot", zap.String("tx", res.Hash), zap.Int("baseline_utxos", baseline))
	return res, nil
}

// Decommit releases ins from an open head back to L1 and waits until the
// head has no decommit in flight.
func (p *Participant) Decommit(ctx context.Context, ins []hydra.TxIn, timeouts Timeouts) error {
	w, err := p.Wallet(ctx)
	if err != nil {
		return err
	}
	built, err := p.head.BuildDecommit(ctx, ins)
	if err != nil {
		return fmt.Errorf("%s: build decommit: %w", p.URL(), err)
	}
	signed, err := w.SignTx(ctx, built.CBORHex)
	if err != nil {
		return fmt.Errorf("%s: sign decommit: %w", p.URL(), err)
	}
	if _, err := p.head.Decommit(ctx, signed, true); err != nil {
		return fmt.Errorf("%s: decommit: %w", p.URL(), err)
	}
	_, err = p.head.WaitUntil(ctx, "decommit settled", func(h *hydra.Head) bool {
		return h.Tag == hydra.StateOpen && !hydra.HasPendingDecommit(h)
	}, timeouts.Decommit)
	return err
}

func selectUTxO(utxos hydra.UTxOList, threshold hydra.Value) (hydra.UTxO, bool) {
	for _, u := range utxos {
		if u.Out.Value.GreaterThan(threshold) {
			return u, true
		}
	}
	return hydra.UTxO{}, false
}
