package cluster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/client"
	"github.com/goodnatureofminers/hydractl/internal/hydra"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HeadAPI is the part of a Hydra node a participant drives.
	HeadAPI interface {
		URL() string
		QueryHead(ctx context.Context) (*hydra.Head, error)
		Initialize(ctx context.Context, wait bool) (json.RawMessage, error)
		Close(ctx context.Context, wait bool) (json.RawMessage, error)
		Fanout(ctx context.Context, wait bool) (json.RawMessage, error)
		Commit(ctx context.Context, ins []hydra.TxIn, submit bool) (*client.TxResult, error)
		BuildDecommit(ctx context.Context, ins []hydra.TxIn) (*client.TxResult, error)
		Decommit(ctx context.Context, signedCBORHex string, wait bool) (json.RawMessage, error)
		WaitForHeadState(ctx context.Context, expected hydra.HeadState, timeout time.Duration, opts ...client.WaitOption) (time.Duration, error)
		WaitUntil(ctx context.Context, condition string, predicate client.HeadPredicate, timeout time.Duration, opts ...client.WaitOption) (time.Duration, error)
	}
	// L1API is the base chain as seen by a participant.
	L1API interface {
		QueryUTxOByAddress(ctx context.Context, address string) (hydra.UTxOList, error)
		QueryChainTip(ctx context.Context) (*client.ChainPoint, error)
		QuerySystemStart(ctx context.Context) (*client.GenesisParams, error)
		SubmitTx(ctx context.Context, cborHex string) (*client.TxResult, error)
		WaitForUtxoConsumption(ctx context.Context, in hydra.TxIn, timeout time.Duration, opts ...client.WaitOption) (time.Duration, error)
	}
	// Wallet signs for and owns a participant's funds.
	Wallet interface {
		Address() string
		SignTx(ctx context.Context, cborHex string) (string, error)
		Balance(ctx context.Context) (hydra.Value, error)
	}
	// WalletLoader builds a wallet from a signing key file.
	WalletLoader interface {
		LoadWallet(ctx context.Context, keyFile string) (Wallet, error)
	}
	// Metrics records transitions and reconciliations.
	Metrics interface {
		ObserveTransition(edge string, err error, started time.Time)
		ObserveReset(target string, err error)
	}
)
