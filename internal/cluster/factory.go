package cluster

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/hydractl/internal/client"
	"github.com/goodnatureofminers/hydractl/internal/metrics"
	"github.com/goodnatureofminers/hydractl/internal/transport"
	"github.com/goodnatureofminers/hydractl/internal/wallet"
	"go.uber.org/zap"
)

// HTTPFactory builds participants talking to Hydra nodes over HTTP. The L1
// endpoint defaults to the cluster l1Url and then to the node itself.
type HTTPFactory struct {
	cfg        Config
	network    wallet.Network
	httpClient *http.Client
	opts       []client.Option
	logger     *zap.Logger
}

// NewHTTPFactory constructs an HTTPFactory. httpClient may be nil.
func NewHTTPFactory(cfg Config, httpClient *http.Client, logger *zap.Logger, opts ...client.Option) (*HTTPFactory, error) {
	network, err := wallet.ParseNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}
	return &HTTPFactory{
		cfg:        cfg,
		network:    network,
		httpClient: httpClient,
		opts:       append([]client.Option{client.WithIntervals(cfg.PollInterval, cfg.UTxOPollInterval)}, opts...),
		logger:     logger,
	}, nil
}

func (f *HTTPFactory) NewParticipant(pc ParticipantConfig) (*Participant, error) {
	headAPI, err := f.transport("hydra", pc.HTTPURL)
	if err != nil {
		return nil, err
	}

	l1URL := pc.L1URL
	if l1URL == "" {
		l1URL = f.cfg.L1URL
	}
	if l1URL == "" {
		l1URL = pc.HTTPURL
	}
	l1API, err := f.transport("l1", l1URL)
	if err != nil {
		return nil, err
	}

	head := client.NewHeadClient(headAPI, metrics.NewWait(headAPI.BaseURL()), f.logger, f.opts...)
	l1 := client.NewL1Client(l1API, metrics.NewWait(l1API.BaseURL()), f.logger, f.opts...)
	wallets := fileWallets{network: f.network, utxos: l1}
	return NewParticipant(pc, head, l1, wallets, f.logger), nil
}

func (f *HTTPFactory) transport(api, baseURL string) (*transport.Client, error) {
	c, err := transport.New(transport.Config{
		BaseURL: baseURL,
		APIKey:  f.cfg.APIKey,
		Timeout: f.cfg.RequestTimeout,
		Retry:   f.cfg.Retry,
		RPS:     f.cfg.RPS,
	}, f.httpClient, metrics.NewEndpoint(api, baseURL), f.logger)
	if err != nil {
		return nil, fmt.Errorf("%s endpoint: %w", api, err)
	}
	return c, nil
}

// fileWallets loads cardano-cli signing key files.
type fileWallets struct {
	network wallet.Network
	utxos   wallet.UTxOSource
}

func (l fileWallets) LoadWallet(_ context.Context, keyFile string) (Wallet, error) {
	w, err := wallet.Load(keyFile, l.network, l.utxos)
	if err != nil {
		return nil, err
	}
	return w, nil
}
