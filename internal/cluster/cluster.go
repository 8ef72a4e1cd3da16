// Package cluster drives a set of Hydra nodes sharing one head through the
// head lifecycle.
package cluster

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/pkg/workerpool"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

const defaultCheckWorkers = 4

var ErrNoParticipants = errors.New("cluster has no participants")

// ParticipantFactory turns a participant entry of the config into a live
// participant.
type ParticipantFactory interface {
	NewParticipant(cfg ParticipantConfig) (*Participant, error)
}

// Cluster is an ordered set of participants of one head. Participant 0 is
// the reference view of the head state; VerifyConsensus checks the others
// agree with it.
type Cluster struct {
	factory       ParticipantFactory
	engine        *Engine
	metrics       Metrics
	maxIterations int
	logger        *zap.Logger

	mu           sync.RWMutex
	participants []*Participant
}

// New builds a cluster from cfg, creating one participant per entry.
func New(cfg Config, factory ParticipantFactory, metrics Metrics, logger *zap.Logger) (*Cluster, error) {
	cfg = cfg.WithDefaults()
	threshold, err := cfg.Threshold()
	if err != nil {
		return nil, fmt.Errorf("commit threshold: %w", err)
	}

	logger = logger.Named("cluster")
	c := &Cluster{
		factory:       factory,
		engine:        NewEngine(cfg.Timeouts, threshold, metrics, logger),
		metrics:       metrics,
		maxIterations: cfg.MaxResetIterations,
		logger:        logger,
	}
	for _, p := range cfg.Participants {
		if _, err := c.AddParticipant(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Cluster) Engine() *Engine {
	return c.engine
}

// AddParticipant appends a participant built from cfg.
func (c *Cluster) AddParticipant(cfg ParticipantConfig) (*Participant, error) {
	p, err := c.factory.NewParticipant(cfg)
	if err != nil {
		return nil, fmt.Errorf("participant %s: %w", cfg.HTTPURL, err)
	}
	c.mu.Lock()
	c.participants = append(c.participants, p)
	c.mu.Unlock()
	return p, nil
}

// Participant returns the i-th participant.
func (c *Cluster) Participant(i int) (*Participant, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i < 0 || i >= len(c.participants) {
		return nil, fmt.Errorf("participant %d out of range [0, %d)", i, len(c.participants))
	}
	return c.participants[i], nil
}

// Participants returns a copy of the participant list.
func (c *Cluster) Participants() []*Participant {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Participant, len(c.participants))
	copy(out, c.participants)
	return out
}

// Clear drops every participant.
func (c *Cluster) Clear() {
	c.mu.Lock()
	c.participants = nil
	c.mu.Unlock()
}

func (c *Cluster) lead() (*Participant, []*Participant, error) {
	participants := c.Participants()
	if len(participants) == 0 {
		return nil, nil, ErrNoParticipants
	}
	return participants[0], participants, nil
}

// CheckAllHaveFunds reports whether every participant holds more than
// minAmount on L1. It stops at the first participant without funds.
func (c *Cluster) CheckAllHaveFunds(ctx context.Context, minAmount hydra.Value) bool {
	for _, p := range c.Participants() {
		if !p.HasFunds(ctx, minAmount) {
			c.logger.Warn("participant lacks funds",
				zap.String("participant", p.URL()), zap.Stringer("min", minAmount))
			return false
		}
	}
	return true
}

// MissingFunds checks all participants concurrently and returns one error per
// participant whose balance does not exceed minAmount.
func (c *Cluster) MissingFunds(ctx context.Context, minAmount hydra.Value) error {
	participants := c.Participants()
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	results := workerpool.Map(ctx, defaultCheckWorkers, participants, func(ctx context.Context, _ int, p *Participant) (hydra.Value, error) {
		return p.Balance(ctx)
	})

	var result *multierror.Error
	for i, r := range results {
		p := participants[i]
		switch {
		case r.Err != nil:
			result = multierror.Append(result, fmt.Errorf("%s: balance: %w", p.URL(), r.Err))
		case !r.Value.GreaterThan(minAmount):
			result = multierror.Append(result, fmt.Errorf("%s: balance %s does not exceed %s", p.URL(), r.Value, minAmount))
		}
	}
	return result.ErrorOrNil()
}

// VerifyConsensus queries every participant and fails unless all of them
// report the same state as participant 0.
func (c *Cluster) VerifyConsensus(ctx context.Context) (hydra.HeadState, error) {
	_, participants, err := c.lead()
	if err != nil {
		return "", err
	}
	results := workerpool.Map(ctx, defaultCheckWorkers, participants, func(ctx context.Context, _ int, p *Participant) (*hydra.Head, error) {
		return p.Head().QueryHead(ctx)
	})
	if results[0].Err != nil {
		return "", fmt.Errorf("%s: query head: %w", participants[0].URL(), results[0].Err)
	}
	reference := results[0].Value.State()

	var result *multierror.Error
	for i, r := range results[1:] {
		p := participants[i+1]
		if r.Err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: query head: %w", p.URL(), r.Err))
			continue
		}
		if observed := r.Value.State(); observed != reference {
			result = multierror.Append(result, fmt.Errorf("%s: reports %s, %s reports %s",
				p.URL(), observed, participants[0].URL(), reference))
		}
	}
	return reference, result.ErrorOrNil()
}
