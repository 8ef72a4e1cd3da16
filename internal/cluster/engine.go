package cluster

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/client"
	"github.com/goodnatureofminers/hydractl/internal/clock"
	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"go.uber.org/zap"
)

const conditionReadyToFanout = "ready to fanout"

// Engine executes the single-hop edges of the head lifecycle.
type Engine struct {
	timeouts  Timeouts
	threshold hydra.Value
	now       clock.NowFunc
	metrics   Metrics
	logger    *zap.Logger
}

// NewEngine constructs an Engine. A nil metrics disables instrumentation.
func NewEngine(timeouts Timeouts, threshold hydra.Value, metrics Metrics, logger *zap.Logger) *Engine {
	return &Engine{
		timeouts:  timeouts.withDefaults(),
		threshold: threshold,
		now:       time.Now,
		metrics:   metrics,
		logger:    logger.Named("engine"),
	}
}

// Timeouts returns the effective timeouts.
func (e *Engine) Timeouts() Timeouts {
	return e.timeouts
}

// Threshold is the value a UTxO must exceed to be committed.
func (e *Engine) Threshold() hydra.Value {
	return e.threshold
}

func (e *Engine) edge(ctx context.Context, from, to hydra.HeadState, endpoint string, fn func(ctx context.Context, logger *zap.Logger) error) (err error) {
	name := string(from) + "->" + string(to)
	started := e.now()
	logger := e.logger.With(zap.String("endpoint", endpoint), zap.Stringer("from", from), zap.Stringer("to", to))
	if e.metrics != nil {
		defer func() { e.metrics.ObserveTransition(name, err, started) }()
	}

	logger.Info("transition started")
	if err = fn(ctx, logger); err != nil {
		logger.Error("transition failed", zap.Error(err))
		return err
	}
	logger.Info("transition complete", zap.Duration("elapsed", e.now().Sub(started)))
	return nil
}

// IdleToInitial initializes the head.
func (e *Engine) IdleToInitial(ctx context.Context, head HeadAPI) error {
	return e.edge(ctx, hydra.StateIdle, hydra.StateInitial, head.URL(), func(ctx context.Context, _ *zap.Logger) error {
		if _, err := head.Initialize(ctx, true); err != nil {
			return fmt.Errorf("%s: init: %w", head.URL(), err)
		}
		_, err := head.WaitForHeadState(ctx, hydra.StateInitial, e.timeouts.Initialize)
		return err
	})
}

// InitialToOpen commits funds for every participant that has not committed
// yet, one after another, then waits for the head to open on the first
// participant.
func (e *Engine) InitialToOpen(ctx context.Context, participants []*Participant) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	lead := participants[0].Head()
	return e.edge(ctx, hydra.StateInitial, hydra.StateOpen, lead.URL(), func(ctx context.Context, logger *zap.Logger) error {
		for _, p := range participants {
			head, err := p.Head().QueryHead(ctx)
			if err != nil {
				return fmt.Errorf("%s: query head: %w", p.URL(), err)
			}
			if head.Tag != hydra.StateInitial {
				logger.Info("head left Initial before all commits", zap.Stringer("state", head.Tag))
				break
			}
			committed, err := p.HasCommitted(ctx, head)
			if err != nil {
				return err
			}
			if committed {
				logger.Info("participant already committed", zap.String("participant", p.URL()))
				continue
			}
			if _, err := p.CommitFunds(ctx, e.threshold, e.timeouts); err != nil {
				return err
			}
		}
		_, err := lead.WaitForHeadState(ctx, hydra.StateOpen, e.timeouts.Open)
		return err
	})
}

// OpenToClosed closes the head.
func (e *Engine) OpenToClosed(ctx context.Context, head HeadAPI) error {
	return e.edge(ctx, hydra.StateOpen, hydra.StateClosed, head.URL(), func(ctx context.Context, _ *zap.Logger) error {
		if _, err := head.Close(ctx, true); err != nil {
			return fmt.Errorf("%s: close: %w", head.URL(), err)
		}
		_, err := head.WaitForHeadState(ctx, hydra.StateClosed, e.timeouts.Close, client.WithLogPoll())
		return err
	})
}

// ClosedToFanoutReady waits out the contestation period until the node
// reports it may fan out.
func (e *Engine) ClosedToFanoutReady(ctx context.Context, head HeadAPI) error {
	return e.edge(ctx, hydra.StateClosed, hydra.StateFanoutReady, head.URL(), func(ctx context.Context, logger *zap.Logger) error {
		current, err := head.QueryHead(ctx)
		if err != nil {
			return fmt.Errorf("%s: query head: %w", head.URL(), err)
		}
		if current.Tag != hydra.StateClosed {
			return &hydra.StateError{
				Endpoint:  head.URL(),
				Operation: "wait for fanout",
				Expected:  hydra.StateClosed,
				Actual:    current.Tag,
			}
		}
		if hydra.IsReadyToFanout(current) {
			return nil
		}
		deadline, ok := hydra.ContestationDeadline(current)
		if !ok {
			return fmt.Errorf("%s: closed head has no contestation deadline", head.URL())
		}
		target := deadline.Add(e.timeouts.FanoutGrace)
		wait := clock.Remaining(e.now(), target)
		logger.Info("waiting for contestation deadline",
			zap.Time("deadline", deadline), zap.Duration("wait", wait))

		_, err = head.WaitUntil(ctx, conditionReadyToFanout, hydra.IsReadyToFanout, wait)
		return err
	})
}

// FanoutToInitial fans the head out and waits for it to settle.
func (e *Engine) FanoutToInitial(ctx context.Context, head HeadAPI) error {
	return e.edge(ctx, hydra.StateFanoutReady, hydra.StateInitial, head.URL(), func(ctx context.Context, _ *zap.Logger) error {
		if _, err := head.Fanout(ctx, true); err != nil {
			return fmt.Errorf("%s: fanout: %w", head.URL(), err)
		}
		_, err := head.WaitForHeadState(ctx, hydra.StateInitial, e.timeouts.Fanout)
		return err
	})
}

// Step runs the single edge from -> to. Any other pair is a StateError.
func (e *Engine) Step(ctx context.Context, from, to hydra.HeadState, participants []*Participant) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	head := participants[0].Head()
	switch {
	case (from == hydra.StateIdle || from == hydra.StateFinal) && to == hydra.StateInitial:
		return e.IdleToInitial(ctx, head)
	case from == hydra.StateInitial && to == hydra.StateOpen:
		return e.InitialToOpen(ctx, participants)
	case from == hydra.StateOpen && to == hydra.StateClosed:
		return e.OpenToClosed(ctx, head)
	case from == hydra.StateClosed && to == hydra.StateFanoutReady:
		return e.ClosedToFanoutReady(ctx, head)
	case from == hydra.StateFanoutReady && (to == hydra.StateInitial || to == hydra.StateIdle):
		return e.FanoutToInitial(ctx, head)
	default:
		return &hydra.StateError{
			Endpoint:  head.URL(),
			Operation: fmt.Sprintf("step to %s", to),
			Actual:    from,
		}
	}
}
