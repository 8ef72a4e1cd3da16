package cluster

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClosedOptions modifies ResetToClosed.
type ClosedOptions struct {
	// Contested fans out a head that is already ready to fan out and closes
	// it again from a fresh open head.
	Contested bool
	// FanoutReady stops once the node reports it may fan out, without
	// fanning out.
	FanoutReady bool
}

// Reset drives the head to target, reading the state from participant 0,
// and verifies the state reached. A head already at target is left alone;
// Idle and Initial count as the same target.
func (c *Cluster) Reset(ctx context.Context, target hydra.HeadState) (err error) {
	lead, _, err := c.lead()
	if err != nil {
		return err
	}
	if c.metrics != nil {
		defer func() { c.metrics.ObserveReset(string(target), err) }()
	}
	ctx, logger := c.run(ctx, "reset", zap.Stringer("target", target))

	head, err := c.query(ctx, lead)
	if err != nil {
		return err
	}
	if hydra.Equivalent(target, head.Tag) || (target == hydra.StateFanoutReady && hydra.IsReadyToFanout(head)) {
		logger.Info("cluster already in target state")
		return nil
	}

	switch target {
	case hydra.StateIdle, hydra.StateInitial:
		err = c.ResetToInitial(ctx)
	case hydra.StateOpen:
		err = c.ResetToOpen(ctx)
	case hydra.StateClosed:
		err = c.ResetToClosed(ctx, nil)
	case hydra.StateFanoutReady:
		err = c.ResetToClosed(ctx, &ClosedOptions{FanoutReady: true})
	default:
		return fmt.Errorf("reset to %s is not supported", target)
	}
	if err != nil {
		return err
	}

	head, err = c.query(ctx, lead)
	if err != nil {
		return err
	}
	if !head.Matches(target) && !hydra.Equivalent(target, head.Tag) {
		return &hydra.StateError{
			Endpoint:  lead.URL(),
			Operation: "reset",
			Expected:  target,
			Actual:    head.State(),
		}
	}
	logger.Info("cluster reset complete", zap.Stringer("state", head.State()))
	return nil
}

// ResetToInitial brings the head to Initial, closing and fanning out an
// active head on the way.
func (c *Cluster) ResetToInitial(ctx context.Context) error {
	lead, _, err := c.lead()
	if err != nil {
		return err
	}
	head, err := c.query(ctx, lead)
	if err != nil {
		return err
	}

	h := lead.Head()
	switch head.Tag {
	case hydra.StateInitial:
		return nil
	case hydra.StateIdle, hydra.StateFinal:
		return c.engine.IdleToInitial(ctx, h)
	case hydra.StateOpen:
		if err := c.engine.OpenToClosed(ctx, h); err != nil {
			return err
		}
		return c.fanout(ctx, h)
	case hydra.StateClosed:
		return c.fanout(ctx, h)
	default:
		return &hydra.StateError{Endpoint: lead.URL(), Operation: "reset to Initial", Actual: head.Tag}
	}
}

// ResetToOpen brings the head to Open. A closed head is fanned out and the
// commit cycle runs again.
func (c *Cluster) ResetToOpen(ctx context.Context) error {
	lead, participants, err := c.lead()
	if err != nil {
		return err
	}
	head, err := c.query(ctx, lead)
	if err != nil {
		return err
	}
	if head.Tag == hydra.StateOpen {
		return nil
	}

	h := lead.Head()
	switch head.Tag {
	case hydra.StateClosed:
		if err := c.fanout(ctx, h); err != nil {
			return err
		}
	case hydra.StateIdle, hydra.StateFinal:
		if err := c.engine.IdleToInitial(ctx, h); err != nil {
			return err
		}
	case hydra.StateInitial:
	default:
		return &hydra.StateError{Endpoint: lead.URL(), Operation: "reset to Open", Actual: head.Tag}
	}

	head, err = c.query(ctx, lead)
	if err != nil {
		return err
	}
	switch head.Tag {
	case hydra.StateOpen:
		return nil
	case hydra.StateInitial:
		return c.engine.InitialToOpen(ctx, participants)
	default:
		return &hydra.StateError{
			Endpoint:  lead.URL(),
			Operation: "reset to Open",
			Expected:  hydra.StateInitial,
			Actual:    head.Tag,
		}
	}
}

// ResetToClosed brings the head to Closed. With nil opts a head that is
// already ready to fan out is cycled through fanout and a fresh open head
// so that it ends Closed but not yet ready. Each correction step re-reads
// the head; at most the configured number of steps run.
func (c *Cluster) ResetToClosed(ctx context.Context, opts *ClosedOptions) error {
	lead, _, err := c.lead()
	if err != nil {
		return err
	}
	h := lead.Head()

	for i := 0; i < c.maxIterations; i++ {
		head, err := c.query(ctx, lead)
		if err != nil {
			return err
		}

		switch head.Tag {
		case hydra.StateClosed:
			ready := hydra.IsReadyToFanout(head)
			switch {
			case opts != nil && opts.Contested && ready:
				c.logger.Info("flushing contested head")
				if err := c.engine.FanoutToInitial(ctx, h); err != nil {
					return err
				}
				opts = &ClosedOptions{Contested: true}
			case opts != nil && opts.FanoutReady:
				if ready {
					return nil
				}
				return c.engine.ClosedToFanoutReady(ctx, h)
			case (opts == nil || !opts.Contested) && ready:
				if err := c.engine.FanoutToInitial(ctx, h); err != nil {
					return err
				}
				if err := c.ResetToOpen(ctx); err != nil {
					return err
				}
			default:
				return nil
			}
		case hydra.StateOpen:
			if err := c.engine.OpenToClosed(ctx, h); err != nil {
				return err
			}
			if opts == nil {
				return nil
			}
		default:
			if err := c.ResetToOpen(ctx); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("%s: head did not settle in Closed after %d steps", lead.URL(), c.maxIterations)
}

func (c *Cluster) fanout(ctx context.Context, h HeadAPI) error {
	if err := c.engine.ClosedToFanoutReady(ctx, h); err != nil {
		return err
	}
	return c.engine.FanoutToInitial(ctx, h)
}

func (c *Cluster) query(ctx context.Context, p *Participant) (*hydra.Head, error) {
	head, err := p.Head().QueryHead(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: query head: %w", p.URL(), err)
	}
	return head, nil
}

type runKey struct{}

// run tags a reconciliation with an id so nested resets log under the same
// run.
func (c *Cluster) run(ctx context.Context, op string, fields ...zap.Field) (context.Context, *zap.Logger) {
	id, ok := ctx.Value(runKey{}).(string)
	if !ok {
		id = uuid.NewString()
		ctx = context.WithValue(ctx, runKey{}, id)
	}
	logger := c.logger.With(append([]zap.Field{zap.String("run_id", id), zap.String("op", op)}, fields...)...)
	logger.Info("reconciliation started")
	return ctx, logger
}
