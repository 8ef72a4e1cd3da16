package client

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/clock"
	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval     = 4 * time.Second
	DefaultUTxOPollInterval = 5 * time.Second

	waitHeadState       = "head_state"
	waitCondition       = "condition"
	waitUTxOConsumption = "utxo_consumption"
)

// WaitOption tunes a single wait.
type WaitOption func(*waitSettings)

type waitSettings struct {
	interval time.Duration
	logPoll  bool
}

// WithLogPoll logs every poll at Info instead of staying quiet until the end.
func WithLogPoll() WaitOption {
	return func(s *waitSettings) { s.logPoll = true }
}

// WithPollInterval overrides the client default for one wait.
func WithPollInterval(d time.Duration) WaitOption {
	return func(s *waitSettings) {
		if d > 0 {
			s.interval = d
		}
	}
}

// Option configures a client.
type Option func(*poller)

// WithIntervals sets the default poll intervals for head and UTxO waits.
func WithIntervals(head, utxo time.Duration) Option {
	return func(p *poller) {
		if head > 0 {
			p.headInterval = head
		}
		if utxo > 0 {
			p.utxoInterval = utxo
		}
	}
}

// WithClock replaces the time source and the sleep used between polls.
func WithClock(now clock.NowFunc, sleep clock.SleepFunc) Option {
	return func(p *poller) {
		if now != nil {
			p.now = now
		}
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

// check performs one poll. It reports whether the condition holds and a
// short description of what was observed.
type check func(ctx context.Context) (done bool, observed string, err error)

type poller struct {
	endpoint     string
	headInterval time.Duration
	utxoInterval time.Duration
	now          clock.NowFunc
	sleep        clock.SleepFunc
	metrics      WaitMetrics
	logger       *zap.Logger
}

func newPoller(endpoint string, metrics WaitMetrics, logger *zap.Logger, opts []Option) poller {
	p := poller{
		endpoint:     endpoint,
		headInterval: DefaultPollInterval,
		utxoInterval: DefaultUTxOPollInterval,
		now:          time.Now,
		sleep:        clock.SleepWithContext,
		metrics:      metrics,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// poll repeats probe until it holds or timeout elapses. Query errors are
// logged and polling goes on. After the deadline probe runs once more, so
// a non-positive timeout still queries once.
func (p *poller) poll(
	ctx context.Context,
	kind, condition string,
	timeout, defaultInterval time.Duration,
	opts []WaitOption,
	probe check,
) (elapsed time.Duration, err error) {
	settings := waitSettings{interval: defaultInterval}
	for _, opt := range opts {
		opt(&settings)
	}

	started := p.now()
	defer func() {
		if p.metrics != nil {
			p.metrics.ObserveWait(kind, err, started)
		}
	}()

	logger := p.logger.With(zap.String("condition", condition), zap.Duration("timeout", timeout))
	deadline := started.Add(timeout)
	last := "nothing"
	cancelled := func(cause error) error {
		return &hydra.CancelledError{Endpoint: p.endpoint, Condition: condition, Cause: cause}
	}

	attempt := 0
	for p.now().Before(deadline) {
		attempt++
		done, observed, qerr := probe(ctx)
		if ctx.Err() != nil {
			return p.now().Sub(started), cancelled(ctx.Err())
		}
		if qerr != nil {
			logger.Warn("poll query failed",
				zap.Int("attempt", attempt),
				zap.Duration("elapsed", p.now().Sub(started)),
				zap.Error(qerr),
			)
		} else {
			last = observed
			if done {
				return p.now().Sub(started), nil
			}
			if settings.logPoll {
				logger.Info("waiting",
					zap.Int("attempt", attempt),
					zap.String("observed", observed),
					zap.Duration("elapsed", p.now().Sub(started)),
				)
			}
		}
		if serr := p.sleep(ctx, clock.NextInterval(p.now(), deadline, settings.interval)); serr != nil {
			return p.now().Sub(started), cancelled(serr)
		}
	}

	done, observed, qerr := probe(ctx)
	if ctx.Err() != nil {
		return p.now().Sub(started), cancelled(ctx.Err())
	}
	if qerr == nil {
		last = observed
		if done {
			logger.Info("condition met on final check", zap.Int("attempts", attempt+1))
			return p.now().Sub(started), nil
		}
	} else {
		logger.Warn("final poll query failed", zap.Error(qerr))
	}
	return p.now().Sub(started), &hydra.TimeoutError{
		Endpoint:  p.endpoint,
		Condition: condition,
		Last:      last,
		Timeout:   timeout,
	}
}

// utxoGone polls query until in is no longer listed.
func (p *poller) utxoGone(
	ctx context.Context,
	in hydra.TxIn,
	timeout time.Duration,
	opts []WaitOption,
	query func(ctx context.Context, in hydra.TxIn) (hydra.UTxOList, error),
) (time.Duration, error) {
	return p.poll(ctx, waitUTxOConsumption, "consumption of "+in.String(), timeout, p.utxoInterval, opts,
		func(ctx context.Context) (bool, string, error) {
			utxos, err := query(ctx, in)
			if err != nil {
				return false, "", err
			}
			if utxos.Contains(in) {
				return false, in.String() + " unspent", nil
			}
			return true, in.String() + " spent", nil
		})
}
