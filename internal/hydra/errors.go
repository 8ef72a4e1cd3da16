package hydra

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTimeout           = errors.New("wait timed out")
	ErrCancelled         = errors.New("wait cancelled")
	ErrProtocolState     = errors.New("no transition from current head state")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// TimeoutError is returned when a bounded wait never observed its condition.
type TimeoutError struct {
	Endpoint  string
	Condition string
	Last      string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s waiting for %s, last observed %s",
		e.Endpoint, e.Timeout, e.Condition, e.Last)
}

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// CancelledError is returned when the caller's context ends a wait.
type CancelledError struct {
	Endpoint  string
	Condition string
	Cause     error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s: wait for %s cancelled: %v", e.Endpoint, e.Condition, e.Cause)
}

func (e *CancelledError) Is(target error) bool { return target == ErrCancelled }

func (e *CancelledError) Unwrap() error { return e.Cause }

// StateError reports an operation requested from a state with no defined
// transition. It is never retried.
type StateError struct {
	Endpoint  string
	Operation string
	Expected  HeadState
	Actual    HeadState
}

func (e *StateError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: cannot %s: expected head state %s, actual %s",
			e.Endpoint, e.Operation, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: cannot %s from head state %s", e.Endpoint, e.Operation, e.Actual)
}

func (e *StateError) Is(target error) bool { return target == ErrProtocolState }

// InsufficientFundsError reports that no L1 UTxO can back a commit.
type InsufficientFundsError struct {
	Endpoint  string
	Address   string
	Threshold Value
	UTxOs     int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: not enough balance on %s in l1 chain: none of %d utxos exceeds %s",
		e.Endpoint, e.Address, e.UTxOs, e.Threshold)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }
