// Package hydra models what a Hydra Head node reports about its head and the
// errors raised while driving a head through its lifecycle.
package hydra

import (
	"fmt"
	"strings"
)

// HeadState is the lifecycle tag of a Hydra Head.
type HeadState string

const (
	StateIdle      HeadState = "Idle"
	StateInitial   HeadState = "Initial"
	StateOpen      HeadState = "Open"
	StateClosed    HeadState = "Closed"
	StateContested HeadState = "Contested"
	StateFinal     HeadState = "Final"

	// StateFanoutReady is a Closed head whose ready-to-fanout notice was sent.
	// Nodes never report it as a tag.
	StateFanoutReady HeadState = "FanoutReady"
)

var knownStates = []HeadState{
	StateIdle,
	StateInitial,
	StateOpen,
	StateClosed,
	StateContested,
	StateFinal,
	StateFanoutReady,
}

// ParseHeadState matches s case-insensitively against the known states.
func ParseHeadState(s string) (HeadState, error) {
	for _, st := range knownStates {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown head state %q", s)
}

// IsWire reports whether s can appear as the tag of a head query response.
func (s HeadState) IsWire() bool {
	switch s {
	case StateIdle, StateInitial, StateOpen, StateClosed, StateContested, StateFinal:
		return true
	default:
		return false
	}
}

// Settled reports whether s holds no active commitments (Idle or Initial).
func (s HeadState) Settled() bool {
	return s == StateIdle || s == StateInitial
}

func (s HeadState) String() string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}

// Equivalent reports whether an observed state satisfies a requested one.
// Idle and Initial satisfy each other.
func Equivalent(requested, observed HeadState) bool {
	if requested == observed {
		return true
	}
	return requested.Settled() && observed.Settled()
}
