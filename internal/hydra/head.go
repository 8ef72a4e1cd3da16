package hydra

import (
	"sort"
	"time"
)

// Head is one answer to a head query. It is a snapshot: other parties and
// chain confirmations move the head between queries.
type Head struct {
	Tag      HeadState `json:"tag"`
	Contents *Contents `json:"contents,omitempty"`
}

// State classifies the head, deriving FanoutReady from a Closed tag.
func (h *Head) State() HeadState {
	if h == nil {
		return ""
	}
	if IsReadyToFanout(h) {
		return StateFanoutReady
	}
	return h.Tag
}

// Matches reports whether the head is in the expected state. A FanoutReady
// head also matches Closed.
func (h *Head) Matches(expected HeadState) bool {
	if h == nil {
		return false
	}
	if expected == StateFanoutReady {
		return IsReadyToFanout(h)
	}
	return h.Tag == expected
}

// IsReadyToFanout is true only for a Closed head whose ready-to-fanout notice was sent.
func IsReadyToFanout(h *Head) bool {
	return h != nil && h.Tag == StateClosed && h.Contents != nil && h.Contents.ReadyToFanoutSent
}

// ContestationDeadline returns the deadline of a Closed head.
func ContestationDeadline(h *Head) (time.Time, bool) {
	if h == nil || h.Contents == nil || h.Contents.ContestationDeadline == nil {
		return time.Time{}, false
	}
	return *h.Contents.ContestationDeadline, true
}

// CommittedAddresses lists, sorted and deduplicated, the addresses owning
// committed UTxOs.
func CommittedAddresses(h *Head) []string {
	if h == nil || h.Contents == nil {
		return nil
	}
	seen := map[string]struct{}{}
	for _, utxos := range h.Contents.Committed {
		for _, out := range utxos {
			seen[out.Address] = struct{}{}
		}
	}
	addrs := make([]string, 0, len(seen))
	for a := range seen {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}

// HasCommitted reports whether address already owns a committed UTxO.
func HasCommitted(h *Head, address string) bool {
	if h == nil || h.Contents == nil {
		return false
	}
	for _, utxos := range h.Contents.Committed {
		for _, out := range utxos {
			if out.Address == address {
				return true
			}
		}
	}
	return false
}

// HasPendingDeposits reports in-flight incremental commits.
func HasPendingDeposits(h *Head) bool {
	return h != nil && h.Contents != nil && len(h.Contents.PendingDeposits) > 0
}

// HasPendingDecommit reports a confirmed snapshot still releasing UTxOs.
func HasPendingDecommit(h *Head) bool {
	return h != nil && h.Contents != nil && len(h.Contents.UTxOToDecommit) > 0
}

// SnapshotUTxOCount is the size of the confirmed snapshot UTxO set.
func SnapshotUTxOCount(h *Head) int {
	if h == nil || h.Contents == nil {
		return 0
	}
	return len(h.Contents.SnapshotUTxO)
}
