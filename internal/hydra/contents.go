package hydra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ContentsShape identifies which wire layout a node used for head contents.
type ContentsShape int

const (
	// ShapeFlat keeps snapshot and deposit fields at the top level of contents.
	ShapeFlat ContentsShape = iota
	// ShapeCoordinated nests them under coordinatedHeadState.
	ShapeCoordinated
)

func (s ContentsShape) String() string {
	if s == ShapeCoordinated {
		return "coordinated"
	}
	return "flat"
}

// Contents is the normalized view over both wire layouts. Absent optional
// fields stay at their zero value.
type Contents struct {
	Shape    ContentsShape
	HeadID   string
	HeadSeed string
	Version  int

	ContestationPeriod time.Duration
	Parties            []string

	// Committed maps commit id to the UTxO it locked. Only Initial heads carry it.
	Committed map[string]UTxOSet

	// ContestationDeadline is set once the head is Closed.
	ContestationDeadline *time.Time
	ReadyToFanoutSent    bool

	PendingDeposits []string
	SnapshotNumber  uint64
	SnapshotUTxO    UTxOSet
	UTxOToDecommit  UTxOSet

	ChainState json.RawMessage
}

type partyWire struct {
	VKey string `json:"vkey"`
}

type parametersWire struct {
	ContestationPeriod *float64    `json:"contestationPeriod,omitempty"`
	Parties            []partyWire `json:"parties,omitempty"`
}

type snapshotWire struct {
	Number         uint64  `json:"number,omitempty"`
	UTxO           UTxOSet `json:"utxo,omitempty"`
	UTxOToDecommit UTxOSet `json:"utxoToDecommit,omitempty"`
}

type confirmedSnapshotWire struct {
	Tag         string        `json:"tag,omitempty"`
	HeadID      string        `json:"headId,omitempty"`
	InitialUTxO UTxOSet       `json:"initialUTxO,omitempty"`
	Snapshot    *snapshotWire `json:"snapshot,omitempty"`
}

type coordinatedHeadStateWire struct {
	LocalUTxO         UTxOSet                `json:"localUTxO,omitempty"`
	ConfirmedSnapshot *confirmedSnapshotWire `json:"confirmedSnapshot,omitempty"`
	PendingDeposits   json.RawMessage        `json:"pendingDeposits,omitempty"`
	Version           *int                   `json:"version,omitempty"`
}

type contentsWire struct {
	HeadID               string                    `json:"headId,omitempty"`
	HeadSeed             string                    `json:"headSeed,omitempty"`
	Version              *int                      `json:"version,omitempty"`
	Parameters           *parametersWire           `json:"parameters,omitempty"`
	Committed            map[string]UTxOSet        `json:"committed,omitempty"`
	ContestationDeadline string                    `json:"contestationDeadline,omitempty"`
	ReadyToFanoutSent    bool                      `json:"readyToFanoutSent,omitempty"`
	PendingDeposits      json.RawMessage           `json:"pendingDeposits,omitempty"`
	ConfirmedSnapshot    *confirmedSnapshotWire    `json:"confirmedSnapshot,omitempty"`
	ChainState           json.RawMessage           `json:"chainState,omitempty"`
	CoordinatedHeadState *coordinatedHeadStateWire `json:"coordinatedHeadState,omitempty"`
}

// UnmarshalJSON detects the layout and normalizes it.
func (c *Contents) UnmarshalJSON(data []byte) error {
	var w contentsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode head contents: %w", err)
	}

	out := Contents{
		HeadID:            w.HeadID,
		HeadSeed:          w.HeadSeed,
		Committed:         w.Committed,
		ReadyToFanoutSent: w.ReadyToFanoutSent,
		ChainState:        w.ChainState,
	}
	if w.Version != nil {
		out.Version = *w.Version
	}
	if w.Parameters != nil {
		if w.Parameters.ContestationPeriod != nil {
			out.ContestationPeriod = time.Duration(*w.Parameters.ContestationPeriod * float64(time.Second))
		}
		for _, p := range w.Parameters.Parties {
			out.Parties = append(out.Parties, p.VKey)
		}
	}
	if deadline := strings.TrimSpace(w.ContestationDeadline); deadline != "" {
		t, err := time.Parse(time.RFC3339Nano, deadline)
		if err != nil {
			return fmt.Errorf("decode contestation deadline: %w", err)
		}
		out.ContestationDeadline = &t
	}

	snapshot := w.ConfirmedSnapshot
	pending := w.PendingDeposits
	if coordinated := w.CoordinatedHeadState; coordinated != nil {
		out.Shape = ShapeCoordinated
		if coordinated.ConfirmedSnapshot != nil {
			snapshot = coordinated.ConfirmedSnapshot
		}
		if len(coordinated.PendingDeposits) > 0 {
			pending = coordinated.PendingDeposits
		}
		if coordinated.Version != nil && w.Version == nil {
			out.Version = *coordinated.Version
		}
		out.SnapshotUTxO = coordinated.LocalUTxO
	}
	if snapshot != nil {
		if snapshot.HeadID != "" && out.HeadID == "" {
			out.HeadID = snapshot.HeadID
		}
		switch {
		case snapshot.Snapshot != nil:
			out.SnapshotNumber = snapshot.Snapshot.Number
			out.SnapshotUTxO = snapshot.Snapshot.UTxO
			out.UTxOToDecommit = snapshot.Snapshot.UTxOToDecommit
		case snapshot.InitialUTxO != nil:
			out.SnapshotUTxO = snapshot.InitialUTxO
		}
	}

	ids, err := pendingIDs(pending)
	if err != nil {
		return fmt.Errorf("decode pending deposits: %w", err)
	}
	out.PendingDeposits = ids

	*c = out
	return nil
}

// MarshalJSON always emits the flat layout.
func (c Contents) MarshalJSON() ([]byte, error) {
	w := contentsWire{
		HeadID:            c.HeadID,
		HeadSeed:          c.HeadSeed,
		Committed:         c.Committed,
		ReadyToFanoutSent: c.ReadyToFanoutSent,
		ChainState:        c.ChainState,
	}
	if c.Version != 0 {
		v := c.Version
		w.Version = &v
	}
	if c.ContestationPeriod != 0 || len(c.Parties) > 0 {
		w.Parameters = &parametersWire{}
		if c.ContestationPeriod != 0 {
			secs := c.ContestationPeriod.Seconds()
			w.Parameters.ContestationPeriod = &secs
		}
		for _, p := range c.Parties {
			w.Parameters.Parties = append(w.Parameters.Parties, partyWire{VKey: p})
		}
	}
	if c.ContestationDeadline != nil {
		w.ContestationDeadline = c.ContestationDeadline.UTC().Format(time.RFC3339Nano)
	}
	if len(c.PendingDeposits) > 0 {
		raw, err := json.Marshal(c.PendingDeposits)
		if err != nil {
			return nil, err
		}
		w.PendingDeposits = raw
	}
	if c.SnapshotUTxO != nil || c.UTxOToDecommit != nil || c.SnapshotNumber != 0 {
		w.ConfirmedSnapshot = &confirmedSnapshotWire{
			Tag: "ConfirmedSnapshot",
			Snapshot: &snapshotWire{
				Number:         c.SnapshotNumber,
				UTxO:           c.SnapshotUTxO,
				UTxOToDecommit: c.UTxOToDecommit,
			},
		}
	}
	return json.Marshal(w)
}

// pendingIDs accepts a map keyed by deposit id or a list of ids/objects.
func pendingIDs(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	switch trimmed[0] {
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(m))
		for id := range m {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return ids, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(items))
		for i, item := range items {
			var id string
			if err := json.Unmarshal(item, &id); err == nil {
				ids = append(ids, id)
				continue
			}
			var obj struct {
				TxID string `json:"txId"`
			}
			if err := json.Unmarshal(item, &obj); err == nil && obj.TxID != "" {
				ids = append(ids, obj.TxID)
				continue
			}
			ids = append(ids, "#"+strconv.Itoa(i))
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("unexpected pending deposits %s", trimmed)
	}
}
