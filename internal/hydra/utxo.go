package hydra

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const txHashLen = 32

// TxIn references a transaction output as txHash#index.
type TxIn struct {
	TxHash string
	Index  uint32
}

// ParseTxIn parses the txHash#index notation.
func ParseTxIn(s string) (TxIn, error) {
	pos := strings.LastIndexByte(s, '#')
	if pos <= 0 || pos == len(s)-1 {
		return TxIn{}, fmt.Errorf("invalid txin %q: want txHash#index", s)
	}
	hash := strings.ToLower(s[:pos])
	raw, err := hex.DecodeString(hash)
	if err != nil || len(raw) != txHashLen {
		return TxIn{}, fmt.Errorf("invalid txin %q: tx hash must be %d hex bytes", s, txHashLen)
	}
	idx, err := strconv.ParseUint(s[pos+1:], 10, 32)
	if err != nil {
		return TxIn{}, fmt.Errorf("invalid txin %q: %w", s, err)
	}
	return TxIn{TxHash: hash, Index: uint32(idx)}, nil
}

func (t TxIn) String() string {
	return t.TxHash + "#" + strconv.FormatUint(uint64(t.Index), 10)
}

// MarshalText lets TxIn key JSON objects.
func (t TxIn) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the txHash#index notation.
func (t *TxIn) UnmarshalText(text []byte) error {
	parsed, err := ParseTxIn(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Less orders by hash, then index.
func (t TxIn) Less(o TxIn) bool {
	if t.TxHash != o.TxHash {
		return t.TxHash < o.TxHash
	}
	return t.Index < o.Index
}

// TxOut is a transaction output as reported by the node.
type TxOut struct {
	Address         string          `json:"address"`
	Value           Value           `json:"value"`
	Datum           json.RawMessage `json:"datum,omitempty"`
	DatumHash       *string         `json:"datumhash,omitempty"`
	InlineDatum     json.RawMessage `json:"inlineDatum,omitempty"`
	InlineDatumRaw  *string         `json:"inlineDatumRaw,omitempty"`
	ReferenceScript json.RawMessage `json:"referenceScript,omitempty"`
}

// UTxO pairs an output with its reference.
type UTxO struct {
	In  TxIn
	Out TxOut
}

// UTxOSet is the map form nodes use: {"txHash#index": txOut}.
type UTxOSet map[TxIn]TxOut

// List returns the set ordered by reference.
func (s UTxOSet) List() []UTxO {
	out := make([]UTxO, 0, len(s))
	for in, o := range s {
		out = append(out, UTxO{In: in, Out: o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].In.Less(out[j].In) })
	return out
}

// UTxOList decodes UTxO query responses. Both the map form and the list
// form ([{"txin": ..., "address": ..., "value": ...}]) are accepted.
type UTxOList []UTxO

type listedUTxO struct {
	TxIn TxIn `json:"txin"`
	TxOut
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *UTxOList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var listed []listedUTxO
		if err := json.Unmarshal(trimmed, &listed); err != nil {
			return fmt.Errorf("decode utxo list: %w", err)
		}
		out := make(UTxOList, 0, len(listed))
		for _, u := range listed {
			out = append(out, UTxO{In: u.TxIn, Out: u.TxOut})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].In.Less(out[j].In) })
		*l = out
		return nil
	}
	var set UTxOSet
	if err := json.Unmarshal(trimmed, &set); err != nil {
		return fmt.Errorf("decode utxo map: %w", err)
	}
	*l = set.List()
	return nil
}

// Contains reports whether in is part of the list.
func (l UTxOList) Contains(in TxIn) bool {
	for _, u := range l {
		if u.In == in {
			return true
		}
	}
	return false
}

// Total sums the values of the list.
func (l UTxOList) Total() Value {
	var total Value
	for _, u := range l {
		total = total.Add(u.Out.Value)
	}
	return total
}
