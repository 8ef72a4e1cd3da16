// Package txcbor reads and amends Conway-era transactions without
// re-encoding the parts it does not touch.
package txcbor

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	TypeWitnessed   = "Witnessed Tx ConwayEra"
	TypeUnwitnessed = "Unwitnessed Tx ConwayEra"

	witnessVKeys = 0
	setTag       = 258
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
}

// Tx is a transaction kept as its raw top-level items:
// [body, witness set, is valid, auxiliary data].
type Tx struct {
	items []cbor.RawMessage
}

// VKeyWitness is one [vkey, signature] pair.
type VKeyWitness struct {
	_         struct{} `cbor:",toarray"`
	VKey      []byte
	Signature []byte
}

// Decode parses raw transaction bytes.
func Decode(data []byte) (*Tx, error) {
	var items []cbor.RawMessage
	if err := cbor.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode tx: %w", err)
	}
	if len(items) < 2 {
		return nil, fmt.Errorf("decode tx: want at least body and witness set, got %d items", len(items))
	}
	return &Tx{items: items}, nil
}

// DecodeHex parses hex encoded transaction bytes.
func DecodeHex(s string) (*Tx, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("decode tx hex: %w", err)
	}
	return Decode(data)
}

// Body returns the body exactly as encoded.
func (t *Tx) Body() []byte {
	return t.items[0]
}

// ID is the blake2b-256 hash of the body, hex encoded.
func (t *Tx) ID() string {
	sum := blake2b.Sum256(t.items[0])
	return hex.EncodeToString(sum[:])
}

// Bytes re-encodes the transaction.
func (t *Tx) Bytes() ([]byte, error) {
	return cbor.Marshal(t.items)
}

// Hex re-encodes the transaction as hex.
func (t *Tx) Hex() (string, error) {
	b, err := t.Bytes()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (t *Tx) witnessSet() (map[uint64]cbor.RawMessage, error) {
	var set map[uint64]cbor.RawMessage
	if err := cbor.Unmarshal(t.items[1], &set); err != nil {
		return nil, fmt.Errorf("decode witness set: %w", err)
	}
	if set == nil {
		set = map[uint64]cbor.RawMessage{}
	}
	return set, nil
}

// HasWitnesses reports whether the witness set holds any entry.
func (t *Tx) HasWitnesses() (bool, error) {
	set, err := t.witnessSet()
	if err != nil {
		return false, err
	}
	return len(set) > 0, nil
}

// VKeyWitnesses lists the key witnesses already attached.
func (t *Tx) VKeyWitnesses() ([]VKeyWitness, error) {
	set, err := t.witnessSet()
	if err != nil {
		return nil, err
	}
	ws, _, err := decodeVKeyWitnesses(set[witnessVKeys])
	return ws, err
}

// AddVKeyWitnesses merges ws into the witness set, skipping keys that
// already signed.
func (t *Tx) AddVKeyWitnesses(ws ...VKeyWitness) error {
	set, err := t.witnessSet()
	if err != nil {
		return err
	}
	existing, tagged, err := decodeVKeyWitnesses(set[witnessVKeys])
	if err != nil {
		return err
	}
	for _, w := range ws {
		dup := false
		for _, e := range existing {
			if bytes.Equal(e.VKey, w.VKey) {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, w)
		}
	}

	var content any = existing
	if tagged {
		content = cbor.Tag{Number: setTag, Content: existing}
	}
	encoded, err := encMode.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode vkey witnesses: %w", err)
	}
	set[witnessVKeys] = encoded

	rawSet, err := encMode.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode witness set: %w", err)
	}
	t.items[1] = rawSet
	return nil
}

func decodeVKeyWitnesses(raw cbor.RawMessage) ([]VKeyWitness, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	tagged := false
	if raw[0]>>5 == 6 {
		var tag cbor.RawTag
		if err := cbor.Unmarshal(raw, &tag); err != nil {
			return nil, false, fmt.Errorf("decode vkey witnesses: %w", err)
		}
		if tag.Number != setTag {
			return nil, false, fmt.Errorf("decode vkey witnesses: unexpected tag %d", tag.Number)
		}
		raw = tag.Content
		tagged = true
	}
	var ws []VKeyWitness
	if err := cbor.Unmarshal(raw, &ws); err != nil {
		return nil, false, fmt.Errorf("decode vkey witnesses: %w", err)
	}
	return ws, tagged, nil
}

// Envelope is the text envelope Hydra and Kuber accept for signed or
// unsigned transactions.
type Envelope struct {
	CBORHex     string `json:"cborHex"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NewEnvelope wraps cborHex, typing it by the presence of witnesses.
func NewEnvelope(cborHex string) (Envelope, error) {
	tx, err := DecodeHex(cborHex)
	if err != nil {
		return Envelope{}, err
	}
	return EnvelopeOf(tx)
}

// EnvelopeOf wraps an already decoded transaction.
func EnvelopeOf(tx *Tx) (Envelope, error) {
	if tx == nil {
		return Envelope{}, errors.New("nil tx")
	}
	witnessed, err := tx.HasWitnesses()
	if err != nil {
		return Envelope{}, err
	}
	cborHex, err := tx.Hex()
	if err != nil {
		return Envelope{}, err
	}
	env := Envelope{CBORHex: cborHex, Type: TypeUnwitnessed}
	if witnessed {
		env.Type = TypeWitnessed
	}
	return env, nil
}
