package hydra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const lovelaceKey = "lovelace"

var lovelacePerAda = decimal.NewFromInt(1_000_000)

// Value is an amount of lovelace plus native assets keyed by policy and asset name.
type Value struct {
	Lovelace uint64
	Assets   map[string]map[string]uint64
}

// Lovelace builds an ada-only value.
func Lovelace(n uint64) Value {
	return Value{Lovelace: n}
}

// ParseValue parses ada amounts written as "4A", "1.5A" or plain lovelace "2000000".
func ParseValue(s string) (Value, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Value{}, fmt.Errorf("empty value")
	}
	amount := text
	unit := decimal.NewFromInt(1)
	if strings.HasSuffix(text, "A") || strings.HasSuffix(text, "a") {
		amount = strings.TrimSpace(text[:len(text)-1])
		unit = lovelacePerAda
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Value{}, fmt.Errorf("parse value %q: %w", s, err)
	}
	lovelace := d.Mul(unit)
	if lovelace.IsNegative() || !lovelace.IsInteger() {
		return Value{}, fmt.Errorf("parse value %q: not a whole non-negative lovelace amount", s)
	}
	n := lovelace.BigInt()
	if !n.IsUint64() {
		return Value{}, fmt.Errorf("parse value %q: out of range", s)
	}
	return Value{Lovelace: n.Uint64()}, nil
}

// Add returns v+o.
func (v Value) Add(o Value) Value {
	out := Value{Lovelace: v.Lovelace + o.Lovelace}
	for _, src := range []map[string]map[string]uint64{v.Assets, o.Assets} {
		for policy, assets := range src {
			for name, qty := range assets {
				if out.Assets == nil {
					out.Assets = map[string]map[string]uint64{}
				}
				if out.Assets[policy] == nil {
					out.Assets[policy] = map[string]uint64{}
				}
				out.Assets[policy][name] += qty
			}
		}
	}
	return out
}

// GreaterThan reports whether v holds strictly more lovelace than o and at
// least every asset quantity o holds.
func (v Value) GreaterThan(o Value) bool {
	if v.Lovelace <= o.Lovelace {
		return false
	}
	for policy, assets := range o.Assets {
		for name, qty := range assets {
			if v.Assets[policy][name] < qty {
				return false
			}
		}
	}
	return true
}

// String renders the ada part, e.g. "4.5A", followed by asset counts.
func (v Value) String() string {
	ada := decimal.NewFromBigInt(new(big.Int).SetUint64(v.Lovelace), -6)
	var b strings.Builder
	b.WriteString(ada.String())
	b.WriteString("A")
	policies := make([]string, 0, len(v.Assets))
	for p := range v.Assets {
		policies = append(policies, p)
	}
	sort.Strings(policies)
	for _, p := range policies {
		names := make([]string, 0, len(v.Assets[p]))
		for n := range v.Assets[p] {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&b, " + %d %s.%s", v.Assets[p][n], p, n)
		}
	}
	return b.String()
}

// MarshalJSON emits {"lovelace": n, "<policy>": {"<asset>": n}}.
func (v Value) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Assets)+1)
	out[lovelaceKey] = v.Lovelace
	for p, assets := range v.Assets {
		out[p] = assets
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the object form and a bare lovelace number.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = Value{}
		return nil
	}
	if trimmed[0] != '{' {
		n, err := decodeQuantity(trimmed)
		if err != nil {
			return fmt.Errorf("decode value: %w", err)
		}
		*v = Value{Lovelace: n}
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	out := Value{}
	for key, raw := range fields {
		if key == lovelaceKey {
			n, err := decodeQuantity(raw)
			if err != nil {
				return fmt.Errorf("decode lovelace: %w", err)
			}
			out.Lovelace = n
			continue
		}
		var assets map[string]json.RawMessage
		if err := json.Unmarshal(raw, &assets); err != nil {
			return fmt.Errorf("decode policy %s: %w", key, err)
		}
		for name, q := range assets {
			n, err := decodeQuantity(q)
			if err != nil {
				return fmt.Errorf("decode asset %s.%s: %w", key, name, err)
			}
			if out.Assets == nil {
				out.Assets = map[string]map[string]uint64{}
			}
			if out.Assets[key] == nil {
				out.Assets[key] = map[string]uint64{}
			}
			out.Assets[key][name] = n
		}
	}
	*v = out
	return nil
}

// decodeQuantity reads a JSON number or a numeric string.
func decodeQuantity(raw []byte) (uint64, error) {
	text := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() || !d.IsInteger() {
		return 0, fmt.Errorf("quantity %s is not a whole non-negative number", text)
	}
	n := d.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("quantity %s out of range", text)
	}
	return n.Uint64(), nil
}
