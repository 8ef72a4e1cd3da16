package wallet

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// KeyFile is the text envelope cardano-cli writes for keys.
type KeyFile struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CBORHex     string `json:"cborHex"`
}

// LoadSigningKey reads a cardano-cli signing key file. Plain hex files
// holding the 32 byte seed are accepted too.
func LoadSigningKey(path string) (ed25519.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	key, err := ParseSigningKey(raw)
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}
	return key, nil
}

// ParseSigningKey decodes the contents of a key file.
func ParseSigningKey(raw []byte) (ed25519.PrivateKey, error) {
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "{") {
		var kf KeyFile
		if err := json.Unmarshal([]byte(text), &kf); err != nil {
			return nil, fmt.Errorf("decode key envelope: %w", err)
		}
		if kf.Type != "" && !strings.Contains(kf.Type, "SigningKey") {
			return nil, fmt.Errorf("key type %q is not a signing key", kf.Type)
		}
		data, err := hex.DecodeString(kf.CBORHex)
		if err != nil {
			return nil, fmt.Errorf("decode cborHex: %w", err)
		}
		var seed []byte
		if err := cbor.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("decode key bytes: %w", err)
		}
		return fromSeed(seed)
	}
	seed, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("decode hex key: %w", err)
	}
	return fromSeed(seed)
}

func fromSeed(seed []byte) (ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("unsupported key length %d, want %d byte ed25519 seed", len(seed), ed25519.SeedSize)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// EncodeSigningKey renders seed as a cardano-cli payment signing key file.
func EncodeSigningKey(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes", ed25519.SeedSize)
	}
	data, err := cbor.Marshal(seed)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(KeyFile{
		Type:        "PaymentSigningKeyShelley_ed25519",
		Description: "Payment Signing Key",
		CBORHex:     hex.EncodeToString(data),
	}, "", "    ")
}
