package wallet

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// Network is the Shelley address network id.
type Network byte

const (
	Testnet Network = 0
	Mainnet Network = 1

	enterpriseKeyHash = 0x60
	keyHashSize       = 28
)

// ParseNetwork accepts "testnet"/"preprod"/"preview" and "mainnet".
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "testnet", "preprod", "preview":
		return Testnet, nil
	case "mainnet":
		return Mainnet, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

func (n Network) hrp() string {
	if n == Mainnet {
		return "addr"
	}
	return "addr_test"
}

// KeyHash is the blake2b-224 hash of a verification key.
func KeyHash(vkey ed25519.PublicKey) ([]byte, error) {
	h, err := blake2b.New(keyHashSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write(vkey)
	return h.Sum(nil), nil
}

// EnterpriseAddress derives the bech32 payment address without a stake part.
func EnterpriseAddress(vkey ed25519.PublicKey, network Network) (string, error) {
	hash, err := KeyHash(vkey)
	if err != nil {
		return "", fmt.Errorf("hash vkey: %w", err)
	}
	payload := append([]byte{enterpriseKeyHash | byte(network)}, hash...)
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address bits: %w", err)
	}
	addr, err := bech32.Encode(network.hrp(), conv)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return addr, nil
}
