// Package wallet holds a participant's funding key: address derivation,
// transaction signing and L1 balance lookups.
package wallet

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/internal/txcbor"
	"golang.org/x/crypto/blake2b"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UTxOSource lists the L1 outputs owned by an address.
	UTxOSource interface {
		QueryUTxOByAddress(ctx context.Context, address string) (hydra.UTxOList, error)
	}
)

// Wallet signs with one ed25519 key and reads its enterprise address on L1.
type Wallet struct {
	key     ed25519.PrivateKey
	address string
	utxos   UTxOSource
}

// New builds a wallet around key.
func New(key ed25519.PrivateKey, network Network, utxos UTxOSource) (*Wallet, error) {
	addr, err := EnterpriseAddress(key.Public().(ed25519.PublicKey), network)
	if err != nil {
		return nil, err
	}
	return &Wallet{key: key, address: addr, utxos: utxos}, nil
}

// Load reads the signing key file at path.
func Load(path string, network Network, utxos UTxOSource) (*Wallet, error) {
	key, err := LoadSigningKey(path)
	if err != nil {
		return nil, err
	}
	return New(key, network, utxos)
}

// Address is the bech32 change address.
func (w *Wallet) Address() string {
	return w.address
}

// VKey is the verification key.
func (w *Wallet) VKey() ed25519.PublicKey {
	return w.key.Public().(ed25519.PublicKey)
}

// Witness signs the body hash of tx.
func (w *Wallet) Witness(tx *txcbor.Tx) txcbor.VKeyWitness {
	hash := blake2b.Sum256(tx.Body())
	return txcbor.VKeyWitness{
		VKey:      w.VKey(),
		Signature: ed25519.Sign(w.key, hash[:]),
	}
}

// SignTx adds this wallet's witness to the hex encoded transaction and
// returns the signed transaction hex.
func (w *Wallet) SignTx(_ context.Context, cborHex string) (string, error) {
	tx, err := txcbor.DecodeHex(cborHex)
	if err != nil {
		return "", err
	}
	if err := tx.AddVKeyWitnesses(w.Witness(tx)); err != nil {
		return "", fmt.Errorf("sign tx %s: %w", tx.ID(), err)
	}
	return tx.Hex()
}

// UTxOs lists the outputs at the wallet address.
func (w *Wallet) UTxOs(ctx context.Context) (hydra.UTxOList, error) {
	if w.utxos == nil {
		return nil, fmt.Errorf("wallet %s: no utxo source", w.address)
	}
	utxos, err := w.utxos.QueryUTxOByAddress(ctx, w.address)
	if err != nil {
		return nil, fmt.Errorf("query utxos of %s: %w", w.address, err)
	}
	return utxos, nil
}

// Balance sums the outputs at the wallet address.
func (w *Wallet) Balance(ctx context.Context) (hydra.Value, error) {
	utxos, err := w.UTxOs(ctx)
	if err != nil {
		return hydra.Value{}, err
	}
	return utxos.Total(), nil
}
