// Package query serves read-only views over the explorer indexes.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// UTXOs lists every unspent output.
func (s *Service) UTXOs(ctx context.Context) ([]model.UTXO, error) {
	return s.store.UTXOs(ctx)
}

// AddressUTXOs lists the unspent outputs paying address.
func (s *Service) AddressUTXOs(ctx context.Context, address string) ([]model.UTXO, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}
	return s.store.UTXOsByAddress(ctx, address)
}

// SpecialTransactions lists the stored node-registration transactions.
func (s *Service) SpecialTransactions(ctx context.Context) ([]model.SpecialTransaction, error) {
	return s.store.SpecialTransactions(ctx)
}

// Addresses lists every address with its transaction history.
func (s *Service) Addresses(ctx context.Context) ([]model.AddressRecord, error) {
	return s.store.Addresses(ctx)
}

// AddressList lists every known address.
func (s *Service) AddressList(ctx context.Context) ([]string, error) {
	return s.store.AddressList(ctx)
}

// AddressTransactions returns the history of address, empty when unknown.
func (s *Service) AddressTransactions(ctx context.Context, address string) ([]model.TxRef, error) {
	address, err := requireAddress(address)
	if err != nil {
		return nil, err
	}
	return s.store.AddressTransactions(ctx, address)
}

// ScannedHeight returns the last fully folded height.
func (s *Service) ScannedHeight(ctx context.Context) (uint64, error) {
	return s.store.ScannedHeight(ctx)
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func requireAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("address: %w", model.ErrMissingParameter)
	}
	return address, nil
}
